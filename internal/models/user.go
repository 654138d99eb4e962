package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is the identity record. Authentication itself is handled by the auth
// handlers and middleware; everything else references users by ID only.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile holds the editable extras attached one-to-one to a user.
type Profile struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"uniqueIndex"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty" gorm:"size:250"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SignupRequest defines the request body for registering a new user
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SigninRequest defines the request body for logging in
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for editing the own profile
type UpdateProfileRequest struct {
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty" validate:"omitempty,url,max=250"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
