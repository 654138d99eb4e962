package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Image is a bookmarked image. TotalLikes is denormalized from the image_likes
// relation and is recomputed, never incremented, so it self-heals from drift.
type Image struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	Title       string    `json:"title" gorm:"size:200"`
	Slug        string    `json:"slug" gorm:"size:200;index"`
	URL         string    `json:"url" gorm:"size:250"`
	Description string    `json:"description,omitempty"`
	TotalLikes  int64     `json:"total_likes" gorm:"default:0;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// BeforeCreate derives the slug from the title when none was given.
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.Slug == "" {
		i.Slug = slug.Make(i.Title)
	}
	return nil
}

// CreateImageRequest defines the request body for bookmarking an image
type CreateImageRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	URL         string `json:"url" validate:"required,url,max=250"`
	Description string `json:"description,omitempty"`
}
