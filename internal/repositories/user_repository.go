package repositories

import (
	"errors"

	"github.com/vuteanh/bookmarks/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user and profile data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetActiveUsers() ([]models.User, error)
	CreateProfile(profile *models.Profile) error
	GetProfileByUserID(userID uint) (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves an active user by username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? AND is_active = ?", username, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetActiveUsers retrieves all active users
func (r *PostgresUserRepository) GetActiveUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_active = ?", true).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateProfile creates the profile attached to a user
func (r *PostgresUserRepository) CreateProfile(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetProfileByUserID retrieves the profile of a user
func (r *PostgresUserRepository) GetProfileByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile persists profile edits
func (r *PostgresUserRepository) UpdateProfile(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
