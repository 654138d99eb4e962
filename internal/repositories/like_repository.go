package repositories

import (
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository maintains the many-to-many like relation between users and
// images. Adding an existing pair and removing an absent pair are both no-ops.
type LikeRepository interface {
	CreateLike(userID, imageID uint) error
	DeleteLike(userID, imageID uint) error
	CountByImageID(imageID uint) (int64, error)
	HasUserLikedImage(userID, imageID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike adds the (user, image) pair to the relation if absent
func (r *PostgresLikeRepository) CreateLike(userID, imageID uint) error {
	like := models.ImageLike{UserID: userID, ImageID: imageID}
	return r.db.Where(models.ImageLike{UserID: userID, ImageID: imageID}).
		FirstOrCreate(&like).Error
}

// DeleteLike removes the (user, image) pair from the relation if present
func (r *PostgresLikeRepository) DeleteLike(userID, imageID uint) error {
	return r.db.Where("user_id = ? AND image_id = ?", userID, imageID).
		Delete(&models.ImageLike{}).Error
}

// CountByImageID returns the live cardinality of the like relation for imageID
func (r *PostgresLikeRepository) CountByImageID(imageID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ImageLike{}).Where("image_id = ?", imageID).Count(&count).Error
	return count, err
}

// HasUserLikedImage checks if a user has liked a specific image
func (r *PostgresLikeRepository) HasUserLikedImage(userID, imageID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.ImageLike{}).Where("user_id = ? AND image_id = ?", userID, imageID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
