package repositories

import (
	"errors"

	"github.com/vuteanh/bookmarks/backend/internal/models"
	"gorm.io/gorm"
)

// ImageRepository defines the interface for image data operations
type ImageRepository interface {
	CreateImage(image *models.Image) error
	GetImageByID(id uint) (*models.Image, error)
	GetImages(offset, limit int) ([]models.Image, error)
	GetImagesByIDs(ids []uint) ([]models.Image, error)
	RefreshTotalLikes(imageID uint) error
}

// PostgresImageRepository implements ImageRepository for PostgreSQL
type PostgresImageRepository struct {
	db *gorm.DB
}

// NewPostgresImageRepository creates a new PostgresImageRepository
func NewPostgresImageRepository(db *gorm.DB) *PostgresImageRepository {
	return &PostgresImageRepository{db: db}
}

// CreateImage creates a new image bookmark
func (r *PostgresImageRepository) CreateImage(image *models.Image) error {
	return r.db.Create(image).Error
}

// GetImageByID retrieves an image by ID
func (r *PostgresImageRepository) GetImageByID(id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// GetImages retrieves images newest first with offset/limit pagination
func (r *PostgresImageRepository) GetImages(offset, limit int) ([]models.Image, error) {
	var images []models.Image
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&images).Error
	return images, err
}

// GetImagesByIDs retrieves the images whose ids are in ids, in no particular
// order. Missing ids are silently skipped.
func (r *PostgresImageRepository) GetImagesByIDs(ids []uint) ([]models.Image, error) {
	var images []models.Image
	err := r.db.Where("id IN ?", ids).Find(&images).Error
	return images, err
}

// RefreshTotalLikes recomputes total_likes from the image_likes relation with
// a single UPDATE carrying a COUNT subquery, so the counter never reflects a
// state between the read and the write.
func (r *PostgresImageRepository) RefreshTotalLikes(imageID uint) error {
	sub := r.db.Model(&models.ImageLike{}).Select("count(*)").Where("image_id = ?", imageID)
	return r.db.Model(&models.Image{}).Where("id = ?", imageID).Update("total_likes", sub).Error
}
