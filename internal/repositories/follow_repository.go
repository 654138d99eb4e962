package repositories

import (
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository is the social graph store: directed follow edges with at
// most one edge per (follower, followee) pair.
type FollowRepository interface {
	CreateFollow(followerID, followeeID uint) error
	DeleteFollow(followerID, followeeID uint) error
	IsFollowing(followerID, followeeID uint) (bool, error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowersCount(userID uint) (int64, error)
	GetFollowingCount(userID uint) (int64, error)
	GetFolloweeIDs(userID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateFollow creates the edge if absent. Calling it again with the same
// pair is a no-op, so the uniqueness invariant holds without an error path.
func (r *PostgresFollowRepository) CreateFollow(followerID, followeeID uint) error {
	follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	return r.db.Where(models.Follow{FollowerID: followerID, FolloweeID: followeeID}).
		FirstOrCreate(&follow).Error
}

// DeleteFollow removes the edge if present; removing an absent edge is a no-op.
func (r *PostgresFollowRepository) DeleteFollow(followerID, followeeID uint) error {
	return r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

// IsFollowing reports whether the edge (follower, followee) exists
func (r *PostgresFollowRepository) IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers retrieves the users following userID
func (r *PostgresFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("followee_id = ?", userID),
	).Find(&users).Error
	return users, err
}

// GetFollowing retrieves the users userID follows
func (r *PostgresFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("followee_id").Where("follower_id = ?", userID),
	).Find(&users).Error
	return users, err
}

// GetFollowersCount counts the users following userID
func (r *PostgresFollowRepository) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&count).Error
	return count, err
}

// GetFollowingCount counts the users userID follows
func (r *PostgresFollowRepository) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

// GetFolloweeIDs returns the ids of the users userID follows
func (r *PostgresFollowRepository) GetFolloweeIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("followee_id", &ids).Error
	return ids, err
}
