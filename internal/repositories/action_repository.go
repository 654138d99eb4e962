package repositories

import (
	"time"

	"github.com/vuteanh/bookmarks/backend/internal/models"
	"gorm.io/gorm"
)

// ActionRepository is the append-only activity log. Rows are only ever
// inserted; the log is read through the bounded queries below, never scanned
// whole.
type ActionRepository interface {
	CreateAction(action *models.Action) error
	CountSimilarSince(userID uint, verb string, target *models.ActionTarget, since time.Time) (int64, error)
	GetFeed(viewerID uint, authorIDs []uint, limit int) ([]models.Action, error)
}

// PostgresActionRepository implements ActionRepository for PostgreSQL
type PostgresActionRepository struct {
	db *gorm.DB
}

// NewPostgresActionRepository creates a new PostgresActionRepository
func NewPostgresActionRepository(db *gorm.DB) *PostgresActionRepository {
	return &PostgresActionRepository{db: db}
}

// CreateAction appends a new action to the log
func (r *PostgresActionRepository) CreateAction(action *models.Action) error {
	return r.db.Create(action).Error
}

// CountSimilarSince counts actions by the same user with the same verb created
// at or after since. With a target, the match also requires the same target
// type and id; without one, target columns are ignored entirely.
func (r *PostgresActionRepository) CountSimilarSince(userID uint, verb string, target *models.ActionTarget, since time.Time) (int64, error) {
	q := r.db.Model(&models.Action{}).
		Where("user_id = ? AND verb = ? AND created_at >= ?", userID, verb, since)
	if target != nil {
		q = q.Where("target_type = ? AND target_id = ?", target.Type, target.ID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

// GetFeed returns the most recent actions authored by authorIDs, excluding the
// viewer's own, newest first with ties broken by id descending. An empty
// author set means no author filter (the discover fallback). Always a single
// bounded query.
func (r *PostgresActionRepository) GetFeed(viewerID uint, authorIDs []uint, limit int) ([]models.Action, error) {
	q := r.db.Where("user_id <> ?", viewerID)
	if len(authorIDs) > 0 {
		q = q.Where("user_id IN ?", authorIDs)
	}
	var actions []models.Action
	err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&actions).Error
	return actions, err
}
