package services

import (
	"time"

	"github.com/vuteanh/bookmarks/backend/internal/events"
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
)

// DedupWindow is the sliding window in which identical actions by the same
// user collapse into a single log entry.
const DedupWindow = 60 * time.Second

// ActivityService appends user actions to the activity stream, suppressing
// rapid duplicates so a double-clicked follow or like does not flood the feed.
type ActivityService struct {
	actions   repositories.ActionRepository
	publisher *events.Publisher
}

// NewActivityService creates a new ActivityService. publisher may be nil.
func NewActivityService(actions repositories.ActionRepository, publisher *events.Publisher) *ActivityService {
	return &ActivityService{actions: actions, publisher: publisher}
}

// Record appends a new action unless an identical one (same user, verb and,
// when given, target) exists within DedupWindow. It returns the created
// action, or nil when the action was suppressed as a duplicate. Suppression
// is a normal outcome, not an error; write failures surface unretried.
func (s *ActivityService) Record(userID uint, verb string, target *models.ActionTarget) (*models.Action, error) {
	now := time.Now()

	count, err := s.actions.CountSimilarSince(userID, verb, target, now.Add(-DedupWindow))
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	action := &models.Action{
		UserID:    userID,
		Verb:      verb,
		CreatedAt: now,
	}
	if target != nil {
		action.TargetType = target.Type
		action.TargetID = target.ID
	}

	if err := s.actions.CreateAction(action); err != nil {
		return nil, err
	}

	s.publisher.ActivityRecorded(action)
	return action, nil
}
