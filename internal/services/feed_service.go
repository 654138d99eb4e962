package services

import (
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
)

// FeedService assembles the dashboard activity feed from the action log and
// the social graph.
type FeedService struct {
	actions repositories.ActionRepository
	follows repositories.FollowRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(actions repositories.ActionRepository, follows repositories.FollowRepository) *FeedService {
	return &FeedService{actions: actions, follows: follows}
}

// DashboardFeed returns the most recent actions by the viewer's followees,
// never the viewer's own, newest first. A viewer following no one gets the
// discover fallback: recent actions from everyone else.
func (s *FeedService) DashboardFeed(viewerID uint, limit int) ([]models.Action, error) {
	followeeIDs, err := s.follows.GetFolloweeIDs(viewerID)
	if err != nil {
		return nil, err
	}
	return s.actions.GetFeed(viewerID, followeeIDs, limit)
}
