package services

import (
	"errors"

	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
)

// ErrSelfFollow is returned when a user tries to follow themselves.
var ErrSelfFollow = errors.New("users cannot follow themselves")

// FollowService owns follow/unfollow semantics on top of the social graph
// store: idempotent edges, existing targets only, activity on new follows.
type FollowService struct {
	follows  repositories.FollowRepository
	users    repositories.UserRepository
	activity *ActivityService
}

// NewFollowService creates a new FollowService
func NewFollowService(follows repositories.FollowRepository, users repositories.UserRepository, activity *ActivityService) *FollowService {
	return &FollowService{follows: follows, users: users, activity: activity}
}

// Follow creates the edge follower -> followee. Repeated calls with the same
// pair leave exactly one edge. The followee must exist.
func (s *FollowService) Follow(followerID, followeeID uint) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}
	if _, err := s.users.GetUserByID(followeeID); err != nil {
		return err
	}
	if err := s.follows.CreateFollow(followerID, followeeID); err != nil {
		return err
	}

	_, err := s.activity.Record(followerID, models.VerbIsFollowing, &models.ActionTarget{
		Type: models.TargetUser,
		ID:   followeeID,
	})
	return err
}

// Unfollow removes the edge follower -> followee; removing an absent edge
// succeeds silently. The followee must exist.
func (s *FollowService) Unfollow(followerID, followeeID uint) error {
	if _, err := s.users.GetUserByID(followeeID); err != nil {
		return err
	}
	return s.follows.DeleteFollow(followerID, followeeID)
}
