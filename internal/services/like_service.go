package services

import (
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
)

// LikeService mutates the like relation and keeps the denormalized
// total_likes counter in sync. The counter is recomputed from the relation
// after every mutation, so two racing requests settle on the true cardinality
// whichever recompute runs last.
type LikeService struct {
	likes    repositories.LikeRepository
	images   repositories.ImageRepository
	activity *ActivityService
}

// NewLikeService creates a new LikeService
func NewLikeService(likes repositories.LikeRepository, images repositories.ImageRepository, activity *ActivityService) *LikeService {
	return &LikeService{likes: likes, images: images, activity: activity}
}

// SetLike adds or removes the (user, image) like pair and refreshes
// total_likes. The image must exist. Liking an already liked image and
// unliking a never-liked one are no-ops that still refresh the counter.
func (s *LikeService) SetLike(userID, imageID uint, like bool) error {
	image, err := s.images.GetImageByID(imageID)
	if err != nil {
		return err
	}

	if like {
		if err := s.likes.CreateLike(userID, imageID); err != nil {
			return err
		}
		if _, err := s.activity.Record(userID, models.VerbLikes, &models.ActionTarget{
			Type: models.TargetImage,
			ID:   image.ID,
		}); err != nil {
			return err
		}
	} else {
		if err := s.likes.DeleteLike(userID, imageID); err != nil {
			return err
		}
	}

	// The explicit stand-in for a relation-changed trigger: recompute runs
	// synchronously after every add/remove.
	return s.images.RefreshTotalLikes(imageID)
}
