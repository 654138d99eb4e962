package services

import (
	"context"
	"sort"

	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
)

// RankingService tracks image views in the Redis counter store and answers
// most-viewed queries against it. View data never touches the relational
// store; losing it is acceptable.
type RankingService struct {
	ranking repositories.RankingRepository
	images  repositories.ImageRepository
}

// NewRankingService creates a new RankingService
func NewRankingService(ranking repositories.RankingRepository, images repositories.ImageRepository) *RankingService {
	return &RankingService{ranking: ranking, images: images}
}

// RecordView bumps the per-image view counter and the ranking set, returning
// the new total for the image.
func (s *RankingService) RecordView(ctx context.Context, imageID uint) (int64, error) {
	total, err := s.ranking.IncrementViews(ctx, imageID)
	if err != nil {
		return 0, err
	}
	if err := s.ranking.IncrementRanking(ctx, imageID); err != nil {
		return 0, err
	}
	return total, nil
}

// MostViewed returns up to k images ordered by descending view count. The
// relational store cannot return rows in an arbitrary requested order, so the
// fetched rows are re-sorted by their position in the ranking id list. Ranked
// ids without a matching image row (e.g. deleted images) are skipped.
func (s *RankingService) MostViewed(ctx context.Context, k int64) ([]models.Image, error) {
	ids, err := s.ranking.TopRanked(ctx, k)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Image{}, nil
	}

	images, err := s.images.GetImagesByIDs(ids)
	if err != nil {
		return nil, err
	}

	position := make(map[uint]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}
	sort.Slice(images, func(i, j int) bool {
		return position[images[i].ID] < position[images[j].ID]
	})
	return images, nil
}
