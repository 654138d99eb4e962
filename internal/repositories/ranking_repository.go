package repositories

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const rankingKey = "image_ranking"

// RankingRepository keeps the per-image view counters and the global ranking
// sorted set in Redis. Counts here are deliberately decoupled from the
// relational store: high write rate, lossy semantics are acceptable.
type RankingRepository interface {
	IncrementViews(ctx context.Context, imageID uint) (int64, error)
	IncrementRanking(ctx context.Context, imageID uint) error
	TopRanked(ctx context.Context, k int64) ([]uint, error)
}

// RedisRankingRepository implements RankingRepository on a Redis client
type RedisRankingRepository struct {
	client *redis.Client
}

// NewRedisRankingRepository creates a new RedisRankingRepository
func NewRedisRankingRepository(client *redis.Client) *RedisRankingRepository {
	return &RedisRankingRepository{client: client}
}

// Keys follow the object-type:id:field convention, e.g. image:33:views.
func viewsKey(imageID uint) string {
	return fmt.Sprintf("image:%d:views", imageID)
}

// IncrementViews atomically bumps the view counter for an image and returns
// the new value.
func (r *RedisRankingRepository) IncrementViews(ctx context.Context, imageID uint) (int64, error) {
	return r.client.Incr(ctx, viewsKey(imageID)).Result()
}

// IncrementRanking adds one to the image's score in the ranking sorted set
func (r *RedisRankingRepository) IncrementRanking(ctx context.Context, imageID uint) error {
	member := strconv.FormatUint(uint64(imageID), 10)
	return r.client.ZIncrBy(ctx, rankingKey, 1, member).Err()
}

// TopRanked returns at most k image ids ordered by descending view score.
// Score ties resolve by member, which is stable across calls. Members that do
// not parse as ids are skipped.
func (r *RedisRankingRepository) TopRanked(ctx context.Context, k int64) ([]uint, error) {
	if k <= 0 {
		return nil, nil
	}
	members, err := r.client.ZRevRange(ctx, rankingKey, 0, k-1).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseUint(member, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
