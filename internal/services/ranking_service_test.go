package services_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
	"github.com/vuteanh/bookmarks/backend/internal/services"
	"gorm.io/gorm"
)

func newRankingService(t *testing.T, db *gorm.DB) *services.RankingService {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ranking := repositories.NewRedisRankingRepository(client)
	images := repositories.NewPostgresImageRepository(db)
	return services.NewRankingService(ranking, images)
}

func recordViews(t *testing.T, svc *services.RankingService, imageID uint, n int) int64 {
	t.Helper()

	var total int64
	for i := 0; i < n; i++ {
		var err error
		total, err = svc.RecordView(context.Background(), imageID)
		require.NoError(t, err)
	}
	return total
}

func TestRecordView_CountsMonotonically(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newRankingService(t, db)
	alice := createUser(t, db, "alice")
	image := createImage(t, db, alice.ID, "lighthouse")

	require.EqualValues(t, 5, recordViews(t, svc, image.ID, 5))
}

func TestMostViewed_OrdersByViewCount(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newRankingService(t, db)
	alice := createUser(t, db, "alice")
	x := createImage(t, db, alice.ID, "x")
	y := createImage(t, db, alice.ID, "y")
	z := createImage(t, db, alice.ID, "z")

	recordViews(t, svc, x.ID, 5)
	recordViews(t, svc, y.ID, 3)
	recordViews(t, svc, z.ID, 8)

	top, err := svc.MostViewed(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, z.ID, top[0].ID)
	require.Equal(t, x.ID, top[1].ID)
}

func TestMostViewed_ReturnsAtMostK(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newRankingService(t, db)
	alice := createUser(t, db, "alice")
	image := createImage(t, db, alice.ID, "canyon")

	recordViews(t, svc, image.ID, 1)

	top, err := svc.MostViewed(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
}

func TestMostViewed_EmptyRanking(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newRankingService(t, db)

	top, err := svc.MostViewed(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, top)
}

func TestMostViewed_SkipsRankedIDsWithoutRows(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newRankingService(t, db)
	alice := createUser(t, db, "alice")
	image := createImage(t, db, alice.ID, "pier")

	recordViews(t, svc, image.ID, 2)
	recordViews(t, svc, 4242, 9) // never bookmarked in the relational store

	top, err := svc.MostViewed(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, image.ID, top[0].ID)
}
