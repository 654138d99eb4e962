package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
	"github.com/vuteanh/bookmarks/backend/internal/services"
	"gorm.io/gorm"
)

func newLikeService(db *gorm.DB) *services.LikeService {
	likes := repositories.NewPostgresLikeRepository(db)
	images := repositories.NewPostgresImageRepository(db)
	return services.NewLikeService(likes, images, newActivityService(db))
}

func totalLikes(t *testing.T, db *gorm.DB, imageID uint) int64 {
	t.Helper()

	var image models.Image
	require.NoError(t, db.First(&image, imageID).Error)
	return image.TotalLikes
}

func TestSetLike_TotalMatchesRelation(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newLikeService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	image := createImage(t, db, bob.ID, "sunset")

	require.NoError(t, svc.SetLike(alice.ID, image.ID, true))
	require.EqualValues(t, 1, totalLikes(t, db, image.ID))

	require.NoError(t, svc.SetLike(bob.ID, image.ID, true))
	require.EqualValues(t, 2, totalLikes(t, db, image.ID))

	require.NoError(t, svc.SetLike(alice.ID, image.ID, false))
	require.EqualValues(t, 1, totalLikes(t, db, image.ID))
}

func TestSetLike_LikeThenUnlikeReturnsToZero(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newLikeService(db)
	alice := createUser(t, db, "alice")
	image := createImage(t, db, alice.ID, "harbor")

	require.NoError(t, svc.SetLike(alice.ID, image.ID, true))
	require.NoError(t, svc.SetLike(alice.ID, image.ID, false))
	require.EqualValues(t, 0, totalLikes(t, db, image.ID))
}

func TestSetLike_DuplicateLikeKeepsRelationASet(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newLikeService(db)
	alice := createUser(t, db, "alice")
	image := createImage(t, db, alice.ID, "dunes")

	require.NoError(t, svc.SetLike(alice.ID, image.ID, true))
	require.NoError(t, svc.SetLike(alice.ID, image.ID, true))

	var pairs int64
	require.NoError(t, db.Model(&models.ImageLike{}).Where("image_id = ?", image.ID).Count(&pairs).Error)
	require.EqualValues(t, 1, pairs)
	require.EqualValues(t, 1, totalLikes(t, db, image.ID))
}

func TestSetLike_UnlikeWithoutLikeIsNoop(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newLikeService(db)
	alice := createUser(t, db, "alice")
	image := createImage(t, db, alice.ID, "forest")

	require.NoError(t, svc.SetLike(alice.ID, image.ID, false))
	require.EqualValues(t, 0, totalLikes(t, db, image.ID))
}

func TestSetLike_MissingImage(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newLikeService(db)
	alice := createUser(t, db, "alice")

	require.ErrorIs(t, svc.SetLike(alice.ID, 9999, true), repositories.ErrNotFound)
}

func TestSetLike_RecordsActivityOnLikeOnly(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newLikeService(db)
	alice := createUser(t, db, "alice")
	image := createImage(t, db, alice.ID, "glacier")

	require.NoError(t, svc.SetLike(alice.ID, image.ID, true))
	require.NoError(t, svc.SetLike(alice.ID, image.ID, false))

	var count int64
	require.NoError(t, db.Model(&models.Action{}).Where("verb = ?", models.VerbLikes).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
