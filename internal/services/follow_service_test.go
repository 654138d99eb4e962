package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
	"github.com/vuteanh/bookmarks/backend/internal/services"
	"gorm.io/gorm"
)

func newFollowService(db *gorm.DB) (*services.FollowService, repositories.FollowRepository) {
	follows := repositories.NewPostgresFollowRepository(db)
	users := repositories.NewPostgresUserRepository(db)
	return services.NewFollowService(follows, users, newActivityService(db)), follows
}

func TestFollow_Idempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc, follows := newFollowService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.Follow(alice.ID, bob.ID))
	require.NoError(t, svc.Follow(alice.ID, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", alice.ID, bob.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)

	ids, err := follows.GetFolloweeIDs(alice.ID)
	require.NoError(t, err)
	require.Equal(t, []uint{bob.ID}, ids)
}

func TestFollow_NotReciprocal(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc, follows := newFollowService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.Follow(alice.ID, bob.ID))

	back, err := follows.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, back)
}

func TestFollow_SelfRejected(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc, _ := newFollowService(db)
	alice := createUser(t, db, "alice")

	require.ErrorIs(t, svc.Follow(alice.ID, alice.ID), services.ErrSelfFollow)
}

func TestFollow_MissingTarget(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc, _ := newFollowService(db)
	alice := createUser(t, db, "alice")

	require.ErrorIs(t, svc.Follow(alice.ID, 9999), repositories.ErrNotFound)
	require.ErrorIs(t, svc.Unfollow(alice.ID, 9999), repositories.ErrNotFound)
}

func TestUnfollow_AbsentEdgeIsNoop(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc, _ := newFollowService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.Unfollow(alice.ID, bob.ID))
}

func TestFollow_RecordsActivity(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc, _ := newFollowService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.Follow(alice.ID, bob.ID))

	var action models.Action
	require.NoError(t, db.Where("user_id = ? AND verb = ?", alice.ID, models.VerbIsFollowing).First(&action).Error)
	require.Equal(t, models.TargetUser, action.TargetType)
	require.Equal(t, bob.ID, action.TargetID)
}
