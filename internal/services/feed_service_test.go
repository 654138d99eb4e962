package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
	"github.com/vuteanh/bookmarks/backend/internal/services"
	"gorm.io/gorm"
)

func newFeedService(db *gorm.DB) *services.FeedService {
	actions := repositories.NewPostgresActionRepository(db)
	follows := repositories.NewPostgresFollowRepository(db)
	return services.NewFeedService(actions, follows)
}

func appendAction(t *testing.T, db *gorm.DB, userID uint, verb string, createdAt time.Time) *models.Action {
	t.Helper()

	action := &models.Action{UserID: userID, Verb: verb, CreatedAt: createdAt}
	require.NoError(t, db.Create(action).Error)
	return action
}

func TestDashboardFeed_FollowedUsersOnly(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	feed := newFeedService(db)
	follows := repositories.NewPostgresFollowRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	require.NoError(t, follows.CreateFollow(alice.ID, bob.ID))

	now := time.Now()
	bookmarked := appendAction(t, db, bob.ID, models.VerbBookmarkedImage, now.Add(-time.Minute))
	appendAction(t, db, carol.ID, models.VerbCreatedAccount, now)

	actions, err := feed.DashboardFeed(alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	require.Equal(t, bookmarked.ID, actions[0].ID)
}

func TestDashboardFeed_ExcludesViewerOwnActions(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	feed := newFeedService(db)
	follows := repositories.NewPostgresFollowRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, follows.CreateFollow(alice.ID, bob.ID))

	now := time.Now()
	appendAction(t, db, alice.ID, models.VerbCreatedAccount, now)
	theirs := appendAction(t, db, bob.ID, models.VerbBookmarkedImage, now)

	actions, err := feed.DashboardFeed(alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	require.Equal(t, theirs.ID, actions[0].ID)
}

func TestDashboardFeed_DiscoverFallback(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	feed := newFeedService(db)

	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	now := time.Now()
	appendAction(t, db, bob.ID, models.VerbBookmarkedImage, now.Add(-time.Minute))
	appendAction(t, db, carol.ID, models.VerbCreatedAccount, now)
	own := appendAction(t, db, carol.ID, models.VerbBookmarkedImage, now)

	// Carol follows no one: she gets everyone's recent actions except her own.
	actions, err := feed.DashboardFeed(carol.ID, 10)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	require.Equal(t, bob.ID, actions[0].UserID)
	require.NotEqual(t, own.ID, actions[0].ID)
}

func TestDashboardFeed_OrderAndLimit(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	feed := newFeedService(db)
	follows := repositories.NewPostgresFollowRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	require.NoError(t, follows.CreateFollow(alice.ID, bob.ID))

	now := time.Now()
	oldest := appendAction(t, db, bob.ID, "a", now.Add(-2*time.Minute))
	tieFirst := appendAction(t, db, bob.ID, "b", now)
	tieSecond := appendAction(t, db, bob.ID, "c", now)

	actions, err := feed.DashboardFeed(alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, actions, 3)

	// Newest first; equal timestamps resolve by id descending.
	require.Equal(t, tieSecond.ID, actions[0].ID)
	require.Equal(t, tieFirst.ID, actions[1].ID)
	require.Equal(t, oldest.ID, actions[2].ID)

	bounded, err := feed.DashboardFeed(alice.ID, 2)
	require.NoError(t, err)
	require.Len(t, bounded, 2)
	require.Equal(t, tieSecond.ID, bounded[0].ID)
}
