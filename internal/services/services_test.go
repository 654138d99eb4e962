package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
	"github.com/vuteanh/bookmarks/backend/internal/services"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Follow{},
		&models.Action{},
		&models.Image{},
		&models.ImageLike{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: username + "@example.com", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createImage(t *testing.T, db *gorm.DB, userID uint, title string) *models.Image {
	t.Helper()

	image := &models.Image{UserID: userID, Title: title, URL: "https://example.com/" + title + ".jpg"}
	require.NoError(t, db.Create(image).Error)
	return image
}

func newActivityService(db *gorm.DB) *services.ActivityService {
	return services.NewActivityService(repositories.NewPostgresActionRepository(db), nil)
}

func countActions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Action{}).Count(&count).Error)
	return count
}
