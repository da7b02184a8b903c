package services

import (
	"testing"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/avolkov-dev/corptweet/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A fresh connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Media{},
		&models.Follow{},
		&models.Like{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, APIKey: name + "-key"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTweetService(db *gorm.DB) TweetService {
	return NewTweetService(
		db,
		repositories.NewPostgresTweetRepository(db),
		repositories.NewPostgresMediaRepository(db),
		repositories.NewPostgresLikeRepository(db),
	)
}

func newRelationshipService(db *gorm.DB) RelationshipService {
	return NewRelationshipService(
		db,
		repositories.NewPostgresFollowRepository(db),
		repositories.NewPostgresUserRepository(db),
	)
}

func newTimelineService(db *gorm.DB) TimelineService {
	return NewTimelineService(
		repositories.NewPostgresTweetRepository(db),
		repositories.NewPostgresMediaRepository(db),
		repositories.NewPostgresLikeRepository(db),
		repositories.NewPostgresFollowRepository(db),
		repositories.NewPostgresUserRepository(db),
	)
}

func newProfileService(db *gorm.DB) ProfileService {
	return NewProfileService(
		repositories.NewPostgresUserRepository(db),
		repositories.NewPostgresFollowRepository(db),
	)
}
