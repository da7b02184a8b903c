package services

import (
	"context"
	"testing"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUserIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	require.NoError(t, svc.FollowUser(ctx, alice, bob.ID))
	require.NoError(t, svc.FollowUser(ctx, alice, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", alice.ID, bob.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFollowSelfRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	alice := createUser(t, db, "alice")
	ctx := context.Background()

	assert.ErrorIs(t, svc.FollowUser(ctx, alice, alice.ID), ErrSelfFollow)

	// Rejected regardless of existing edges
	bob := createUser(t, db, "bob")
	require.NoError(t, svc.FollowUser(ctx, alice, bob.ID))
	assert.ErrorIs(t, svc.FollowUser(ctx, alice, alice.ID), ErrSelfFollow)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFollowUnknownTarget(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	alice := createUser(t, db, "alice")
	ctx := context.Background()

	assert.ErrorIs(t, svc.FollowUser(ctx, alice, 42), ErrUserNotFound)
	assert.ErrorIs(t, svc.UnfollowUser(ctx, alice, 42), ErrUserNotFound)
}

func TestUnfollowUserIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	// Unfollow without a prior follow is a success no-op
	require.NoError(t, svc.UnfollowUser(ctx, alice, bob.ID))

	require.NoError(t, svc.FollowUser(ctx, alice, bob.ID))
	require.NoError(t, svc.UnfollowUser(ctx, alice, bob.ID))
	require.NoError(t, svc.UnfollowUser(ctx, alice, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowIsDirected(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	require.NoError(t, svc.FollowUser(ctx, alice, bob.ID))

	// The reverse edge does not exist until Bob follows back
	var count int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", bob.ID, alice.ID).
		Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, svc.FollowUser(ctx, bob, alice.ID))
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
