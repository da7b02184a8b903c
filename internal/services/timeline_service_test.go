package services

import (
	"context"
	"testing"
	"time"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineFilter(t *testing.T) {
	db := newTestDB(t)
	tweets := newTweetService(db)
	relations := newRelationshipService(db)
	timeline := newTimelineService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	ctx := context.Background()

	ownID, err := tweets.CreateTweet(ctx, alice, "mine", nil)
	require.NoError(t, err)
	followedID, err := tweets.CreateTweet(ctx, bob, "followed", nil)
	require.NoError(t, err)
	_, err = tweets.CreateTweet(ctx, carol, "stranger", nil)
	require.NoError(t, err)

	require.NoError(t, relations.FollowUser(ctx, alice, bob.ID))

	views, err := timeline.GetTimeline(ctx, alice)
	require.NoError(t, err)

	ids := make([]uint, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	// Own and followed tweets are present, the stranger's is not
	assert.ElementsMatch(t, []uint{ownID, followedID}, ids)
}

func TestTimelineOrdering(t *testing.T) {
	db := newTestDB(t)
	timeline := newTimelineService(db)
	alice := createUser(t, db, "alice")
	ctx := context.Background()

	// Same timestamp: the id tie-break keeps the order deterministic
	now := time.Now().UTC().Truncate(time.Second)
	earlier := now.Add(-time.Minute)
	for _, tw := range []models.Tweet{
		{Content: "first", CreatedAt: earlier, UserID: alice.ID},
		{Content: "second", CreatedAt: now, UserID: alice.ID},
		{Content: "third", CreatedAt: now, UserID: alice.ID},
	} {
		tw := tw
		require.NoError(t, db.Create(&tw).Error)
	}

	views, err := timeline.GetTimeline(ctx, alice)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, "third", views[0].Content)
	assert.Equal(t, "second", views[1].Content)
	assert.Equal(t, "first", views[2].Content)
}

func TestTimelineProjection(t *testing.T) {
	db := newTestDB(t)
	tweets := newTweetService(db)
	relations := newRelationshipService(db)
	timeline := newTimelineService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	mediaID, err := tweets.UploadMedia(ctx, alice, "photo.png", "static/uploads/photo.png")
	require.NoError(t, err)
	tweetID, err := tweets.CreateTweet(ctx, alice, "look at this", []uint{mediaID})
	require.NoError(t, err)

	require.NoError(t, relations.FollowUser(ctx, bob, alice.ID))
	require.NoError(t, tweets.LikeTweet(ctx, bob, tweetID))

	views, err := timeline.GetTimeline(ctx, bob)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, tweetID, view.ID)
	assert.Equal(t, "look at this", view.Content)
	assert.Equal(t, []string{"/static/uploads/photo.png"}, view.Attachments)
	assert.Equal(t, models.UserRef{ID: alice.ID, Name: "alice"}, view.Author)
	require.Len(t, view.Likes, 1)
	assert.Equal(t, LikeView{UserID: bob.ID, Name: "bob"}, view.Likes[0])
}

func TestTimelineReflectsDeletes(t *testing.T) {
	db := newTestDB(t)
	tweets := newTweetService(db)
	relations := newRelationshipService(db)
	timeline := newTimelineService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	tweetID, err := tweets.CreateTweet(ctx, alice, "short lived", nil)
	require.NoError(t, err)
	require.NoError(t, relations.FollowUser(ctx, bob, alice.ID))
	require.NoError(t, tweets.LikeTweet(ctx, bob, tweetID))

	require.NoError(t, tweets.DeleteTweet(ctx, alice, tweetID))

	// Gone from every reader's timeline, no cache in the way
	for _, u := range []*models.User{alice, bob} {
		views, err := timeline.GetTimeline(ctx, u)
		require.NoError(t, err)
		assert.Empty(t, views)
	}
}

func TestTimelineEmptyCollectionsAreArrays(t *testing.T) {
	db := newTestDB(t)
	tweets := newTweetService(db)
	timeline := newTimelineService(db)
	alice := createUser(t, db, "alice")
	ctx := context.Background()

	_, err := tweets.CreateTweet(ctx, alice, "plain", nil)
	require.NoError(t, err)

	views, err := timeline.GetTimeline(ctx, alice)
	require.NoError(t, err)
	require.Len(t, views, 1)

	// No media and no likes still marshal as [], never null
	assert.NotNil(t, views[0].Attachments)
	assert.Empty(t, views[0].Attachments)
	assert.NotNil(t, views[0].Likes)
	assert.Empty(t, views[0].Likes)
}

func TestTimelineEmptyForLoneUser(t *testing.T) {
	db := newTestDB(t)
	timeline := newTimelineService(db)
	alice := createUser(t, db, "alice")

	views, err := timeline.GetTimeline(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, views)
}
