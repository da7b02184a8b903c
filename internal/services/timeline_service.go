package services

import (
	"context"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/avolkov-dev/corptweet/backend/internal/repositories"
)

// TweetView is the timeline projection of a single tweet
type TweetView struct {
	ID          uint           `json:"id"`
	Content     string         `json:"content"`
	Attachments []string       `json:"attachments"`
	Author      models.UserRef `json:"author"`
	Likes       []LikeView     `json:"likes"`
}

// LikeView identifies one user who liked a tweet
type LikeView struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// TimelineService materializes personalized feeds. Every call re-reads
// committed state, so a caller always sees its own completed mutations.
type TimelineService interface {
	GetTimeline(ctx context.Context, user *models.User) ([]TweetView, error)
}

type timelineService struct {
	tweetRepo  repositories.TweetRepository
	mediaRepo  repositories.MediaRepository
	likeRepo   repositories.LikeRepository
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(
	tweetRepo repositories.TweetRepository,
	mediaRepo repositories.MediaRepository,
	likeRepo repositories.LikeRepository,
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
) TimelineService {
	return &timelineService{
		tweetRepo:  tweetRepo,
		mediaRepo:  mediaRepo,
		likeRepo:   likeRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// GetTimeline returns every tweet authored by user or by someone user
// follows, newest first
func (s *timelineService) GetTimeline(ctx context.Context, user *models.User) ([]TweetView, error) {
	followingIDs, err := s.followRepo.GetFollowingIDs(ctx, user.ID)
	if err != nil {
		return nil, wrapPersistence("get timeline", err)
	}
	authorIDs := append(followingIDs, user.ID)

	tweets, err := s.tweetRepo.GetTweetsByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, wrapPersistence("get timeline", err)
	}

	tweetIDs := make([]uint, len(tweets))
	for i, t := range tweets {
		tweetIDs[i] = t.ID
	}

	attachments, err := s.mediaRepo.GetByTweetIDs(ctx, tweetIDs)
	if err != nil {
		return nil, wrapPersistence("get timeline", err)
	}
	attachmentsByTweet := make(map[uint][]string)
	for _, m := range attachments {
		if m.TweetID != nil {
			attachmentsByTweet[*m.TweetID] = append(attachmentsByTweet[*m.TweetID], m.URL())
		}
	}

	likes, err := s.likeRepo.GetLikesByTweetIDs(ctx, tweetIDs)
	if err != nil {
		return nil, wrapPersistence("get timeline", err)
	}

	users, err := s.lookupUsers(ctx, tweets, likes)
	if err != nil {
		return nil, wrapPersistence("get timeline", err)
	}

	likersByTweet := make(map[uint][]LikeView)
	for _, l := range likes {
		likersByTweet[l.TweetID] = append(likersByTweet[l.TweetID], LikeView{
			UserID: l.UserID,
			Name:   users[l.UserID].Name,
		})
	}

	views := make([]TweetView, len(tweets))
	for i, t := range tweets {
		attachments := attachmentsByTweet[t.ID]
		if attachments == nil {
			// Always serialize as [], never null
			attachments = []string{}
		}
		likers := likersByTweet[t.ID]
		if likers == nil {
			likers = []LikeView{}
		}
		views[i] = TweetView{
			ID:          t.ID,
			Content:     t.Content,
			Attachments: attachments,
			Author:      users[t.UserID].ToRef(),
			Likes:       likers,
		}
	}
	return views, nil
}

// lookupUsers resolves every author and liker referenced by the
// timeline in a single query
func (s *timelineService) lookupUsers(ctx context.Context, tweets []models.Tweet, likes []models.Like) (map[uint]models.User, error) {
	idSet := make(map[uint]struct{})
	for _, t := range tweets {
		idSet[t.UserID] = struct{}{}
	}
	for _, l := range likes {
		idSet[l.UserID] = struct{}{}
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}
