package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/avolkov-dev/corptweet/backend/internal/repositories"
	"gorm.io/gorm"
)

// TweetService is the mutation engine for tweets, media and like
// edges. Every operation runs inside its own transaction: it either
// commits in full or leaves no trace.
type TweetService interface {
	CreateTweet(ctx context.Context, user *models.User, content string, mediaIDs []uint) (uint, error)
	UploadMedia(ctx context.Context, user *models.User, filename, path string) (uint, error)
	DeleteTweet(ctx context.Context, user *models.User, tweetID uint) error
	LikeTweet(ctx context.Context, user *models.User, tweetID uint) error
	UnlikeTweet(ctx context.Context, user *models.User, tweetID uint) error
}

type tweetService struct {
	db        *gorm.DB
	tweetRepo repositories.TweetRepository
	mediaRepo repositories.MediaRepository
	likeRepo  repositories.LikeRepository
}

// NewTweetService creates a new TweetService
func NewTweetService(
	db *gorm.DB,
	tweetRepo repositories.TweetRepository,
	mediaRepo repositories.MediaRepository,
	likeRepo repositories.LikeRepository,
) TweetService {
	return &tweetService{
		db:        db,
		tweetRepo: tweetRepo,
		mediaRepo: mediaRepo,
		likeRepo:  likeRepo,
	}
}

// CreateTweet validates the content, creates the tweet and attaches
// the requested media. Media ids that do not exist or belong to a
// different user are silently skipped.
func (s *tweetService) CreateTweet(ctx context.Context, user *models.User, content string, mediaIDs []uint) (uint, error) {
	if content == "" {
		return 0, &ValidationError{Field: "tweet_data", Reason: "must not be empty"}
	}
	// Rune count, matching the DTO max=280 rule
	if utf8.RuneCountInString(content) > models.MaxTweetLength {
		return 0, &ValidationError{
			Field:  "tweet_data",
			Reason: fmt.Sprintf("must not exceed %d characters", models.MaxTweetLength),
		}
	}

	var tweetID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tweets := s.tweetRepo.WithTx(tx)
		media := s.mediaRepo.WithTx(tx)

		tweet := &models.Tweet{
			Content:   content,
			CreatedAt: time.Now().UTC(),
			UserID:    user.ID,
		}
		if err := tweets.CreateTweet(ctx, tweet); err != nil {
			return err
		}

		owned, err := media.GetOwnedByIDs(ctx, user.ID, mediaIDs)
		if err != nil {
			return err
		}
		for _, m := range owned {
			if err := media.AttachToTweet(ctx, m.ID, tweet.ID); err != nil {
				return err
			}
		}

		tweetID = tweet.ID
		return nil
	})
	if err != nil {
		return 0, wrapPersistence("create tweet", err)
	}
	return tweetID, nil
}

// UploadMedia records an uploaded file as an unattached media row
func (s *tweetService) UploadMedia(ctx context.Context, user *models.User, filename, path string) (uint, error) {
	media := &models.Media{
		Filename:   filename,
		Path:       path,
		UploadedAt: time.Now().UTC(),
		UserID:     user.ID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.mediaRepo.WithTx(tx).CreateMedia(ctx, media)
	})
	if err != nil {
		return 0, wrapPersistence("upload media", err)
	}
	return media.ID, nil
}

// DeleteTweet removes a tweet owned by user, cascading its like edges
// and detaching its media in the same transaction
func (s *tweetService) DeleteTweet(ctx context.Context, user *models.User, tweetID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tweets := s.tweetRepo.WithTx(tx)
		media := s.mediaRepo.WithTx(tx)
		likes := s.likeRepo.WithTx(tx)

		tweet, err := tweets.GetTweetByID(ctx, tweetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTweetNotFound
			}
			return err
		}
		if tweet.UserID != user.ID {
			return ErrNotTweetOwner
		}

		if err := likes.DeleteByTweetID(ctx, tweetID); err != nil {
			return err
		}
		if err := media.DetachFromTweet(ctx, tweetID); err != nil {
			return err
		}
		return tweets.DeleteTweet(ctx, tweetID)
	})
	return wrapPersistence("delete tweet", err)
}

// LikeTweet adds the like edge if it is not already present. Liking a
// tweet twice reports success without touching state.
func (s *tweetService) LikeTweet(ctx context.Context, user *models.User, tweetID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tweets := s.tweetRepo.WithTx(tx)
		likes := s.likeRepo.WithTx(tx)

		if _, err := tweets.GetTweetByID(ctx, tweetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTweetNotFound
			}
			return err
		}

		liked, err := likes.HasUserLikedTweet(ctx, user.ID, tweetID)
		if err != nil {
			return err
		}
		if liked {
			return nil
		}
		return likes.CreateLike(ctx, &models.Like{UserID: user.ID, TweetID: tweetID})
	})
	return wrapPersistence("like tweet", err)
}

// UnlikeTweet removes the like edge if present. Unliking a tweet that
// was never liked reports success.
func (s *tweetService) UnlikeTweet(ctx context.Context, user *models.User, tweetID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tweets := s.tweetRepo.WithTx(tx)
		likes := s.likeRepo.WithTx(tx)

		if _, err := tweets.GetTweetByID(ctx, tweetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTweetNotFound
			}
			return err
		}

		liked, err := likes.HasUserLikedTweet(ctx, user.ID, tweetID)
		if err != nil {
			return err
		}
		if !liked {
			return nil
		}
		return likes.DeleteLike(ctx, user.ID, tweetID)
	})
	return wrapPersistence("unlike tweet", err)
}
