package repositories

import (
	"context"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"gorm.io/gorm"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	WithTx(tx *gorm.DB) TweetRepository
	CreateTweet(ctx context.Context, tweet *models.Tweet) error
	GetTweetByID(ctx context.Context, id uint) (*models.Tweet, error)
	DeleteTweet(ctx context.Context, id uint) error
	GetTweetsByAuthorIDs(ctx context.Context, authorIDs []uint) ([]models.Tweet, error)
}

// PostgresTweetRepository implements TweetRepository for PostgreSQL
type PostgresTweetRepository struct {
	db *gorm.DB
}

// NewPostgresTweetRepository creates a new PostgresTweetRepository
func NewPostgresTweetRepository(db *gorm.DB) *PostgresTweetRepository {
	return &PostgresTweetRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresTweetRepository) WithTx(tx *gorm.DB) TweetRepository {
	return &PostgresTweetRepository{db: tx}
}

// CreateTweet creates a new tweet row
func (r *PostgresTweetRepository) CreateTweet(ctx context.Context, tweet *models.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

// GetTweetByID retrieves a tweet by ID
func (r *PostgresTweetRepository) GetTweetByID(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).First(&tweet, id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// DeleteTweet deletes a tweet row by ID
func (r *PostgresTweetRepository) DeleteTweet(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Tweet{}, id).Error
}

// GetTweetsByAuthorIDs retrieves every tweet authored by one of the
// given users, newest first. Timestamp ties are broken by ID so the
// ordering stays deterministic on stores with coarse clock resolution.
func (r *PostgresTweetRepository) GetTweetsByAuthorIDs(ctx context.Context, authorIDs []uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if len(authorIDs) == 0 {
		return tweets, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Order("id DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}
