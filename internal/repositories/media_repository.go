package repositories

import (
	"context"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"gorm.io/gorm"
)

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	WithTx(tx *gorm.DB) MediaRepository
	CreateMedia(ctx context.Context, media *models.Media) error
	GetOwnedByIDs(ctx context.Context, userID uint, ids []uint) ([]models.Media, error)
	AttachToTweet(ctx context.Context, mediaID, tweetID uint) error
	DetachFromTweet(ctx context.Context, tweetID uint) error
	GetByTweetIDs(ctx context.Context, tweetIDs []uint) ([]models.Media, error)
}

// PostgresMediaRepository implements MediaRepository for PostgreSQL
type PostgresMediaRepository struct {
	db *gorm.DB
}

// NewPostgresMediaRepository creates a new PostgresMediaRepository
func NewPostgresMediaRepository(db *gorm.DB) *PostgresMediaRepository {
	return &PostgresMediaRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresMediaRepository) WithTx(tx *gorm.DB) MediaRepository {
	return &PostgresMediaRepository{db: tx}
}

// CreateMedia creates a new, unattached media row
func (r *PostgresMediaRepository) CreateMedia(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

// GetOwnedByIDs retrieves the media rows from ids that belong to
// userID. Ids that do not exist or belong to someone else are simply
// absent from the result.
func (r *PostgresMediaRepository) GetOwnedByIDs(ctx context.Context, userID uint, ids []uint) ([]models.Media, error) {
	var media []models.Media
	if len(ids) == 0 {
		return media, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}

// AttachToTweet binds a media row to a tweet
func (r *PostgresMediaRepository) AttachToTweet(ctx context.Context, mediaID, tweetID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Media{}).
		Where("id = ?", mediaID).
		Update("tweet_id", tweetID).Error
}

// DetachFromTweet clears the tweet reference on every media row
// attached to tweetID. The rows themselves survive.
func (r *PostgresMediaRepository) DetachFromTweet(ctx context.Context, tweetID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Media{}).
		Where("tweet_id = ?", tweetID).
		Update("tweet_id", nil).Error
}

// GetByTweetIDs retrieves all media attached to any of the given tweets
func (r *PostgresMediaRepository) GetByTweetIDs(ctx context.Context, tweetIDs []uint) ([]models.Media, error) {
	var media []models.Media
	if len(tweetIDs) == 0 {
		return media, nil
	}
	if err := r.db.WithContext(ctx).Where("tweet_id IN ?", tweetIDs).Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}
