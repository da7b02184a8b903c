package repositories

import (
	"context"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like-edge data operations
type LikeRepository interface {
	WithTx(tx *gorm.DB) LikeRepository
	CreateLike(ctx context.Context, like *models.Like) error
	DeleteLike(ctx context.Context, userID, tweetID uint) error
	HasUserLikedTweet(ctx context.Context, userID, tweetID uint) (bool, error)
	GetLikesByTweetIDs(ctx context.Context, tweetIDs []uint) ([]models.Like, error)
	DeleteByTweetID(ctx context.Context, tweetID uint) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresLikeRepository) WithTx(tx *gorm.DB) LikeRepository {
	return &PostgresLikeRepository{db: tx}
}

// CreateLike creates a like edge
func (r *PostgresLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// DeleteLike removes the like edge between the user and the tweet, if any
func (r *PostgresLikeRepository) DeleteLike(ctx context.Context, userID, tweetID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&models.Like{}).Error
}

// HasUserLikedTweet reports whether the like edge exists
func (r *PostgresLikeRepository) HasUserLikedTweet(ctx context.Context, userID, tweetID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesByTweetIDs retrieves all like edges targeting any of the given tweets
func (r *PostgresLikeRepository) GetLikesByTweetIDs(ctx context.Context, tweetIDs []uint) ([]models.Like, error) {
	var likes []models.Like
	if len(tweetIDs) == 0 {
		return likes, nil
	}
	if err := r.db.WithContext(ctx).Where("tweet_id IN ?", tweetIDs).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// DeleteByTweetID removes every like edge targeting tweetID, used when
// the tweet itself is deleted
func (r *PostgresLikeRepository) DeleteByTweetID(ctx context.Context, tweetID uint) error {
	return r.db.WithContext(ctx).
		Where("tweet_id = ?", tweetID).
		Delete(&models.Like{}).Error
}
