package models

import "time"

// MaxTweetLength is the upper bound on tweet content, enforced both at
// the request layer and inside the mutation engine.
const MaxTweetLength = 280

// Tweet represents a short text message posted by a user. The owner and
// the creation timestamp are assigned once and never change.
type Tweet struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"size:280;not null"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
}

// TableName overrides the table name used by GORM
func (Tweet) TableName() string {
	return "tweets"
}

// CreateTweetRequest defines the request body for posting a new tweet
type CreateTweetRequest struct {
	TweetData     string `json:"tweet_data" validate:"required,max=280"`
	TweetMediaIDs []uint `json:"tweet_media_ids" validate:"omitempty,dive,min=1"`
}
