package models

import "time"

// Like represents a like edge between a user and a tweet, unique per
// pair. Like edges are removed when their tweet is deleted.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_tweet_like"`
	TweetID   uint      `json:"tweet_id" gorm:"index;uniqueIndex:idx_user_tweet_like"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name used by GORM
func (Like) TableName() string {
	return "likes"
}
