package models

import "time"

// Follow represents a directed follow edge between two users. The
// composite unique index makes the relation a set: re-following is a
// no-op at the storage layer.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	FollowedID uint      `json:"followed_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follows"
}
