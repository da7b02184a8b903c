package models

import "time"

// Media represents an uploaded file owned by a user. A media row starts
// unattached and may later be bound to exactly one tweet; deleting that
// tweet detaches the media instead of deleting it.
type Media struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Filename   string    `json:"filename" gorm:"size:255;not null"`
	Path       string    `json:"path" gorm:"size:512;not null"`
	UploadedAt time.Time `json:"uploaded_at"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	TweetID    *uint     `json:"tweet_id,omitempty" gorm:"index"`
}

// TableName overrides the table name used by GORM
func (Media) TableName() string {
	return "media"
}

// URL returns the public address of the stored file. It is derived from
// the filename alone; the bytes themselves are served statically.
func (m *Media) URL() string {
	return "/static/uploads/" + m.Filename
}
