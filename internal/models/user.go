package models

// User represents an account in the system. Users are provisioned
// externally (see cmd/seed); the API only ever reads them and links
// them through follow and like edges.
type User struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"size:100;not null"`
	APIKey string `json:"-" gorm:"size:64;uniqueIndex;not null"` // opaque auth token, never serialized
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}

// UserRef is the compact {id, name} projection used in timelines and profiles
type UserRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ToRef converts a User to its compact projection
func (u User) ToRef() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}
