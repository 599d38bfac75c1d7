package models

import "time"

// Post is one generated LinkedIn post. Rows are append-only: the service
// never updates or deletes a post after it is stored, so created_at stays
// monotone with id under normal clock behavior.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostText  string    `gorm:"type:text;not null" json:"post_text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}
