package models

import "time"

// Like records that a user liked a post. The composite unique index is what
// keeps concurrent duplicate likes out; the handlers never lock.
type Like struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"uniqueIndex:idx_user_post_like" json:"user_id"`
	PostID    int       `gorm:"uniqueIndex:idx_user_post_like" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
