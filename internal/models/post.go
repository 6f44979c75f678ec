package models

import (
	"fmt"
	"time"
)

type Post struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// String renders the post the way notification targets display it.
func (p Post) String() string {
	return fmt.Sprintf("Post: %s", p.Title)
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
