package feed

import (
	"gorm.io/gorm"

	"github.com/foremanb/socialnet/backend/internal/models"
)

// Composer builds a user's feed at query time from the follow graph and the
// posts table. Nothing is materialized.
type Composer struct {
	db *gorm.DB
}

func NewComposer(db *gorm.DB) *Composer {
	return &Composer{db: db}
}

// FeedFor returns the posts authored by users that userID follows, newest
// first. A user's own posts never appear in their own feed, and following
// nobody yields an empty feed.
func (c *Composer) FeedFor(userID int) ([]models.Post, error) {
	var posts []models.Post

	followed := c.db.Model(&models.Follow{}).
		Select("following_id").
		Where("follower_id = ?", userID)

	err := c.db.
		Where("author_id IN (?)", followed).
		Preload("Author").
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}
