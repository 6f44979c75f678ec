package likes

import (
	"errors"

	"gorm.io/gorm"

	"github.com/foremanb/socialnet/backend/internal/models"
	"github.com/foremanb/socialnet/backend/internal/notifications"
)

var (
	// ErrDuplicateLike means the (user, post) pair already has a like.
	ErrDuplicateLike = errors.New("post already liked by this user")
	// ErrLikeNotFound means there is no like to remove for the pair.
	ErrLikeNotFound = errors.New("no like by this user on this post")
)

// Ledger enforces at-most-one like per (user, post) and keeps the liked-post
// notification in step with the like itself. The like and its notification
// are written in one transaction: if the notification fails, the like rolls
// back with it.
type Ledger struct {
	db     *gorm.DB
	engine *notifications.Engine
}

func NewLedger(db *gorm.DB, engine *notifications.Engine) *Ledger {
	return &Ledger{db: db, engine: engine}
}

// Like records userID liking post and notifies the post's author.
func (l *Ledger) Like(userID int, post models.Post) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("user_id = ? AND post_id = ?", userID, post.ID).First(&existing).Error
		if err == nil {
			return ErrDuplicateLike
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.Like{UserID: userID, PostID: post.ID}
		if err := tx.Create(&like).Error; err != nil {
			// The unique index wins races the check above can miss.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateLike
			}
			return err
		}

		return l.engine.WithDB(tx).Notify(
			post.AuthorID, userID,
			notifications.VerbLikedPost,
			notifications.TargetPost, post.ID,
		)
	})
}

// Unlike removes userID's like on post and retracts the matching
// notification, so the author is not left looking at a ghost like.
func (l *Ledger) Unlike(userID int, post models.Post) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		err := tx.Where("user_id = ? AND post_id = ?", userID, post.ID).First(&like).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLikeNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&like).Error; err != nil {
			return err
		}

		return l.engine.WithDB(tx).Retract(
			userID, post.AuthorID,
			notifications.VerbLikedPost,
			notifications.TargetPost, post.ID,
		)
	})
}
