package notifications

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/foremanb/socialnet/backend/internal/models"
)

// Verbs used by the content handlers. Creation and retraction must use the
// same constant: Retract matches the verb byte-for-byte, so a drifted string
// leaves the notification behind as a ghost.
const (
	VerbCommentedPost = "commented on your post"
	VerbLikedPost     = "liked your post"
)

// Target entity kinds.
const (
	TargetPost    = "post"
	TargetComment = "comment"
)

// Engine writes and removes notification records. It is always a side effect
// of a content action, never driven by a client request directly.
type Engine struct {
	db         *gorm.DB
	notifySelf bool
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{
		db:         db,
		notifySelf: os.Getenv("NOTIFY_SELF") != "false",
	}
}

// WithDB returns a copy of the engine bound to the given handle, so a caller
// can run Notify/Retract inside its own transaction.
func (e *Engine) WithDB(db *gorm.DB) *Engine {
	return &Engine{db: db, notifySelf: e.notifySelf}
}

// Notify records that actor did verb to recipient's entity. When NOTIFY_SELF
// is disabled, acting on your own content produces nothing.
func (e *Engine) Notify(recipientID, actorID int, verb, targetType string, targetID int) error {
	if !e.notifySelf && recipientID == actorID {
		return nil
	}

	notification := models.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        verb,
		TargetType:  targetType,
		TargetID:    targetID,
	}

	return e.db.Create(&notification).Error
}

// Retract deletes every notification matching the given tuple exactly.
// Matching zero rows is not an error; the triggering condition may have been
// undone already, or nothing was created in the first place.
func (e *Engine) Retract(actorID, recipientID int, verb, targetType string, targetID int) error {
	return e.db.
		Where("actor_id = ? AND recipient_id = ? AND verb = ? AND target_type = ? AND target_id = ?",
			actorID, recipientID, verb, targetType, targetID).
		Delete(&models.Notification{}).Error
}

// RenderTarget resolves a notification's target to its display string, e.g.
// "Post: My first post". A target that no longer exists falls back to
// "<type> #<id>".
func (e *Engine) RenderTarget(n models.Notification) string {
	switch n.TargetType {
	case TargetPost:
		var post models.Post
		if err := e.db.First(&post, n.TargetID).Error; err == nil {
			return post.String()
		}
	case TargetComment:
		var comment models.Comment
		if err := e.db.First(&comment, n.TargetID).Error; err == nil {
			return fmt.Sprintf("Comment: %s", comment.Content)
		}
	}
	return fmt.Sprintf("%s #%d", n.TargetType, n.TargetID)
}

// ListFor returns the user's notifications, most recent first.
func (e *Engine) ListFor(userID int) ([]models.Notification, error) {
	var notifications []models.Notification

	err := e.db.
		Where("recipient_id = ?", userID).
		Preload("Recipient").
		Preload("Actor").
		Order("created_at desc").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}
