package handlers

import (
	"github.com/foremanb/socialnet/backend/internal/database"
	"github.com/foremanb/socialnet/backend/internal/feed"
	"github.com/foremanb/socialnet/backend/internal/likes"
	"github.com/foremanb/socialnet/backend/internal/notifications"
)

// Handler combines all handler types
type Handler struct {
	Auth         *AuthHandler
	Post         *PostHandler
	Comment      *CommentHandler
	User         *UserHandler
	Like         *LikeHandler
	Notification *NotificationHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *database.Database) *Handler {
	// Get the GORM DB instance from the service
	dbService := database.New()
	gormDB := dbService.GetDB()

	engine := notifications.NewEngine(gormDB)
	composer := feed.NewComposer(gormDB)
	ledger := likes.NewLedger(gormDB, engine)

	return &Handler{
		Auth:         NewAuthHandler(gormDB),
		Post:         NewPostHandler(gormDB, composer),
		Comment:      NewCommentHandler(gormDB, engine),
		User:         NewUserHandler(gormDB),
		Like:         NewLikeHandler(gormDB, ledger),
		Notification: NewNotificationHandler(engine),
	}
}
