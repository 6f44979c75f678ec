package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foremanb/socialnet/backend/internal/notifications"
)

type NotificationHandler struct {
	engine *notifications.Engine
}

func NewNotificationHandler(engine *notifications.Engine) *NotificationHandler {
	return &NotificationHandler{engine: engine}
}

// GetNotifications returns the caller's notifications, newest first. Usernames
// and a string rendering of the target are exposed instead of raw ids.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := h.engine.ListFor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	responses := []gin.H{}
	for _, n := range items {
		responses = append(responses, gin.H{
			"id":        n.ID,
			"recipient": n.Recipient.Username,
			"actor":     n.Actor.Username,
			"verb":      n.Verb,
			"target":    h.engine.RenderTarget(n),
			"timestamp": n.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, responses)
}
