package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foremanb/socialnet/backend/internal/likes"
	"github.com/foremanb/socialnet/backend/internal/models"
)

type LikeHandler struct {
	db     *gorm.DB
	ledger *likes.Ledger
}

func NewLikeHandler(db *gorm.DB, ledger *likes.Ledger) *LikeHandler {
	return &LikeHandler{db: db, ledger: ledger}
}

// LikePost likes a post on behalf of the caller. Liking twice is rejected,
// not silently absorbed.
func (h *LikeHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.ledger.Like(userID, post); err != nil {
		if errors.Is(err, likes.ErrDuplicateLike) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "You already liked this post."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"detail": "Post liked successfully."})
}

// UnlikePost removes the caller's like and the notification it produced.
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	postID := c.Param("id")

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.ledger.Unlike(userID, post); err != nil {
		if errors.Is(err, likes.ErrLikeNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "You have not like this post."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Post unliked."})
}
