package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foremanb/socialnet/backend/internal/feed"
	"github.com/foremanb/socialnet/backend/internal/likes"
	"github.com/foremanb/socialnet/backend/internal/notifications"
)

// newTestRouter wires the handlers onto a gin engine with a stand-in for the
// auth middleware: the acting user is taken from the X-Test-User header.
func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := notifications.NewEngine(db)
	composer := feed.NewComposer(db)
	ledger := likes.NewLedger(db, engine)

	h := &Handler{
		Auth:         NewAuthHandler(db),
		Post:         NewPostHandler(db, composer),
		Comment:      NewCommentHandler(db, engine),
		User:         NewUserHandler(db),
		Like:         NewLikeHandler(db, ledger),
		Notification: NewNotificationHandler(engine),
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if v := c.GetHeader("X-Test-User"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				c.Set("user_id", id)
			}
		}
		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/posts", h.Post.GetPosts)
		api.GET("/posts/:id", h.Post.GetPost)
		api.GET("/posts/:id/comments", h.Comment.GetComments)
		api.POST("/posts", h.Post.CreatePost)
		api.PUT("/posts/:id", h.Post.UpdatePost)
		api.DELETE("/posts/:id", h.Post.DeletePost)
		api.GET("/feed", h.Post.GetFeed)
		api.POST("/comments", h.Comment.CreateComment)
		api.POST("/posts/:id/like", h.Like.LikePost)
		api.POST("/posts/:id/unlike", h.Like.UnlikePost)
		api.GET("/notifications", h.Notification.GetNotifications)
		api.POST("/users/:id/follow", h.User.FollowUser)
		api.DELETE("/users/:id/follow", h.User.UnfollowUser)
	}

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, userID int, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-Test-User", strconv.Itoa(userID))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
