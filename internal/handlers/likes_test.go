package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foremanb/socialnet/backend/internal/models"
	"github.com/foremanb/socialnet/backend/internal/testdb"
)

// Covers the full like lifecycle over HTTP: like, duplicate like, unlike,
// and the notification row that appears and disappears with it.
func TestLikeUnlikeLifecycle(t *testing.T) {
	db := testdb.Setup(t)
	r := newTestRouter(db)

	bob := testdb.CreateUser(t, db, "bob")
	alice := testdb.CreateUser(t, db, "alice")
	post := testdb.CreatePost(t, db, bob, "Hello")

	likeURL := fmt.Sprintf("/api/posts/%d/like", post.ID)
	unlikeURL := fmt.Sprintf("/api/posts/%d/unlike", post.ID)

	// First like succeeds
	w := doRequest(t, r, http.MethodPost, likeURL, alice.ID, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	decodeJSON(t, w, &body)
	assert.Equal(t, "Post liked successfully.", body["detail"])

	var likeCount int64
	db.Model(&models.Like{}).Count(&likeCount)
	assert.Equal(t, int64(1), likeCount)

	var notifCount int64
	db.Model(&models.Notification{}).Where("recipient_id = ?", bob.ID).Count(&notifCount)
	assert.Equal(t, int64(1), notifCount)

	// Second like is rejected and produces no second notification
	w = doRequest(t, r, http.MethodPost, likeURL, alice.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	decodeJSON(t, w, &body)
	assert.Equal(t, "You already liked this post.", body["detail"])

	db.Model(&models.Like{}).Count(&likeCount)
	assert.Equal(t, int64(1), likeCount)
	db.Model(&models.Notification{}).Where("recipient_id = ?", bob.ID).Count(&notifCount)
	assert.Equal(t, int64(1), notifCount)

	// Unlike removes both the like and the notification
	w = doRequest(t, r, http.MethodPost, unlikeURL, alice.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	decodeJSON(t, w, &body)
	assert.Equal(t, "Post unliked.", body["detail"])

	db.Model(&models.Like{}).Count(&likeCount)
	assert.Equal(t, int64(0), likeCount)
	db.Model(&models.Notification{}).Where("recipient_id = ?", bob.ID).Count(&notifCount)
	assert.Equal(t, int64(0), notifCount)

	// Unliking again fails: there is nothing left to remove
	w = doRequest(t, r, http.MethodPost, unlikeURL, alice.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	decodeJSON(t, w, &body)
	assert.Equal(t, "You have not like this post.", body["detail"])
}

func TestLikeMissingPost(t *testing.T) {
	db := testdb.Setup(t)
	r := newTestRouter(db)

	alice := testdb.CreateUser(t, db, "alice")

	w := doRequest(t, r, http.MethodPost, "/api/posts/9999/like", alice.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
