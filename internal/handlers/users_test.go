package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foremanb/socialnet/backend/internal/models"
	"github.com/foremanb/socialnet/backend/internal/testdb"
)

func TestFollowUnfollow(t *testing.T) {
	db := testdb.Setup(t)
	r := newTestRouter(db)

	alice := testdb.CreateUser(t, db, "alice")
	bob := testdb.CreateUser(t, db, "bob")

	followURL := fmt.Sprintf("/api/users/%d/follow", bob.ID)

	w := doRequest(t, r, http.MethodPost, followURL, alice.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", alice.ID, bob.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// Following twice changes nothing
	w = doRequest(t, r, http.MethodPost, followURL, alice.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", alice.ID, bob.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// Unfollow removes the edge
	w = doRequest(t, r, http.MethodDelete, followURL, alice.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", alice.ID, bob.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Unfollowing an absent edge is a no-op
	w = doRequest(t, r, http.MethodDelete, followURL, alice.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFollowSelfRejected(t *testing.T) {
	db := testdb.Setup(t)
	r := newTestRouter(db)

	alice := testdb.CreateUser(t, db, "alice")

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", alice.ID), alice.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollowMissingUser(t *testing.T) {
	db := testdb.Setup(t)
	r := newTestRouter(db)

	alice := testdb.CreateUser(t, db, "alice")

	w := doRequest(t, r, http.MethodPost, "/api/users/9999/follow", alice.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
