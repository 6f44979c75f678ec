package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foremanb/socialnet/backend/internal/testdb"
)

func TestGetNotificationsResponseShape(t *testing.T) {
	db := testdb.Setup(t)
	r := newTestRouter(db)

	bob := testdb.CreateUser(t, db, "bob")
	alice := testdb.CreateUser(t, db, "alice")
	post := testdb.CreatePost(t, db, bob, "My first post")

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", post.ID), alice.ID, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/notifications", bob.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	decodeJSON(t, w, &items)
	assert.Len(t, items, 1)

	assert.Equal(t, "bob", items[0]["recipient"])
	assert.Equal(t, "alice", items[0]["actor"])
	assert.Equal(t, "liked your post", items[0]["verb"])
	assert.Equal(t, "Post: My first post", items[0]["target"])
	assert.NotEmpty(t, items[0]["timestamp"])
}

func TestGetNotificationsOnlyOwn(t *testing.T) {
	db := testdb.Setup(t)
	r := newTestRouter(db)

	bob := testdb.CreateUser(t, db, "bob")
	alice := testdb.CreateUser(t, db, "alice")
	post := testdb.CreatePost(t, db, bob, "Hello")

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", post.ID), alice.ID, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// alice has notified bob, not herself
	w = doRequest(t, r, http.MethodGet, "/api/notifications", alice.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	decodeJSON(t, w, &items)
	assert.Empty(t, items)
}

func TestGetNotificationsUnauthenticated(t *testing.T) {
	db := testdb.Setup(t)
	r := newTestRouter(db)

	w := doRequest(t, r, http.MethodGet, "/api/notifications", 0, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
