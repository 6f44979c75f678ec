package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/foremanb/socialnet/backend/internal/models"
	"github.com/foremanb/socialnet/backend/internal/testdb"
)

func TestFeedForFollowedAuthorsOnly(t *testing.T) {
	db := testdb.Setup(t)
	composer := NewComposer(db)

	alice := testdb.CreateUser(t, db, "alice")
	bob := testdb.CreateUser(t, db, "bob")
	carol := testdb.CreateUser(t, db, "carol")

	assert.NoError(t, db.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}).Error)

	p1 := testdb.CreatePost(t, db, bob, "Hello")

	posts, err := composer.FeedFor(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, p1.ID, posts[0].ID)
	assert.Equal(t, "bob", posts[0].Author.Username)

	// carol is not followed; her post must not leak into alice's feed
	testdb.CreatePost(t, db, carol, "Not followed")

	posts, err = composer.FeedFor(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, p1.ID, posts[0].ID)
}

func TestFeedForExcludesOwnPosts(t *testing.T) {
	db := testdb.Setup(t)
	composer := NewComposer(db)

	alice := testdb.CreateUser(t, db, "alice")
	bob := testdb.CreateUser(t, db, "bob")

	assert.NoError(t, db.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}).Error)

	testdb.CreatePost(t, db, alice, "My own post")
	theirs := testdb.CreatePost(t, db, bob, "Their post")

	posts, err := composer.FeedFor(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, theirs.ID, posts[0].ID)
}

func TestFeedForOrdersNewestFirst(t *testing.T) {
	db := testdb.Setup(t)
	composer := NewComposer(db)

	alice := testdb.CreateUser(t, db, "alice")
	bob := testdb.CreateUser(t, db, "bob")

	assert.NoError(t, db.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}).Error)

	older := models.Post{Title: "older", AuthorID: bob.ID, CreatedAt: time.Now().UTC().Add(-time.Hour)}
	assert.NoError(t, db.Create(&older).Error)
	newer := models.Post{Title: "newer", AuthorID: bob.ID, CreatedAt: time.Now().UTC()}
	assert.NoError(t, db.Create(&newer).Error)

	posts, err := composer.FeedFor(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Title)
	assert.Equal(t, "older", posts[1].Title)
}

func TestFeedForFollowingNobody(t *testing.T) {
	db := testdb.Setup(t)
	composer := NewComposer(db)

	alice := testdb.CreateUser(t, db, "alice")
	bob := testdb.CreateUser(t, db, "bob")
	testdb.CreatePost(t, db, bob, "Hello")

	posts, err := composer.FeedFor(alice.ID)
	assert.NoError(t, err)
	assert.Empty(t, posts)
}
