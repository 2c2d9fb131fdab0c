package users

import (
	"errors"
	"testing"

	"PixShareBackEnd/backend/internal/database"
	"PixShareBackEnd/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, id uint, username string) models.User {
	t.Helper()
	user := models.User{ID: id, Username: username, Password: "hash"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestFollowCreatesEdge(t *testing.T) {
	db := database.CreateTestDB(t)
	store := NewStore(db)
	seedUser(t, db, 1, "artist")
	seedUser(t, db, 2, "fan")

	edge, err := store.Follow(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), edge.ArtistID)
	assert.Equal(t, uint(2), edge.FollowerID)
	assert.False(t, edge.CreatedAt.IsZero())
}

func TestFollowDuplicateFails(t *testing.T) {
	db := database.CreateTestDB(t)
	store := NewStore(db)
	seedUser(t, db, 1, "artist")
	seedUser(t, db, 2, "fan")

	_, err := store.Follow(1, 2)
	require.NoError(t, err)

	_, err = store.Follow(1, 2)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// The reverse edge is a different pair and still allowed.
	_, err = store.Follow(2, 1)
	assert.NoError(t, err)
}

func TestFollowUnknownUserFails(t *testing.T) {
	db := database.CreateTestDB(t)
	store := NewStore(db)
	seedUser(t, db, 1, "artist")

	_, err := store.Follow(1, 99)
	assert.Error(t, err)
}

func TestSelfFollowAllowed(t *testing.T) {
	db := database.CreateTestDB(t)
	store := NewStore(db)
	seedUser(t, db, 1, "narcissus")

	_, err := store.Follow(1, 1)
	assert.NoError(t, err)
}

func TestUnfollow(t *testing.T) {
	db := database.CreateTestDB(t)
	store := NewStore(db)
	seedUser(t, db, 1, "artist")
	seedUser(t, db, 2, "fan")

	_, err := store.Follow(1, 2)
	require.NoError(t, err)
	require.NoError(t, store.Unfollow(1, 2))

	var count int64
	require.NoError(t, db.Model(&models.Follower{}).Count(&count).Error)
	assert.Zero(t, count)

	// Unfollowing someone never followed is not an error.
	assert.NoError(t, store.Unfollow(1, 2))
}

func TestFollowersAndFollowingLists(t *testing.T) {
	db := database.CreateTestDB(t)
	store := NewStore(db)
	seedUser(t, db, 1, "artist")
	seedUser(t, db, 2, "fan")
	seedUser(t, db, 3, "admirer")

	_, err := store.Follow(1, 2)
	require.NoError(t, err)
	_, err = store.Follow(1, 3)
	require.NoError(t, err)
	_, err = store.Follow(3, 2)
	require.NoError(t, err)

	followers, err := store.Followers(1)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, "fan", followers[0].Username)
	assert.Equal(t, "admirer", followers[1].Username)

	following, err := store.Following(2)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, "artist", following[0].Username)
	assert.Equal(t, "admirer", following[1].Username)
}

func TestUserDeletionCascades(t *testing.T) {
	db := database.CreateTestDB(t)
	store := NewStore(db)
	artist := seedUser(t, db, 1, "artist")
	seedUser(t, db, 2, "fan")
	seedUser(t, db, 3, "admirer")

	// Edges where the artist is followed and where the artist follows.
	_, err := store.Follow(1, 2)
	require.NoError(t, err)
	_, err = store.Follow(3, 1)
	require.NoError(t, err)
	_, err = store.Follow(3, 2)
	require.NoError(t, err)

	// Content owned by the artist, with dependent rows from another user.
	photo := models.Photo{UserID: 1, Title: "Sunset", PhotoURL: "http://x/1.jpg"}
	require.NoError(t, db.Create(&photo).Error)
	require.NoError(t, db.Create(&models.Like{UserID: 2, PhotoID: photo.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{UserID: 2, PhotoID: photo.ID, Comment: "nice"}).Error)

	require.NoError(t, db.Delete(&models.User{}, artist.ID).Error)

	var edges, photos, likes, comments int64
	require.NoError(t, db.Model(&models.Follower{}).Count(&edges).Error)
	require.NoError(t, db.Model(&models.Photo{}).Count(&photos).Error)
	require.NoError(t, db.Model(&models.Like{}).Count(&likes).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)

	// Only the edge between the two surviving users remains; the artist's
	// photo and its dependent rows are gone transitively.
	assert.Equal(t, int64(1), edges)
	assert.Zero(t, photos)
	assert.Zero(t, likes)
	assert.Zero(t, comments)
}
