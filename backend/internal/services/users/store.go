package users

import (
	"PixShareBackEnd/backend/internal/models"

	"gorm.io/gorm"
)

// Store is the data-access layer for follower edges. An edge is immutable:
// it is only ever created or deleted, and the composite primary key keeps it
// unique per (artist, follower) pair.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Follow records that followerID follows artistID. A duplicate edge fails
// with gorm.ErrDuplicatedKey.
func (s *Store) Follow(artistID, followerID uint) (*models.Follower, error) {
	edge := models.Follower{ArtistID: artistID, FollowerID: followerID}
	if err := s.db.Create(&edge).Error; err != nil {
		return nil, err
	}
	return &edge, nil
}

// Unfollow deletes the edge. Unfollowing someone never followed is not an
// error.
func (s *Store) Unfollow(artistID, followerID uint) error {
	return s.db.Where("artist_id = ? AND follower_id = ?", artistID, followerID).
		Delete(&models.Follower{}).Error
}

// Followers lists the users following the given artist.
func (s *Store) Followers(artistID uint) ([]models.User, error) {
	var list []models.User
	err := s.db.
		Joins("JOIN followers ON followers.follower_id = users.id").
		Where("followers.artist_id = ?", artistID).
		Order("users.id").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Following lists the artists the given user follows.
func (s *Store) Following(followerID uint) ([]models.User, error) {
	var list []models.User
	err := s.db.
		Joins("JOIN followers ON followers.artist_id = users.id").
		Where("followers.follower_id = ?", followerID).
		Order("users.id").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
