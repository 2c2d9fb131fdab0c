package photos

import (
	"PixShareBackEnd/backend/internal/models"
	"strings"

	"gorm.io/gorm"
)

// Store is the data-access layer for photos and their like relation. Absence
// is reported as gorm.ErrRecordNotFound, distinct from any other storage
// failure.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetAllPhotos() ([]models.Photo, error) {
	var photos []models.Photo
	if err := s.db.Order("id").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *Store) GetPhotoByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := s.db.Where("id = ?", id).First(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// FindByID reports whether a photo exists without loading it.
func (s *Store) FindByID(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Photo{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search returns photos whose title contains the given string, case
// insensitively. No match is an empty slice, not an error.
func (s *Store) Search(title string) ([]models.Photo, error) {
	var photos []models.Photo
	pattern := "%" + strings.ToLower(title) + "%"
	if err := s.db.Where("LOWER(title) LIKE ?", pattern).Order("id").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// AddNewPhoto inserts the photo and fills in its generated id and timestamp.
// The caller is responsible for setting UserID from the verified identity,
// never from the client payload.
func (s *Store) AddNewPhoto(photo *models.Photo) error {
	return s.db.Create(photo).Error
}

// PhotoChanges are the only photo fields a client may modify.
type PhotoChanges struct {
	Title    *string `json:"title"`
	PhotoURL *string `json:"photo_url"`
}

// Update applies the non-nil changes and returns the updated record.
func (s *Store) Update(id uint, changes PhotoChanges) (*models.Photo, error) {
	photo, err := s.GetPhotoByID(id)
	if err != nil {
		return nil, err
	}
	if changes.Title != nil {
		photo.Title = *changes.Title
	}
	if changes.PhotoURL != nil {
		photo.PhotoURL = *changes.PhotoURL
	}
	if err := s.db.Save(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// Remove hard-deletes the photo; the store's cascading foreign keys remove
// its dependent like and comment rows.
func (s *Store) Remove(id uint) error {
	res := s.db.Where("id = ?", id).Delete(&models.Photo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) GetLikesCount(photoID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Like{}).Where("photo_id = ?", photoID).Count(&count).Error
	return count, err
}

// AddLike records that the user likes the photo and returns the refreshed
// photo collection so the caller can recompute aggregates across all photos.
// Liking the same photo twice fails with gorm.ErrDuplicatedKey.
func (s *Store) AddLike(userID, photoID uint) ([]models.Photo, error) {
	like := models.Like{UserID: userID, PhotoID: photoID}
	if err := s.db.Create(&like).Error; err != nil {
		return nil, err
	}
	return s.GetAllPhotos()
}

// RemoveLike deletes the matching like row and returns the refreshed photo
// collection. Removing a like that was never recorded is not an error.
func (s *Store) RemoveLike(userID, photoID uint) ([]models.Photo, error) {
	if err := s.db.Where("user_id = ? AND photo_id = ?", userID, photoID).Delete(&models.Like{}).Error; err != nil {
		return nil, err
	}
	return s.GetAllPhotos()
}
