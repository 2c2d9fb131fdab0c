package comments

import (
	"PixShareBackEnd/backend/internal/models"

	"gorm.io/gorm"
)

// Store is the data-access layer for comments. The photos module consumes
// its read side when computing per-photo aggregates.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetCommentsByPhotoID(photoID uint) ([]models.Comment, error) {
	var list []models.Comment
	if err := s.db.Where("photo_id = ?", photoID).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) CountByPhotoID(photoID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Comment{}).Where("photo_id = ?", photoID).Count(&count).Error
	return count, err
}

func (s *Store) AddComment(comment *models.Comment) error {
	return s.db.Create(comment).Error
}
