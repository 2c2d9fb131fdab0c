package photos

import (
	"PixShareBackEnd/backend/internal/models"

	"golang.org/x/sync/errgroup"
)

// CommentReader is the slice of the comments module the enrichment needs.
type CommentReader interface {
	CountByPhotoID(photoID uint) (int64, error)
	GetCommentsByPhotoID(photoID uint) ([]models.Comment, error)
}

// EnrichedPhoto is a photo augmented with its derived aggregate counts.
type EnrichedPhoto struct {
	models.Photo
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// PhotoDetail is a single photo with its likes count and full comment list.
type PhotoDetail struct {
	models.Photo
	Likes    int64            `json:"likes"`
	Comments []models.Comment `json:"comments"`
}

// EnrichPhotos fans out the likes and comments counts for every photo
// concurrently, waits for all of them, and fails as a whole if any count
// fails. The output keeps the input order even though individual counts
// resolve out of order.
func (s *Store) EnrichPhotos(list []models.Photo, comments CommentReader) ([]EnrichedPhoto, error) {
	enriched := make([]EnrichedPhoto, len(list))

	var g errgroup.Group
	for i, photo := range list {
		i, photo := i, photo
		g.Go(func() error {
			likes, err := s.GetLikesCount(photo.ID)
			if err != nil {
				return err
			}
			commentCount, err := comments.CountByPhotoID(photo.ID)
			if err != nil {
				return err
			}
			enriched[i] = EnrichedPhoto{Photo: photo, Likes: likes, Comments: commentCount}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

// EnrichPhoto loads the likes count and the comment list for one photo.
func (s *Store) EnrichPhoto(photo *models.Photo, comments CommentReader) (*PhotoDetail, error) {
	likes, err := s.GetLikesCount(photo.ID)
	if err != nil {
		return nil, err
	}
	list, err := comments.GetCommentsByPhotoID(photo.ID)
	if err != nil {
		return nil, err
	}
	return &PhotoDetail{Photo: *photo, Likes: likes, Comments: list}, nil
}
