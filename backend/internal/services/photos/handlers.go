package photos

import (
	"PixShareBackEnd/backend/internal/config"
	"PixShareBackEnd/backend/internal/logging"
	"PixShareBackEnd/backend/internal/middleware"
	"PixShareBackEnd/backend/internal/models"
	"PixShareBackEnd/backend/internal/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	cfg      *config.Config
	store    *Store
	comments CommentReader
}

func NewHandler(cfg *config.Config, store *Store, comments CommentReader) *Handler {
	return &Handler{cfg: cfg, store: store, comments: comments}
}

// PhotoInput is the client payload for creating or updating a photo.
// Pointers keep "absent" distinguishable from "empty".
type PhotoInput struct {
	Title    *string `json:"title"`
	PhotoURL *string `json:"photo_url"`
}

// canModify is the ownership predicate for mutating operations: permission
// is granted only when the verified caller id matches the photo's owner.
func canModify(userID uint, photo *models.Photo) bool {
	return photo.UserID == userID
}

func validContent(body PhotoInput) bool {
	if body.Title == nil || *body.Title == "" {
		return false
	}
	if body.PhotoURL == nil || *body.PhotoURL == "" {
		return false
	}
	return true
}

func (h *Handler) GetAllPhotos(c *gin.Context) {
	logging.Log.Info("[PHOTOS][GET ALL] Incoming request")

	list, err := h.store.GetAllPhotos()
	if err != nil {
		logging.Log.Errorf("[PHOTOS][GET ALL] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	enriched, err := h.store.EnrichPhotos(list, h.comments)
	if err != nil {
		logging.Log.Errorf("[PHOTOS][GET ALL] Enrich error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": enriched})
}

func (h *Handler) GetPhotoByID(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
		return
	}
	logging.Log.Infof("[PHOTOS][GET BY ID] id=%d", id)

	photo, err := h.store.GetPhotoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
			return
		}
		logging.Log.Errorf("[PHOTOS][GET BY ID] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.store.EnrichPhoto(photo, h.comments)
	if err != nil {
		logging.Log.Errorf("[PHOTOS][GET BY ID] Enrich error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo": detail})
}

func (h *Handler) SearchPhotos(c *gin.Context) {
	title := c.Param("title")
	logging.Log.Infof("[PHOTOS][SEARCH] title=%s", title)

	results, err := h.store.Search(title)
	if err != nil {
		logging.Log.Errorf("[PHOTOS][SEARCH] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) CreatePhoto(c *gin.Context) {
	logging.Log.Info("[PHOTOS][CREATE] Incoming request")

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No Authorization header"})
		return
	}

	var body PhotoInput
	if err := c.ShouldBindJSON(&body); err != nil {
		logging.Log.Warnf("[PHOTOS][CREATE] Bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Photo url and title are required."})
		return
	}
	if !validContent(body) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Photo url and title are required."})
		return
	}

	// Owner id always comes from the verified token, never from the payload.
	photo := models.Photo{
		UserID:   userID,
		Title:    *body.Title,
		PhotoURL: *body.PhotoURL,
	}
	if err := h.store.AddNewPhoto(&photo); err != nil {
		logging.Log.Errorf("[PHOTOS][CREATE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("[PHOTOS][CREATE] Success: id=%d user_id=%d", photo.ID, photo.UserID)
	c.JSON(http.StatusCreated, gin.H{"newPhoto": photo})
}

func (h *Handler) UpdatePhoto(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
		return
	}
	logging.Log.Infof("[PHOTOS][UPDATE] id=%d", id)

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No Authorization header"})
		return
	}

	photo, err := h.store.GetPhotoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
			return
		}
		logging.Log.Errorf("[PHOTOS][UPDATE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var body PhotoInput
	if err := c.ShouldBindJSON(&body); err != nil {
		logging.Log.Warnf("[PHOTOS][UPDATE] Bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Photo url and title are required."})
		return
	}
	if !validContent(body) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Photo url and title are required."})
		return
	}

	if !canModify(userID, photo) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "You are not authorized to perform this request on another user.",
		})
		return
	}

	updated, err := h.store.Update(id, PhotoChanges{Title: body.Title, PhotoURL: body.PhotoURL})
	if err != nil {
		logging.Log.Errorf("[PHOTOS][UPDATE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("[PHOTOS][UPDATE] Success: id=%d", updated.ID)
	c.JSON(http.StatusCreated, updated)
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
		return
	}
	logging.Log.Infof("[PHOTOS][DELETE] id=%d", id)

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No Authorization header"})
		return
	}

	photo, err := h.store.GetPhotoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
			return
		}
		logging.Log.Errorf("[PHOTOS][DELETE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !canModify(userID, photo) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "You are not authorized to perform this request on another user.",
		})
		return
	}

	if err := h.store.Remove(id); err != nil {
		logging.Log.Errorf("[PHOTOS][DELETE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("[PHOTOS][DELETE] Success: id=%d", id)
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted."})
}

func (h *Handler) LikePhoto(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No Authorization header"})
		return
	}
	logging.Log.Infof("[PHOTOS][LIKE] photo_id=%d user_id=%d", id, userID)

	exists, err := h.store.FindByID(id)
	if err != nil {
		logging.Log.Errorf("[PHOTOS][LIKE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
		return
	}

	list, err := h.store.AddLike(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"message": "Already liked"})
			return
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
			return
		}
		logging.Log.Errorf("[PHOTOS][LIKE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	enriched, err := h.store.EnrichPhotos(list, h.comments)
	if err != nil {
		logging.Log.Errorf("[PHOTOS][LIKE] Enrich error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": enriched})
}

func (h *Handler) UnlikePhoto(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No Authorization header"})
		return
	}
	logging.Log.Infof("[PHOTOS][UNLIKE] photo_id=%d user_id=%d", id, userID)

	exists, err := h.store.FindByID(id)
	if err != nil {
		logging.Log.Errorf("[PHOTOS][UNLIKE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
		return
	}

	list, err := h.store.RemoveLike(userID, id)
	if err != nil {
		logging.Log.Errorf("[PHOTOS][UNLIKE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	enriched, err := h.store.EnrichPhotos(list, h.comments)
	if err != nil {
		logging.Log.Errorf("[PHOTOS][UNLIKE] Enrich error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": enriched})
}
