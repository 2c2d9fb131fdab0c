package comments

import (
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
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type CommentInput struct {
	Comment string `json:"comment" binding:"required"`
}

func (h *Handler) GetCommentsForPhoto(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
		return
	}
	logging.Log.Infof("[COMMENTS][GET] photo_id=%d", id)

	list, err := h.store.GetCommentsByPhotoID(id)
	if err != nil {
		logging.Log.Errorf("[COMMENTS][GET] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": list})
}

func (h *Handler) AddComment(c *gin.Context) {
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

	var body CommentInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment is required."})
		return
	}
	logging.Log.Infof("[COMMENTS][CREATE] photo_id=%d user_id=%d", id, userID)

	comment := models.Comment{
		UserID:  userID,
		PhotoID: id,
		Comment: body.Comment,
	}
	if err := h.store.AddComment(&comment); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Photo Not Found."})
			return
		}
		logging.Log.Errorf("[COMMENTS][CREATE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"newComment": comment})
}
