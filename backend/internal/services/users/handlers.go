package users

import (
	"PixShareBackEnd/backend/internal/logging"
	"PixShareBackEnd/backend/internal/middleware"
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

func (h *Handler) FollowArtist(c *gin.Context) {
	artistID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User Not Found."})
		return
	}

	followerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No Authorization header"})
		return
	}
	logging.Log.Infof("[USERS][FOLLOW] artist_id=%d follower_id=%d", artistID, followerID)

	edge, err := h.store.Follow(artistID, followerID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"message": "Already following"})
			return
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User Not Found."})
			return
		}
		logging.Log.Errorf("[USERS][FOLLOW] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"follow": edge})
}

func (h *Handler) UnfollowArtist(c *gin.Context) {
	artistID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User Not Found."})
		return
	}

	followerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No Authorization header"})
		return
	}
	logging.Log.Infof("[USERS][UNFOLLOW] artist_id=%d follower_id=%d", artistID, followerID)

	if err := h.store.Unfollow(artistID, followerID); err != nil {
		logging.Log.Errorf("[USERS][UNFOLLOW] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed."})
}

func (h *Handler) GetFollowers(c *gin.Context) {
	artistID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User Not Found."})
		return
	}
	logging.Log.Infof("[USERS][FOLLOWERS] artist_id=%d", artistID)

	list, err := h.store.Followers(artistID)
	if err != nil {
		logging.Log.Errorf("[USERS][FOLLOWERS] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": list})
}

func (h *Handler) GetFollowing(c *gin.Context) {
	followerID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User Not Found."})
		return
	}
	logging.Log.Infof("[USERS][FOLLOWING] follower_id=%d", followerID)

	list, err := h.store.Following(followerID)
	if err != nil {
		logging.Log.Errorf("[USERS][FOLLOWING] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": list})
}
