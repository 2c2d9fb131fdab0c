package auth

import (
	"PixShareBackEnd/backend/internal/config"
	"PixShareBackEnd/backend/internal/logging"
	"PixShareBackEnd/backend/internal/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}

type Handler struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewHandler(cfg *config.Config, db *gorm.DB) *Handler {
	return &Handler{cfg: cfg, db: db}
}

func (h *Handler) Register(c *gin.Context) {
	logging.Log.Info("[REGISTER] Incoming request")

	var body RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logging.Log.Warnf("[REGISTER] Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Register Request"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		logging.Log.Errorf("[REGISTER] Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username: body.Username,
		Password: string(hashed),
	}
	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
			return
		}
		logging.Log.Errorf("[REGISTER] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := GenerateToken(user, h.cfg)
	if err != nil {
		logging.Log.Errorf("[REGISTER] Failed to create token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	logging.Log.Infof("[REGISTER] Success: id=%d username=%s", user.ID, user.Username)
	c.JSON(http.StatusCreated, AuthResponse{AccessToken: token, User: user})
}

func (h *Handler) Login(c *gin.Context) {
	logging.Log.Info("[LOGIN] Incoming request")

	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logging.Log.Warnf("[LOGIN] Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Login Request"})
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		logging.Log.Errorf("[LOGIN] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := GenerateToken(user, h.cfg)
	if err != nil {
		logging.Log.Errorf("[LOGIN] Failed to create token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	logging.Log.Infof("[LOGIN] Success: id=%d username=%s", user.ID, user.Username)
	c.JSON(http.StatusOK, AuthResponse{AccessToken: token, User: user})
}
