package auth

import (
	"PixShareBackEnd/backend/internal/config"
	"PixShareBackEnd/backend/internal/middleware"
	"PixShareBackEnd/backend/internal/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues an HMAC-signed access token. The subject claim
// carries the user's numeric id; the restricted middleware decodes it back
// into the request context.
func GenerateToken(user models.User, cfg *config.Config) (string, error) {
	now := time.Now()
	exp := now.Add(time.Minute * time.Duration(cfg.JwtExpiresMin))

	claims := middleware.Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JwtSecret))
}
