package middleware

import (
	"PixShareBackEnd/backend/internal/config"
	"PixShareBackEnd/backend/internal/logging"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ContextUserKey = "userID"

// Claims carried by an access token. The subject claim holds the numeric
// user id and is the only identity value handlers ever see.
type Claims struct {
	UserID uint `json:"subject"`
	jwt.RegisteredClaims
}

// Restricted guards routes that mutate state. The bearer token is verified
// exactly once here and the subject id is injected into the request context
// as a typed uint; handlers read it back with CurrentUserID instead of
// re-decoding the token.
func Restricted(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logging.Log.Warn("[AUTH MIDDLEWARE] No Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No Authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			logging.Log.Warn("[AUTH MIDDLEWARE] Invalid Authorization header format")
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization header"})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JwtSecret), nil
		})
		if err != nil || !token.Valid {
			logging.Log.Warnf("[AUTH MIDDLEWARE] Invalid or expired token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			logging.Log.Warn("[AUTH MIDDLEWARE] Token has no subject id")
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token subject"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID returns the verified subject id placed in the context by
// Restricted.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
