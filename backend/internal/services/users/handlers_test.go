package users

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"PixShareBackEnd/backend/internal/config"
	"PixShareBackEnd/backend/internal/database"
	"PixShareBackEnd/backend/internal/middleware"
	"PixShareBackEnd/backend/internal/models"
	"PixShareBackEnd/backend/internal/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.CreateTestDB(t)
	cfg := &config.Config{JwtSecret: "test-secret", JwtExpiresMin: 15}

	r := gin.New()
	restricted := middleware.Restricted(cfg)
	RegisterRoutes(r.Group("/api/users"), NewHandler(NewStore(db)), restricted)

	return r, db, cfg
}

func do(t *testing.T, r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, cfg *config.Config, user models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(user, cfg)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestFollowRoute(t *testing.T) {
	r, db, cfg := setupAPI(t)
	seedUser(t, db, 1, "artist")
	fan := seedUser(t, db, 2, "fan")
	token := bearer(t, cfg, fan)

	w := do(t, r, http.MethodPost, "/api/users/1/follow", token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Follow models.Follower `json:"follow"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.Follow.ArtistID)
	assert.Equal(t, uint(2), resp.Follow.FollowerID)

	// Same pair again conflicts.
	w = do(t, r, http.MethodPost, "/api/users/1/follow", token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFollowRequiresAuth(t *testing.T) {
	r, db, _ := setupAPI(t)
	seedUser(t, db, 1, "artist")

	w := do(t, r, http.MethodPost, "/api/users/1/follow", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnfollowRoute(t *testing.T) {
	r, db, cfg := setupAPI(t)
	seedUser(t, db, 1, "artist")
	fan := seedUser(t, db, 2, "fan")
	token := bearer(t, cfg, fan)

	w := do(t, r, http.MethodPost, "/api/users/1/follow", token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodDelete, "/api/users/1/unfollow", token)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Follower{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowersListRoute(t *testing.T) {
	r, db, cfg := setupAPI(t)
	seedUser(t, db, 1, "artist")
	fan := seedUser(t, db, 2, "fan")
	admirer := seedUser(t, db, 3, "admirer")

	for _, u := range []models.User{fan, admirer} {
		w := do(t, r, http.MethodPost, "/api/users/1/follow", bearer(t, cfg, u))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/users/1/followers", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Followers []models.User `json:"followers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Followers, 2)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d/following", fan.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var following struct {
		Following []models.User `json:"following"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &following))
	require.Len(t, following.Following, 1)
	assert.Equal(t, "artist", following.Following[0].Username)
}
