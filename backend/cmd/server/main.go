package main

import (
	"PixShareBackEnd/backend/internal/config"
	"PixShareBackEnd/backend/internal/database"
	"PixShareBackEnd/backend/internal/logging"
	"PixShareBackEnd/backend/internal/middleware"
	"PixShareBackEnd/backend/internal/services/auth"
	"PixShareBackEnd/backend/internal/services/comments"
	"PixShareBackEnd/backend/internal/services/photos"
	"PixShareBackEnd/backend/internal/services/users"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		logging.Log.Fatalf("failed to connect database: %v", err)
	}

	r := gin.Default()
	api := r.Group("/api")

	restricted := middleware.Restricted(cfg)

	//Stores
	photoStore := photos.NewStore(db)
	commentStore := comments.NewStore(db)
	followerStore := users.NewStore(db)

	//Handlers
	authHandler := auth.NewHandler(cfg, db)
	photoHandler := photos.NewHandler(cfg, photoStore, commentStore)
	commentHandler := comments.NewHandler(commentStore)
	userHandler := users.NewHandler(followerStore)

	//Groups
	auth.RegisterRoutes(api.Group("/auth"), authHandler)
	photoGroup := api.Group("/photos")
	photos.RegisterRoutes(photoGroup, photoHandler, restricted)
	comments.RegisterRoutes(photoGroup, commentHandler, restricted)
	users.RegisterRoutes(api.Group("/users"), userHandler, restricted)

	logging.Log.Infof("server started on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logging.Log.Fatal(err)
	}
}
