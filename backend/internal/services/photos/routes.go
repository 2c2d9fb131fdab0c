package photos

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, restricted gin.HandlerFunc) {
	r.GET("", h.GetAllPhotos)
	r.GET("/:id", h.GetPhotoByID)
	r.GET("/search/:title", h.SearchPhotos)
	r.POST("", restricted, h.CreatePhoto)
	r.PUT("/:id", restricted, h.UpdatePhoto)
	r.DELETE("/:id", restricted, h.DeletePhoto)
	r.POST("/:id/like", restricted, h.LikePhoto)
	r.DELETE("/:id/unlike", restricted, h.UnlikePhoto)
}
