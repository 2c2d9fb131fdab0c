package comments

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches the comment routes to the photos group, since
// comments are addressed through their photo.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, restricted gin.HandlerFunc) {
	r.GET("/:id/comments", h.GetCommentsForPhoto)
	r.POST("/:id/comments", restricted, h.AddComment)
}
