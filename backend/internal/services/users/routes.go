package users

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, restricted gin.HandlerFunc) {
	r.POST("/:id/follow", restricted, h.FollowArtist)
	r.DELETE("/:id/unfollow", restricted, h.UnfollowArtist)
	r.GET("/:id/followers", h.GetFollowers)
	r.GET("/:id/following", h.GetFollowing)
}
