package auth

import (
	"hr-panel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/auth")
	{
		group.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		group.POST("/refresh", middleware.RateLimitByIP(1, 5), handler.Refresh)
		group.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
