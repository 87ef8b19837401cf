package dashboard

import (
	"hr-panel/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	group := r.Group("/dashboard")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("/summary", handler.Summary)
	}
}
