package announcement

import (
	"hr-panel/internal/middleware"
	"hr-panel/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
	logger *zap.Logger,
) {
	group := r.Group("/announcements")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("", handler.GetAll)

		group.POST("",
			rbac.Authorize(enforcer, rbac.ResourceAnnouncement, rbac.ActionManage),
			handler.Create,
		)
		group.DELETE("/:id",
			rbac.Authorize(enforcer, rbac.ResourceAnnouncement, rbac.ActionManage),
			handler.Delete,
		)
		group.POST("/generate",
			rbac.Authorize(enforcer, rbac.ResourceAnnouncement, rbac.ActionManage),
			middleware.RateLimitByUser(0.5, 3),
			handler.Generate,
		)
	}
}
