package leave

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
	group := r.Group("/leaves")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("", handler.GetAll)
		group.POST("", middleware.RateLimitByUser(1, 3), handler.Create)

		group.POST("/:id/approve",
			rbac.Authorize(enforcer, rbac.ResourceLeave, rbac.ActionDecide),
			handler.Approve,
		)
		group.POST("/:id/reject",
			rbac.Authorize(enforcer, rbac.ResourceLeave, rbac.ActionDecide),
			handler.Reject,
		)
	}
}
