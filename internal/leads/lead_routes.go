package leads

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
	group := r.Group("/leads")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("", handler.GetAll)
		group.PATCH("/:id/status", handler.UpdateStatus)

		group.POST("/distribute",
			rbac.Authorize(enforcer, rbac.ResourceLead, rbac.ActionDistribute),
			handler.DistributeText,
		)
		group.POST("/distribute/file",
			rbac.Authorize(enforcer, rbac.ResourceLead, rbac.ActionDistribute),
			handler.DistributeFile,
		)
	}
}
