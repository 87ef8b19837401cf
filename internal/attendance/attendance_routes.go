package attendance

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
	group := r.Group("/attendance")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("", handler.GetAll)
		group.GET("/today", handler.Today)
		group.POST("/punch-in", middleware.RateLimitByUser(1, 3), handler.PunchIn)
		group.POST("/state", middleware.RateLimitByUser(1, 3), handler.ChangeState)
		group.POST("/punch-out", middleware.RateLimitByUser(1, 3), handler.PunchOut)

		group.GET("/export",
			rbac.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionExport),
			handler.Export,
		)
		group.PATCH("/:id/status",
			rbac.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionOverride),
			handler.OverrideStatus,
		)
	}
}
