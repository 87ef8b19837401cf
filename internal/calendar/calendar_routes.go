package calendar

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
	group := r.Group("/calendar")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("/events", handler.GetEvents)
		group.GET("/month", handler.MonthView)

		group.POST("/events",
			rbac.Authorize(enforcer, rbac.ResourceCalendar, rbac.ActionManage),
			handler.CreateEvent,
		)
		group.DELETE("/events/:id",
			rbac.Authorize(enforcer, rbac.ResourceCalendar, rbac.ActionManage),
			handler.DeleteEvent,
		)
	}
}
