package payroll

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
	group := r.Group("/payroll")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("", handler.GetAll)
		group.GET("/:id/payslip", handler.Payslip)

		group.POST("",
			rbac.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionManage),
			handler.Upsert,
		)
		group.POST("/:id/paid",
			rbac.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionManage),
			handler.MarkPaid,
		)
	}
}
