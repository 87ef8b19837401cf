package user

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
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		// Profile self-service; per-role restriction lives in the service.
		users.PUT("/me/profile",
			middleware.RateLimitByUser(0.5, 2),
			handler.UpdateProfile,
		)

		users.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(enforcer, rbac.ResourceUser, rbac.ActionManage),
			handler.Create,
		)

		users.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(enforcer, rbac.ResourceUser, rbac.ActionManage),
			handler.Update,
		)

		users.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(enforcer, rbac.ResourceUser, rbac.ActionManage),
			handler.Delete,
		)

		users.POST("/:id/reset-password",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(enforcer, rbac.ResourceUser, rbac.ActionManage),
			handler.ResetPassword,
		)
	}
}
