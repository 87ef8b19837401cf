package chat

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
	group := r.Group("/groups")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("", handler.GetGroups)
		group.POST("",
			rbac.Authorize(enforcer, rbac.ResourceGroup, rbac.ActionCreate),
			handler.CreateGroup,
		)

		// Deletion and member removal stay conditional on the target, so
		// the fine-grained checks live in the service.
		group.DELETE("/:id", handler.DeleteGroup)
		group.POST("/:id/members", handler.AddMembers)
		group.DELETE("/:id/members/:memberId", handler.RemoveMember)

		group.GET("/:id/messages", handler.ListGroupConversation)
		group.POST("/:id/messages", middleware.RateLimitByUser(5, 10), handler.SendGroupMessage)
	}

	direct := r.Group("/chat")
	direct.Use(middleware.AuthMiddleware())
	direct.Use(middleware.ContextLogger(logger))
	{
		direct.GET("/:userId/messages", handler.ListDirectConversation)
		direct.POST("/:userId/messages", middleware.RateLimitByUser(5, 10), handler.SendDirectMessage)
	}
}
