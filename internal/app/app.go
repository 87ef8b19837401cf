package app

import (
	"context"

	"hr-panel/internal/middleware"
	"hr-panel/internal/seed"
	"hr-panel/internal/shared/secure"
	"hr-panel/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires every module's in-memory repository, service and routes
// onto the router and seeds the demo roster.
func BuildApp(router *gin.Engine) error {
	logger := zap.L()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: false,
	}))

	hasher := secure.NewBcryptHasher()
	defaultHash, err := seed.DefaultPasswordHash(hasher)
	if err != nil {
		return err
	}

	userRepo := user.NewMemoryRepository()
	if err := seed.Users(context.Background(), userRepo, logger); err != nil {
		return err
	}

	return registerModules(router, userRepo, hasher, defaultHash, logger)
}
