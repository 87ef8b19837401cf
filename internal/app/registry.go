package app

import (
	"hr-panel/internal/ai"
	"hr-panel/internal/announcement"
	"hr-panel/internal/attendance"
	"hr-panel/internal/auth"
	"hr-panel/internal/calendar"
	"hr-panel/internal/chat"
	"hr-panel/internal/dashboard"
	"hr-panel/internal/leads"
	"hr-panel/internal/leave"
	"hr-panel/internal/payroll"
	"hr-panel/internal/rbac"
	"hr-panel/internal/shared/secure"
	"hr-panel/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	userRepo user.Repository,
	hasher secure.PasswordHasher,
	defaultHash string,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewMemoryRepository()
	leaveRepo := leave.NewMemoryRepository()
	payrollRepo := payroll.NewMemoryRepository()
	announcementRepo := announcement.NewMemoryRepository()
	groupRepo := chat.NewMemoryGroupRepository()
	messageRepo := chat.NewMemoryMessageRepository()
	leadRepo := leads.NewMemoryRepository()
	calendarRepo := calendar.NewMemoryRepository()

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	aiClient := ai.NewClient(logger)

	// --- Services ---
	authService := auth.NewService(userRepo, hasher, defaultHash, logger)
	userService := user.NewService(userRepo, hasher, logger)
	attendanceService := attendance.NewService(attendanceRepo, userRepo, logger)
	leaveService := leave.NewService(leaveRepo, userRepo, logger)
	payrollService := payroll.NewService(payrollRepo, userRepo, logger)
	announcementService := announcement.NewService(announcementRepo, userRepo, aiClient, logger)
	chatService := chat.NewService(groupRepo, messageRepo, userRepo, logger)
	leadService := leads.NewService(leadRepo, userRepo, logger)
	calendarService := calendar.NewService(calendarRepo, attendanceRepo, leaveService, logger)
	dashboardService := dashboard.NewService(userRepo, attendanceRepo, leaveRepo, leadRepo, payrollRepo, aiClient, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	userHandler := user.NewHandler(userService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	announcementHandler := announcement.NewHandler(announcementService, logger)
	chatHandler := chat.NewHandler(chatService, logger)
	leadHandler := leads.NewHandler(leadService, logger)
	calendarHandler := calendar.NewHandler(calendarService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, enforcer, logger)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer, logger)
		leave.RegisterRoutes(api, leaveHandler, enforcer, logger)
		payroll.RegisterRoutes(api, payrollHandler, enforcer, logger)
		announcement.RegisterRoutes(api, announcementHandler, enforcer, logger)
		chat.RegisterRoutes(api, chatHandler, enforcer, logger)
		leads.RegisterRoutes(api, leadHandler, enforcer, logger)
		calendar.RegisterRoutes(api, calendarHandler, enforcer, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, logger)
	}

	return nil
}
