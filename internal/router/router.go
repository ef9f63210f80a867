package router

import (
	"clubin_backend/internal/handlers"
	"clubin_backend/internal/middleware"
	"clubin_backend/internal/repositories"
	"clubin_backend/internal/services"
	"clubin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, store *repositories.MemoryStore) {
	// Initialize Repositories
	userRepo := repositories.NewUserRepository(store)
	ownerRepo := repositories.NewOwnerRepository(store)
	clubRepo := repositories.NewClubRepository(store)
	eventRepo := repositories.NewEventRepository(store)
	bookingRepo := repositories.NewBookingRepository(store)
	attendanceRepo := repositories.NewAttendanceRepository(store)

	// Initialize Services
	authService := services.NewAuthService(userRepo, clubRepo)
	ownerService := services.NewOwnerService(ownerRepo, clubRepo, bookingRepo, eventRepo, attendanceRepo)
	clubService := services.NewClubService(clubRepo, eventRepo)
	bookingService := services.NewBookingService(bookingRepo, clubRepo, userRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, bookingRepo, userRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	ownerHandler := handlers.NewOwnerHandler(ownerService)
	clubHandler := handlers.NewClubHandler(clubService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)

	apiV1 := engine.Group("/api/v1")

	// Public routes
	SetupPublicRoutes(apiV1, authHandler, ownerHandler, clubHandler)

	// Customer routes
	userRoutes := apiV1.Group("")
	userRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(utils.RoleUser))
	{
		SetupProfileRoutes(userRoutes, authHandler)
		SetupUserBookingRoutes(userRoutes, bookingHandler)
	}

	// Owner routes
	ownerRoutes := apiV1.Group("/owner")
	ownerRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(utils.RoleOwner))
	{
		SetupOwnerRoutes(ownerRoutes, ownerHandler, clubHandler, attendanceHandler)
	}
}
