package router

import (
	"clubin_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes sets up the unauthenticated routes: registration,
// login, the public catalogs and the contact/newsletter stubs.
func SetupPublicRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler, ownerHandler *handlers.OwnerHandler, clubHandler *handlers.ClubHandler) {
	apiGroup.POST("/register", authHandler.RegisterUser)
	apiGroup.POST("/login", authHandler.LoginUser)
	apiGroup.POST("/owner/register", ownerHandler.RegisterOwner)
	apiGroup.POST("/owner/login", ownerHandler.LoginOwner)

	apiGroup.GET("/clubs", clubHandler.GetClubs)
	apiGroup.GET("/events", clubHandler.GetEvents)
	apiGroup.GET("/membership/tiers", clubHandler.GetMembershipTiers)

	apiGroup.POST("/contact", handlers.ContactForm)
	apiGroup.POST("/newsletter", handlers.NewsletterSignup)
}

// SetupProfileRoutes sets up the authenticated customer profile routes.
func SetupProfileRoutes(userGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	userGroup.GET("/profile", authHandler.GetProfile)
	userGroup.PUT("/profile", authHandler.UpdateProfile)
	userGroup.POST("/users/favorites", authHandler.AddFavoriteClub)
}

// SetupUserBookingRoutes sets up the authenticated customer booking routes.
func SetupUserBookingRoutes(userGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	userGroup.POST("/bookings", bookingHandler.CreateBooking)
	userGroup.GET("/bookings", bookingHandler.GetUserBookings)
}

// SetupOwnerRoutes sets up the owner portal routes: dashboard, club
// settings, events and attendance.
func SetupOwnerRoutes(ownerGroup *gin.RouterGroup, ownerHandler *handlers.OwnerHandler, clubHandler *handlers.ClubHandler, attendanceHandler *handlers.AttendanceHandler) {
	ownerGroup.GET("/dashboard", ownerHandler.GetDashboard)
	ownerGroup.PUT("/club", clubHandler.UpdateClub)

	ownerGroup.POST("/events", clubHandler.CreateEvent)
	ownerGroup.GET("/events", clubHandler.GetOwnerEvents)

	ownerGroup.GET("/attendance", attendanceHandler.GetClubAttendance)
	ownerGroup.POST("/attendance/checkin", attendanceHandler.CheckIn)
	ownerGroup.POST("/attendance/checkout", attendanceHandler.CheckOut)
}
