package handlers

import (
	"errors"
	"net/http"

	"clubin_backend/internal/middleware"
	"clubin_backend/internal/services"
	"clubin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler holds the booking service.
type BookingHandler struct {
	bookingService services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// CreateBooking handles the creation of a new booking for the
// authenticated user.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Missing required booking information", err.Error()))
		return
	}

	result, err := h.bookingService.CreateBooking(middleware.SubjectID(c), req)
	if err != nil {
		utils.LogError(err, "CreateBooking: Error from bookingService.CreateBooking")
		switch {
		case errors.Is(err, services.ErrBookingValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		case errors.Is(err, services.ErrClubForBookingNotFound), errors.Is(err, services.ErrUserForBookingNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Club or user not found", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Booking confirmed",
		"booking":      result.Booking,
		"pointsEarned": result.PointsEarned,
		"user":         result.User,
	})
}

// GetUserBookings returns the authenticated user's bookings.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetBookingsForUser(middleware.SubjectID(c))
	if err != nil {
		utils.LogError(err, "GetUserBookings: Error from bookingService.GetBookingsForUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch bookings.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, bookings)
}
