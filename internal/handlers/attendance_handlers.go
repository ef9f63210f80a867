package handlers

import (
	"errors"
	"net/http"

	"clubin_backend/internal/middleware"
	"clubin_backend/internal/services"
	"clubin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler holds the attendance service.
type AttendanceHandler struct {
	attendanceService services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(as services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: as}
}

// attendanceTransitionRequest is the payload for check-in and check-out.
type attendanceTransitionRequest struct {
	BookingID int64 `json:"bookingId" binding:"required"`
}

// GetClubAttendance returns the attendance view for the owner's club.
func (h *AttendanceHandler) GetClubAttendance(c *gin.Context) {
	rows, err := h.attendanceService.GetAttendanceForClub(middleware.ClubID(c))
	if err != nil {
		utils.LogError(err, "GetClubAttendance: Error from attendanceService.GetAttendanceForClub")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch attendance.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CheckIn marks a booking's guest as checked in.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req attendanceTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "bookingId is required", err.Error()))
		return
	}

	record, err := h.attendanceService.CheckIn(middleware.ClubID(c), req.BookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFoundForClub) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found", err.Error()))
			return
		}
		utils.LogError(err, "CheckIn: Error from attendanceService.CheckIn")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to check in.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Check-in successful", "attendance": record})
}

// CheckOut marks a booking's guest as checked out. Requires a prior
// check-in.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req attendanceTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "bookingId is required", err.Error()))
		return
	}

	record, err := h.attendanceService.CheckOut(middleware.ClubID(c), req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFoundForClub):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found", err.Error()))
		case errors.Is(err, services.ErrAttendanceNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Attendance record not found", err.Error()))
		case errors.Is(err, services.ErrCheckOutBeforeCheckIn):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Guest is not checked in", err.Error()))
		default:
			utils.LogError(err, "CheckOut: Error from attendanceService.CheckOut")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to check out.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Check-out successful", "attendance": record})
}
