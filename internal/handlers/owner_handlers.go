package handlers

import (
	"errors"
	"net/http"

	"clubin_backend/internal/middleware"
	"clubin_backend/internal/services"
	"clubin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OwnerHandler holds the owner service.
type OwnerHandler struct {
	ownerService services.OwnerService
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(os services.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: os}
}

// RegisterOwner handles owner registration; it also creates the owner's club.
func (h *OwnerHandler) RegisterOwner(c *gin.Context) {
	var req services.RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "All fields are required", err.Error()))
		return
	}

	resp, err := h.ownerService.RegisterOwner(req)
	if err != nil {
		if errors.Is(err, services.ErrOwnerEmailExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Email already registered", ""))
			return
		}
		utils.LogError(err, "RegisterOwner: Error from ownerService.RegisterOwner")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to register owner.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Owner registration successful", "token": resp.Token, "owner": resp.Owner, "club": resp.Club})
}

// LoginOwner handles owner login.
func (h *OwnerHandler) LoginOwner(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Email and password required", err.Error()))
		return
	}

	resp, err := h.ownerService.LoginOwner(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid credentials", ""))
		case errors.Is(err, services.ErrOwnerClubMissing):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No club registered for this owner", ""))
		default:
			utils.LogError(err, "LoginOwner: Error from ownerService.LoginOwner")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to log in.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Owner login successful", "token": resp.Token, "owner": resp.Owner, "club": resp.Club})
}

// GetDashboard returns the owner's club, bookings, events, attendance and stats.
func (h *OwnerHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.ownerService.GetDashboard(middleware.SubjectID(c))
	if err != nil {
		if errors.Is(err, services.ErrOwnerClubMissing) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Club not found", ""))
			return
		}
		utils.LogError(err, "GetDashboard: Error from ownerService.GetDashboard")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch dashboard.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
