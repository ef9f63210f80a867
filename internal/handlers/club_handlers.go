package handlers

import (
	"errors"
	"net/http"

	"clubin_backend/internal/middleware"
	"clubin_backend/internal/models"
	"clubin_backend/internal/services"
	"clubin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ClubHandler holds the club service.
type ClubHandler struct {
	clubService services.ClubService
}

// NewClubHandler creates a new ClubHandler.
func NewClubHandler(cs services.ClubService) *ClubHandler {
	return &ClubHandler{clubService: cs}
}

// GetClubs returns the public club catalog.
func (h *ClubHandler) GetClubs(c *gin.Context) {
	clubs, err := h.clubService.GetClubs()
	if err != nil {
		utils.LogError(err, "GetClubs: Error from clubService.GetClubs")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch clubs.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// GetMembershipTiers returns the static tier catalog.
func (h *ClubHandler) GetMembershipTiers(c *gin.Context) {
	c.JSON(http.StatusOK, h.clubService.GetTiersCatalog())
}

// UpdateClub applies a partial update to the authenticated owner's club.
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	var req services.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}

	club, err := h.clubService.UpdateOwnClub(middleware.SubjectID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrOwnerClubMissing) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Club not found", ""))
			return
		}
		utils.LogError(err, "UpdateClub: Error from clubService.UpdateOwnClub")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update club.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Club updated successfully", "club": club})
}

// CreateEvent publishes an event for the authenticated owner's club.
func (h *ClubHandler) CreateEvent(c *gin.Context) {
	var req services.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}

	event, err := h.clubService.CreateEvent(middleware.SubjectID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrOwnerClubMissing) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Club not found", ""))
			return
		}
		utils.LogError(err, "CreateEvent: Error from clubService.CreateEvent")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create event.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "event": event})
}

// GetEvents returns published events, optionally filtered by a clubId
// query parameter.
func (h *ClubHandler) GetEvents(c *gin.Context) {
	var events []models.Event
	var err error

	if raw := c.Query("clubId"); raw != "" {
		clubID, convErr := utils.StrToInt64(raw)
		if convErr != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "clubId must be a number", convErr.Error()))
			return
		}
		events, err = h.clubService.GetEventsForClub(clubID)
	} else {
		events, err = h.clubService.GetEvents()
	}

	if err != nil {
		utils.LogError(err, "GetEvents: Error from clubService.GetEvents")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch events.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetOwnerEvents returns the authenticated owner's events.
func (h *ClubHandler) GetOwnerEvents(c *gin.Context) {
	events, err := h.clubService.GetOwnerEvents(middleware.SubjectID(c))
	if err != nil {
		if errors.Is(err, services.ErrOwnerClubMissing) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Club not found", ""))
			return
		}
		utils.LogError(err, "GetOwnerEvents: Error from clubService.GetOwnerEvents")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch events.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, events)
}
