package services

import (
	"errors"
	"fmt"

	"clubin_backend/internal/models"
	"clubin_backend/internal/repositories"
)

// --- Club DTOs ---

// UpdateClubRequest DTO. All fields are optional; absent fields keep the
// club's current values.
type UpdateClubRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Genre       *string `json:"genre"`
	RegularFee  *string `json:"regularFee"`
	Hours       *string `json:"hours"`
	MaxCapacity *int    `json:"maxCapacity"`
}

// CreateEventRequest DTO
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Description string `json:"description"`
	TicketPrice string `json:"ticketPrice"`
	MemberPrice string `json:"memberPrice"`
}

// --- ClubService Interface ---
type ClubService interface {
	GetClubs() ([]models.Club, error)
	GetTiersCatalog() []models.MembershipTier
	UpdateOwnClub(ownerID int64, req UpdateClubRequest) (*models.Club, error)
	CreateEvent(ownerID int64, req CreateEventRequest) (*models.Event, error)
	GetEvents() ([]models.Event, error)
	GetEventsForClub(clubID int64) ([]models.Event, error)
	GetOwnerEvents(ownerID int64) ([]models.Event, error)
}

// --- clubService Implementation ---
type clubService struct {
	clubRepo  repositories.ClubRepository
	eventRepo repositories.EventRepository
}

// NewClubService creates a new instance of ClubService.
func NewClubService(clubRepo repositories.ClubRepository, eventRepo repositories.EventRepository) ClubService {
	return &clubService{clubRepo: clubRepo, eventRepo: eventRepo}
}

func (s *clubService) GetClubs() ([]models.Club, error) {
	clubs, err := s.clubRepo.GetClubs()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}
	return clubs, nil
}

// GetTiersCatalog returns the static membership tier catalog, ordered by
// ascending points threshold.
func (s *clubService) GetTiersCatalog() []models.MembershipTier {
	return models.MembershipTiers
}

// UpdateOwnClub applies a partial update to the caller's club. Ownership
// is resolved from the owner ID, never from the payload.
func (s *clubService) UpdateOwnClub(ownerID int64, req UpdateClubRequest) (*models.Club, error) {
	club, err := s.clubRepo.GetClubByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOwnerClubMissing
		}
		return nil, fmt.Errorf("failed to look up owner's club: %w", err)
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Description != nil {
		club.Description = *req.Description
	}
	if req.Genre != nil {
		club.Genre = *req.Genre
	}
	if req.RegularFee != nil {
		club.RegularFee = *req.RegularFee
	}
	if req.Hours != nil {
		club.Hours = *req.Hours
	}
	if req.MaxCapacity != nil {
		club.MaxCapacity = *req.MaxCapacity
	}

	updated, err := s.clubRepo.UpdateClub(club)
	if err != nil {
		return nil, fmt.Errorf("failed to update club: %w", err)
	}
	return updated, nil
}

func (s *clubService) CreateEvent(ownerID int64, req CreateEventRequest) (*models.Event, error) {
	club, err := s.clubRepo.GetClubByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOwnerClubMissing
		}
		return nil, fmt.Errorf("failed to look up owner's club: %w", err)
	}

	event := &models.Event{
		ClubID:      club.ID,
		OwnerID:     ownerID,
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       club.Name,
		Description: req.Description,
		TicketPrice: req.TicketPrice,
		MemberPrice: req.MemberPrice,
	}
	created, err := s.eventRepo.CreateEvent(event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func (s *clubService) GetEvents() ([]models.Event, error) {
	events, err := s.eventRepo.GetEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}

func (s *clubService) GetEventsForClub(clubID int64) ([]models.Event, error) {
	events, err := s.eventRepo.GetEventsByClubID(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club events: %w", err)
	}
	return events, nil
}

func (s *clubService) GetOwnerEvents(ownerID int64) ([]models.Event, error) {
	club, err := s.clubRepo.GetClubByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOwnerClubMissing
		}
		return nil, fmt.Errorf("failed to look up owner's club: %w", err)
	}
	events, err := s.eventRepo.GetEventsByClubID(club.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owner events: %w", err)
	}
	return events, nil
}
