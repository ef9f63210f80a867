package services

import (
	"errors"
	"fmt"
	"strings"

	"clubin_backend/internal/metrics"
	"clubin_backend/internal/models"
	"clubin_backend/internal/repositories"
	"clubin_backend/pkg/utils"
)

// --- Custom Service Errors for Booking ---
var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingValidation      = errors.New("missing required booking information")
	ErrClubForBookingNotFound = errors.New("club specified for booking not found")
	ErrUserForBookingNotFound = errors.New("user specified for booking not found")
)

// --- Booking DTOs ---

// CreateBookingRequest DTO. Fee fields are intentionally absent: fees are
// always recomputed server-side from the club's price list, so a client
// can never book at a self-declared price.
type CreateBookingRequest struct {
	ClubID          int64   `json:"clubId" binding:"required"`
	EntryType       string  `json:"entryType" binding:"required"`
	FirstName       string  `json:"firstName" binding:"required"`
	SecondName      *string `json:"secondName"`
	BookingDate     string  `json:"bookingDate" binding:"required"`
	BookingTime     string  `json:"bookingTime" binding:"required"`
	SpecialRequests string  `json:"specialRequests"`
}

// BookingResult is returned on a successful booking.
type BookingResult struct {
	Booking      *models.Booking `json:"booking"`
	PointsEarned int64           `json:"pointsEarned"`
	User         *models.User    `json:"user"`
}

// --- BookingService Interface ---
type BookingService interface {
	CreateBooking(userID int64, req CreateBookingRequest) (*BookingResult, error)
	GetBookingsForUser(userID int64) ([]models.Booking, error)
	GetBookingsForClub(clubID int64) ([]models.Booking, error)
}

// --- bookingService Implementation ---
type bookingService struct {
	bookingRepo repositories.BookingRepository
	clubRepo    repositories.ClubRepository
	userRepo    repositories.UserRepository
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(
	bookingRepo repositories.BookingRepository,
	clubRepo repositories.ClubRepository,
	userRepo repositories.UserRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		clubRepo:    clubRepo,
		userRepo:    userRepo,
	}
}

// CreateBooking validates the request, prices it from the club's entry
// pricing, appends it to the ledger and applies the loyalty reward
// (points, visit count, derived tier) in one atomic step.
func (s *bookingService) CreateBooking(userID int64, req CreateBookingRequest) (*BookingResult, error) {
	if utils.IsEmpty(req.EntryType) || utils.IsEmpty(req.FirstName) ||
		utils.IsEmpty(req.BookingDate) || utils.IsEmpty(req.BookingTime) {
		return nil, ErrBookingValidation
	}

	club, err := s.clubRepo.GetClubByID(req.ClubID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrClubForBookingNotFound, req.ClubID)
		}
		return nil, fmt.Errorf("failed to validate club for booking: %w", err)
	}

	if _, err := s.userRepo.GetUserByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrUserForBookingNotFound, userID)
		}
		return nil, fmt.Errorf("failed to validate user for booking: %w", err)
	}

	entryType := strings.ToLower(strings.TrimSpace(req.EntryType))
	fees := ComputeFees(club.Pricing.PriceForEntryType(entryType))

	booking := &models.Booking{
		UserID:          userID,
		ClubID:          club.ID,
		ClubName:        club.Name,
		EntryType:       entryType,
		FirstName:       req.FirstName,
		SecondName:      req.SecondName,
		BookingDate:     req.BookingDate,
		BookingTime:     req.BookingTime,
		EntryFee:        fees.EntryFee,
		PlatformFee:     fees.PlatformFee,
		Tax:             fees.Tax,
		TotalFee:        fees.Total,
		SpecialRequests: req.SpecialRequests,
	}

	points := models.PointsForEntryType(entryType)
	created, user, err := s.bookingRepo.CreateBookingWithReward(booking, points)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrUserForBookingNotFound, userID)
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.BookingsCreated.WithLabelValues(entryType).Inc()
	return &BookingResult{Booking: created, PointsEarned: points, User: user}, nil
}

func (s *bookingService) GetBookingsForUser(userID int64) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.GetBookingsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) GetBookingsForClub(clubID int64) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.GetBookingsByClubID(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club bookings: %w", err)
	}
	return bookings, nil
}
