package services

import (
	"errors"
	"fmt"

	"clubin_backend/internal/models"
	"clubin_backend/internal/repositories"
	"clubin_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Owner ---
var (
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrOwnerEmailExists = errors.New("owner email already registered")
	ErrOwnerClubMissing = errors.New("no club registered for this owner")
)

// --- Owner DTOs ---

// RegisterOwnerRequest DTO
type RegisterOwnerRequest struct {
	ClubName  string `json:"clubName" binding:"required"`
	OwnerName string `json:"ownerName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
}

// OwnerAuthResponse DTO
type OwnerAuthResponse struct {
	Owner *models.Owner `json:"owner"`
	Club  *models.Club  `json:"club"`
	Token string        `json:"token"`
}

// DashboardStats summarizes a club's activity.
type DashboardStats struct {
	TotalBookings   int `json:"totalBookings"`
	TotalEvents     int `json:"totalEvents"`
	TotalAttendance int `json:"totalAttendance"` // checked-in count
}

// DashboardResponse DTO
type DashboardResponse struct {
	Club       *models.Club              `json:"club"`
	Bookings   []models.Booking          `json:"bookings"`
	Events     []models.Event            `json:"events"`
	Attendance []models.AttendanceRecord `json:"attendance"`
	Stats      DashboardStats            `json:"stats"`
}

// --- OwnerService Interface ---
type OwnerService interface {
	RegisterOwner(req RegisterOwnerRequest) (*OwnerAuthResponse, error)
	LoginOwner(req LoginRequest) (*OwnerAuthResponse, error)
	GetDashboard(ownerID int64) (*DashboardResponse, error)
}

// --- ownerService Implementation ---
type ownerService struct {
	ownerRepo      repositories.OwnerRepository
	clubRepo       repositories.ClubRepository
	bookingRepo    repositories.BookingRepository
	eventRepo      repositories.EventRepository
	attendanceRepo repositories.AttendanceRepository
}

// NewOwnerService creates a new instance of OwnerService.
func NewOwnerService(
	ownerRepo repositories.OwnerRepository,
	clubRepo repositories.ClubRepository,
	bookingRepo repositories.BookingRepository,
	eventRepo repositories.EventRepository,
	attendanceRepo repositories.AttendanceRepository,
) OwnerService {
	return &ownerService{
		ownerRepo:      ownerRepo,
		clubRepo:       clubRepo,
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		attendanceRepo: attendanceRepo,
	}
}

// RegisterOwner creates the owner account and the owner's club in one go.
// The club's owner reference is set here and never changes afterwards.
func (s *ownerService) RegisterOwner(req RegisterOwnerRequest) (*OwnerAuthResponse, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	owner := &models.Owner{
		ClubName:  req.ClubName,
		OwnerName: req.OwnerName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	createdOwner, err := s.ownerRepo.CreateOwner(owner, string(hashedPasswordBytes))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrOwnerEmailExists
		}
		return nil, fmt.Errorf("failed to register owner: %w", err)
	}

	club := &models.Club{
		OwnerID:     &createdOwner.ID,
		Name:        req.ClubName,
		Description: "New nightclub experience",
		Genre:       "Mixed",
		Capacity:    "Available",
		EntryFee:    "TBD",
		RegularFee:  "₹1,500",
		Hours:       "9 PM - 3 AM",
		WaitTime:    "No wait",
		Image:       "🎭",
		Rating:      4.0,
		Pricing:     models.EntryPricing{Single: 500, Couple: 900, Table: 3000},
	}
	createdClub, err := s.clubRepo.CreateClub(club)
	if err != nil {
		return nil, fmt.Errorf("failed to create club for owner: %w", err)
	}

	token, err := utils.GenerateSessionToken(createdOwner.ID, createdOwner.Email, utils.RoleOwner, createdClub.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &OwnerAuthResponse{Owner: createdOwner, Club: createdClub, Token: token}, nil
}

// LoginOwner handles owner login and token generation.
func (s *ownerService) LoginOwner(req LoginRequest) (*OwnerAuthResponse, error) {
	owner, storedHash, err := s.ownerRepo.GetOwnerByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	club, err := s.clubRepo.GetClubByOwnerID(owner.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOwnerClubMissing
		}
		return nil, fmt.Errorf("failed to look up owner's club: %w", err)
	}

	token, err := utils.GenerateSessionToken(owner.ID, owner.Email, utils.RoleOwner, club.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &OwnerAuthResponse{Owner: owner, Club: club, Token: token}, nil
}

// GetDashboard assembles the owner's club, its bookings, events, raw
// attendance records and summary stats.
func (s *ownerService) GetDashboard(ownerID int64) (*DashboardResponse, error) {
	club, err := s.clubRepo.GetClubByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOwnerClubMissing
		}
		return nil, fmt.Errorf("failed to look up owner's club: %w", err)
	}

	bookings, err := s.bookingRepo.GetBookingsByClubID(club.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club bookings: %w", err)
	}
	events, err := s.eventRepo.GetEventsByClubID(club.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club events: %w", err)
	}
	attendance, err := s.attendanceRepo.GetByClubID(club.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club attendance: %w", err)
	}

	checkedIn := 0
	for _, record := range attendance {
		if record.CheckedIn {
			checkedIn++
		}
	}

	return &DashboardResponse{
		Club:       club,
		Bookings:   bookings,
		Events:     events,
		Attendance: attendance,
		Stats: DashboardStats{
			TotalBookings:   len(bookings),
			TotalEvents:     len(events),
			TotalAttendance: checkedIn,
		},
	}, nil
}
