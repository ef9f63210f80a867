package services

import (
	"errors"
	"fmt"
	"time"

	"clubin_backend/internal/metrics"
	"clubin_backend/internal/models"
	"clubin_backend/internal/repositories"
)

// --- Custom Service Errors for Attendance ---
var (
	ErrBookingNotFoundForClub = errors.New("booking not found for this club")
	ErrAttendanceNotFound     = errors.New("attendance record not found")
	ErrCheckOutBeforeCheckIn  = errors.New("cannot check out a guest who was never checked in")
)

// AttendanceRow joins a club booking with its attendance record for the
// owner's attendance view. Absent records default to not checked in.
type AttendanceRow struct {
	BookingID    int64      `json:"bookingId"`
	UserID       int64      `json:"userId"`
	UserName     string     `json:"userName"`
	UserEmail    string     `json:"userEmail"`
	EntryType    string     `json:"entryType"`
	FirstName    string     `json:"firstName"`
	SecondName   *string    `json:"secondName,omitempty"`
	BookingDate  string     `json:"bookingDate"`
	BookingTime  string     `json:"bookingTime"`
	CheckedIn    bool       `json:"checkedIn"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckedOut   bool       `json:"checkedOut"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
}

// --- AttendanceService Interface ---
type AttendanceService interface {
	// CheckIn transitions the booking's attendance to checked-in. The
	// booking must belong to the caller's club. The first check-in
	// creates the record and stamps the check-in time; later calls keep
	// the original time.
	CheckIn(clubID, bookingID int64) (*models.AttendanceRecord, error)
	// CheckOut transitions to checked-out. Fails when no record exists
	// or the guest was never checked in.
	CheckOut(clubID, bookingID int64) (*models.AttendanceRecord, error)
	GetAttendanceForClub(clubID int64) ([]AttendanceRow, error)
}

// --- attendanceService Implementation ---
type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	bookingRepo    repositories.BookingRepository
	userRepo       repositories.UserRepository
}

// NewAttendanceService creates a new instance of AttendanceService.
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		bookingRepo:    bookingRepo,
		userRepo:       userRepo,
	}
}

// clubBooking resolves a booking and verifies it belongs to clubID.
// Bookings of other clubs are reported as not found, not as forbidden, so
// owners cannot probe for foreign booking IDs.
func (s *attendanceService) clubBooking(clubID, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrBookingNotFoundForClub, bookingID)
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	if booking.ClubID != clubID {
		return nil, fmt.Errorf("%w: ID %d", ErrBookingNotFoundForClub, bookingID)
	}
	return booking, nil
}

func (s *attendanceService) CheckIn(clubID, bookingID int64) (*models.AttendanceRecord, error) {
	booking, err := s.clubBooking(clubID, bookingID)
	if err != nil {
		return nil, err
	}

	record, err := s.attendanceRepo.CheckIn(booking.ID, booking.UserID, booking.ClubID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to check in booking %d: %w", bookingID, err)
	}
	metrics.CheckIns.Inc()
	return record, nil
}

func (s *attendanceService) CheckOut(clubID, bookingID int64) (*models.AttendanceRecord, error) {
	booking, err := s.clubBooking(clubID, bookingID)
	if err != nil {
		return nil, err
	}

	record, err := s.attendanceRepo.CheckOut(booking.ID, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: booking ID %d", ErrAttendanceNotFound, bookingID)
		}
		if errors.Is(err, repositories.ErrInvalidState) {
			return nil, fmt.Errorf("%w: booking ID %d", ErrCheckOutBeforeCheckIn, bookingID)
		}
		return nil, fmt.Errorf("failed to check out booking %d: %w", bookingID, err)
	}
	metrics.CheckOuts.Inc()
	return record, nil
}

// GetAttendanceForClub joins each of the club's bookings with its
// attendance record and guest identity.
func (s *attendanceService) GetAttendanceForClub(clubID int64) ([]AttendanceRow, error) {
	bookings, err := s.bookingRepo.GetBookingsByClubID(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club bookings: %w", err)
	}

	rows := []AttendanceRow{}
	for _, booking := range bookings {
		row := AttendanceRow{
			BookingID:   booking.ID,
			UserID:      booking.UserID,
			UserName:    "Unknown",
			EntryType:   booking.EntryType,
			FirstName:   booking.FirstName,
			SecondName:  booking.SecondName,
			BookingDate: booking.BookingDate,
			BookingTime: booking.BookingTime,
		}

		if user, userErr := s.userRepo.GetUserByID(booking.UserID); userErr == nil {
			row.UserName = user.FirstName + " " + user.LastName
			row.UserEmail = user.Email
		}

		if record, recErr := s.attendanceRepo.GetByBookingID(booking.ID); recErr == nil {
			row.CheckedIn = record.CheckedIn
			row.CheckInTime = record.CheckInTime
			row.CheckedOut = record.CheckedOut
			row.CheckOutTime = record.CheckOutTime
		}

		rows = append(rows, row)
	}
	return rows, nil
}
