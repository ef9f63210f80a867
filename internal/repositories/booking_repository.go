package repositories

import (
	"time"

	"clubin_backend/internal/models"
)

// BookingRepository defines storage operations for the booking ledger.
// The ledger is append-only; bookings are never updated or deleted and
// booking IDs are never reused.
type BookingRepository interface {
	// CreateBookingWithReward appends the booking and applies its loyalty
	// effects to the user (points, visit count, derived tier) in one
	// atomic step, so no reader observes a booking whose reward is
	// missing. Returns the stored booking and the updated user.
	CreateBookingWithReward(booking *models.Booking, points int64) (*models.Booking, *models.User, error)
	GetBookingByID(id int64) (*models.Booking, error)
	GetBookingsByUserID(userID int64) ([]models.Booking, error)
	GetBookingsByClubID(clubID int64) ([]models.Booking, error)
}

type bookingRepository struct {
	store *MemoryStore
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(store *MemoryStore) BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) CreateBookingWithReward(booking *models.Booking, points int64) (*models.Booking, *models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[booking.UserID]
	if !ok {
		return nil, nil, ErrNotFound
	}

	s.nextBookingID++
	stored := copyBooking(booking)
	stored.ID = s.nextBookingID
	stored.Status = models.BookingStatusConfirmed
	stored.CreatedAt = time.Now()
	s.bookings = append(s.bookings, stored)

	user.Points += points
	user.VisitCount++
	user.MembershipTier = models.TierForPoints(user.Points)
	user.UpdatedAt = stored.CreatedAt

	return copyBooking(stored), copyUser(user), nil
}

func (r *bookingRepository) GetBookingByID(id int64) (*models.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return copyBooking(b), nil
		}
	}
	return nil, ErrNotFound
}

func (r *bookingRepository) GetBookingsByUserID(userID int64) ([]models.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			bookings = append(bookings, *copyBooking(b))
		}
	}
	return bookings, nil
}

func (r *bookingRepository) GetBookingsByClubID(clubID int64) ([]models.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := []models.Booking{}
	for _, b := range s.bookings {
		if b.ClubID == clubID {
			bookings = append(bookings, *copyBooking(b))
		}
	}
	return bookings, nil
}
