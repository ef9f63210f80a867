package repositories

import (
	"time"

	"clubin_backend/internal/models"
)

// AttendanceRepository defines storage operations for attendance records.
// Records are one-to-one with bookings; the first check-in creates the
// record.
type AttendanceRepository interface {
	// CheckIn creates the record if absent and marks it checked in.
	// CheckInTime is stamped only on the first transition into checked-in;
	// repeated check-ins keep the original time.
	CheckIn(bookingID, userID, clubID int64, at time.Time) (*models.AttendanceRecord, error)
	// CheckOut marks an existing record checked out. Returns ErrNotFound
	// if no record exists and ErrInvalidState if the record was never
	// checked in.
	CheckOut(bookingID int64, at time.Time) (*models.AttendanceRecord, error)
	GetByBookingID(bookingID int64) (*models.AttendanceRecord, error)
	GetByClubID(clubID int64) ([]models.AttendanceRecord, error)
}

type attendanceRepository struct {
	store *MemoryStore
}

// NewAttendanceRepository creates a new instance of AttendanceRepository.
func NewAttendanceRepository(store *MemoryStore) AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) CheckIn(bookingID, userID, clubID int64, at time.Time) (*models.AttendanceRecord, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.attendance[bookingID]
	if !ok {
		s.nextAttendanceID++
		record = &models.AttendanceRecord{
			ID:        s.nextAttendanceID,
			BookingID: bookingID,
			UserID:    userID,
			ClubID:    clubID,
		}
		s.attendance[bookingID] = record
	}

	if !record.CheckedIn {
		record.CheckedIn = true
		t := at
		record.CheckInTime = &t
	}
	return copyAttendance(record), nil
}

func (r *attendanceRepository) CheckOut(bookingID int64, at time.Time) (*models.AttendanceRecord, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.attendance[bookingID]
	if !ok {
		return nil, ErrNotFound
	}
	if !record.CheckedIn {
		return nil, ErrInvalidState
	}

	record.CheckedOut = true
	t := at
	record.CheckOutTime = &t
	return copyAttendance(record), nil
}

func (r *attendanceRepository) GetByBookingID(bookingID int64) (*models.AttendanceRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.attendance[bookingID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyAttendance(record), nil
}

func (r *attendanceRepository) GetByClubID(clubID int64) ([]models.AttendanceRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []models.AttendanceRecord{}
	for _, record := range s.attendance {
		if record.ClubID == clubID {
			records = append(records, *copyAttendance(record))
		}
	}
	return records, nil
}
