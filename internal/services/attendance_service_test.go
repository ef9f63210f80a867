package services

import (
	"testing"
	"time"

	"clubin_backend/internal/models"
	"clubin_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attendanceFixtures() (*FakeAttendanceRepo, *FakeBookingRepo, *FakeUserRepo) {
	bookingRepo := NewFakeBookingRepo()
	bookingRepo.GetBookingByIDFunc = func(id int64) (*models.Booking, error) {
		if id == 10 {
			return &models.Booking{ID: 10, UserID: 7, ClubID: 1, EntryType: "single", FirstName: "Asha"}, nil
		}
		if id == 11 {
			return &models.Booking{ID: 11, UserID: 8, ClubID: 2, EntryType: "couple", FirstName: "Maya"}, nil
		}
		return nil, repositories.ErrNotFound
	}
	return NewFakeAttendanceRepo(), bookingRepo, NewFakeUserRepo()
}

func TestCheckIn_Success(t *testing.T) {
	attendanceRepo, bookingRepo, userRepo := attendanceFixtures()

	now := time.Now()
	attendanceRepo.CheckInFunc = func(bookingID, userID, clubID int64, at time.Time) (*models.AttendanceRecord, error) {
		assert.Equal(t, int64(10), bookingID)
		assert.Equal(t, int64(7), userID)
		assert.Equal(t, int64(1), clubID)
		return &models.AttendanceRecord{ID: 1, BookingID: bookingID, UserID: userID, ClubID: clubID, CheckedIn: true, CheckInTime: &now}, nil
	}

	svc := NewAttendanceService(attendanceRepo, bookingRepo, userRepo)

	record, err := svc.CheckIn(1, 10)
	require.NoError(t, err)
	assert.True(t, record.CheckedIn)
	require.NotNil(t, record.CheckInTime)
}

func TestCheckIn_BookingScopedToClub(t *testing.T) {
	attendanceRepo, bookingRepo, userRepo := attendanceFixtures()
	svc := NewAttendanceService(attendanceRepo, bookingRepo, userRepo)

	// Booking 11 belongs to club 2; club 1 must not see it.
	_, err := svc.CheckIn(1, 11)
	assert.ErrorIs(t, err, ErrBookingNotFoundForClub)

	_, err = svc.CheckIn(1, 999)
	assert.ErrorIs(t, err, ErrBookingNotFoundForClub)
}

func TestCheckOut_RequiresPriorCheckIn(t *testing.T) {
	attendanceRepo, bookingRepo, userRepo := attendanceFixtures()

	attendanceRepo.CheckOutFunc = func(bookingID int64, at time.Time) (*models.AttendanceRecord, error) {
		return nil, repositories.ErrInvalidState
	}

	svc := NewAttendanceService(attendanceRepo, bookingRepo, userRepo)

	_, err := svc.CheckOut(1, 10)
	assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)
}

func TestCheckOut_NoRecord(t *testing.T) {
	attendanceRepo, bookingRepo, userRepo := attendanceFixtures()

	attendanceRepo.CheckOutFunc = func(bookingID int64, at time.Time) (*models.AttendanceRecord, error) {
		return nil, repositories.ErrNotFound
	}

	svc := NewAttendanceService(attendanceRepo, bookingRepo, userRepo)

	_, err := svc.CheckOut(1, 10)
	assert.ErrorIs(t, err, ErrAttendanceNotFound)
}

func TestGetAttendanceForClub_JoinsBookingsAndRecords(t *testing.T) {
	attendanceRepo, bookingRepo, userRepo := attendanceFixtures()

	checkInTime := time.Date(2026, time.September, 5, 22, 30, 0, 0, time.UTC)
	bookingRepo.GetBookingsByClubIDFunc = func(clubID int64) ([]models.Booking, error) {
		return []models.Booking{
			{ID: 10, UserID: 7, ClubID: 1, EntryType: "single", FirstName: "Asha", BookingDate: "2026-09-05", BookingTime: "21:00"},
			{ID: 12, UserID: 99, ClubID: 1, EntryType: "table", FirstName: "Ravi", BookingDate: "2026-09-06", BookingTime: "22:00"},
		}, nil
	}
	userRepo.GetUserByIDFunc = func(id int64) (*models.User, error) {
		if id == 7 {
			return &models.User{ID: 7, FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"}, nil
		}
		return nil, repositories.ErrNotFound
	}
	attendanceRepo.GetByBookingIDFunc = func(bookingID int64) (*models.AttendanceRecord, error) {
		if bookingID == 10 {
			return &models.AttendanceRecord{BookingID: 10, CheckedIn: true, CheckInTime: &checkInTime}, nil
		}
		return nil, repositories.ErrNotFound
	}

	svc := NewAttendanceService(attendanceRepo, bookingRepo, userRepo)

	rows, err := svc.GetAttendanceForClub(1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Asha Rao", rows[0].UserName)
	assert.Equal(t, "asha@example.com", rows[0].UserEmail)
	assert.True(t, rows[0].CheckedIn)
	require.NotNil(t, rows[0].CheckInTime)
	assert.Equal(t, checkInTime, *rows[0].CheckInTime)

	// Unknown guest and no attendance record fall back to defaults.
	assert.Equal(t, "Unknown", rows[1].UserName)
	assert.Empty(t, rows[1].UserEmail)
	assert.False(t, rows[1].CheckedIn)
	assert.Nil(t, rows[1].CheckInTime)
	assert.False(t, rows[1].CheckedOut)
}
