package services

import (
	"time"

	"clubin_backend/internal/models"
	"clubin_backend/internal/repositories"
)

// Func-field fakes for the repository interfaces. Tests set only the
// functions they need; unset functions return ErrNotFound.

type FakeUserRepo struct {
	CreateUserFunc      func(user *models.User, passwordHash string) (*models.User, error)
	GetUserByIDFunc     func(id int64) (*models.User, error)
	GetUserByEmailFunc  func(email string) (*models.User, string, error)
	UpdateProfileFunc   func(user *models.User) (*models.User, error)
	AddFavoriteClubFunc func(userID, clubID int64) (*models.User, error)
}

func NewFakeUserRepo() *FakeUserRepo { return &FakeUserRepo{} }

func (f *FakeUserRepo) CreateUser(user *models.User, passwordHash string) (*models.User, error) {
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(user, passwordHash)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeUserRepo) GetUserByID(id int64) (*models.User, error) {
	if f.GetUserByIDFunc != nil {
		return f.GetUserByIDFunc(id)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeUserRepo) GetUserByEmail(email string) (*models.User, string, error) {
	if f.GetUserByEmailFunc != nil {
		return f.GetUserByEmailFunc(email)
	}
	return nil, "", repositories.ErrNotFound
}

func (f *FakeUserRepo) UpdateProfile(user *models.User) (*models.User, error) {
	if f.UpdateProfileFunc != nil {
		return f.UpdateProfileFunc(user)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeUserRepo) AddFavoriteClub(userID, clubID int64) (*models.User, error) {
	if f.AddFavoriteClubFunc != nil {
		return f.AddFavoriteClubFunc(userID, clubID)
	}
	return nil, repositories.ErrNotFound
}

type FakeClubRepo struct {
	CreateClubFunc       func(club *models.Club) (*models.Club, error)
	GetClubsFunc         func() ([]models.Club, error)
	GetClubByIDFunc      func(id int64) (*models.Club, error)
	GetClubByOwnerIDFunc func(ownerID int64) (*models.Club, error)
	UpdateClubFunc       func(club *models.Club) (*models.Club, error)
}

func NewFakeClubRepo() *FakeClubRepo { return &FakeClubRepo{} }

func (f *FakeClubRepo) CreateClub(club *models.Club) (*models.Club, error) {
	if f.CreateClubFunc != nil {
		return f.CreateClubFunc(club)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeClubRepo) GetClubs() ([]models.Club, error) {
	if f.GetClubsFunc != nil {
		return f.GetClubsFunc()
	}
	return []models.Club{}, nil
}

func (f *FakeClubRepo) GetClubByID(id int64) (*models.Club, error) {
	if f.GetClubByIDFunc != nil {
		return f.GetClubByIDFunc(id)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeClubRepo) GetClubByOwnerID(ownerID int64) (*models.Club, error) {
	if f.GetClubByOwnerIDFunc != nil {
		return f.GetClubByOwnerIDFunc(ownerID)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeClubRepo) UpdateClub(club *models.Club) (*models.Club, error) {
	if f.UpdateClubFunc != nil {
		return f.UpdateClubFunc(club)
	}
	return nil, repositories.ErrNotFound
}

type FakeBookingRepo struct {
	CreateBookingWithRewardFunc func(booking *models.Booking, points int64) (*models.Booking, *models.User, error)
	GetBookingByIDFunc          func(id int64) (*models.Booking, error)
	GetBookingsByUserIDFunc     func(userID int64) ([]models.Booking, error)
	GetBookingsByClubIDFunc     func(clubID int64) ([]models.Booking, error)
}

func NewFakeBookingRepo() *FakeBookingRepo { return &FakeBookingRepo{} }

func (f *FakeBookingRepo) CreateBookingWithReward(booking *models.Booking, points int64) (*models.Booking, *models.User, error) {
	if f.CreateBookingWithRewardFunc != nil {
		return f.CreateBookingWithRewardFunc(booking, points)
	}
	return nil, nil, repositories.ErrNotFound
}

func (f *FakeBookingRepo) GetBookingByID(id int64) (*models.Booking, error) {
	if f.GetBookingByIDFunc != nil {
		return f.GetBookingByIDFunc(id)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeBookingRepo) GetBookingsByUserID(userID int64) ([]models.Booking, error) {
	if f.GetBookingsByUserIDFunc != nil {
		return f.GetBookingsByUserIDFunc(userID)
	}
	return []models.Booking{}, nil
}

func (f *FakeBookingRepo) GetBookingsByClubID(clubID int64) ([]models.Booking, error) {
	if f.GetBookingsByClubIDFunc != nil {
		return f.GetBookingsByClubIDFunc(clubID)
	}
	return []models.Booking{}, nil
}

type FakeAttendanceRepo struct {
	CheckInFunc        func(bookingID, userID, clubID int64, at time.Time) (*models.AttendanceRecord, error)
	CheckOutFunc       func(bookingID int64, at time.Time) (*models.AttendanceRecord, error)
	GetByBookingIDFunc func(bookingID int64) (*models.AttendanceRecord, error)
	GetByClubIDFunc    func(clubID int64) ([]models.AttendanceRecord, error)
}

func NewFakeAttendanceRepo() *FakeAttendanceRepo { return &FakeAttendanceRepo{} }

func (f *FakeAttendanceRepo) CheckIn(bookingID, userID, clubID int64, at time.Time) (*models.AttendanceRecord, error) {
	if f.CheckInFunc != nil {
		return f.CheckInFunc(bookingID, userID, clubID, at)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeAttendanceRepo) CheckOut(bookingID int64, at time.Time) (*models.AttendanceRecord, error) {
	if f.CheckOutFunc != nil {
		return f.CheckOutFunc(bookingID, at)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeAttendanceRepo) GetByBookingID(bookingID int64) (*models.AttendanceRecord, error) {
	if f.GetByBookingIDFunc != nil {
		return f.GetByBookingIDFunc(bookingID)
	}
	return nil, repositories.ErrNotFound
}

func (f *FakeAttendanceRepo) GetByClubID(clubID int64) ([]models.AttendanceRecord, error) {
	if f.GetByClubIDFunc != nil {
		return f.GetByClubIDFunc(clubID)
	}
	return []models.AttendanceRecord{}, nil
}
