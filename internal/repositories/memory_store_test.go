package repositories

import (
	"testing"
	"time"

	"clubin_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registeredUser(t *testing.T, store *MemoryStore, email string) *models.User {
	t.Helper()
	repo := NewUserRepository(store)
	user, err := repo.CreateUser(&models.User{
		FirstName:   "Asha",
		LastName:    "Rao",
		Email:       email,
		DateOfBirth: "2000-01-01",
	}, "hashed")
	require.NoError(t, err)
	return user
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	store := NewMemoryStore()
	repo := NewUserRepository(store)

	registeredUser(t, store, "asha@example.com")

	_, err := repo.CreateUser(&models.User{Email: "ASHA@example.com "}, "hashed")
	assert.ErrorIs(t, err, ErrDuplicateKey, "email match is case and whitespace insensitive")
}

func TestCreateUser_StartsAtBronzeWithZeroPoints(t *testing.T) {
	store := NewMemoryStore()
	user := registeredUser(t, store, "asha@example.com")

	assert.Equal(t, int64(0), user.Points)
	assert.Equal(t, int64(0), user.VisitCount)
	assert.Equal(t, models.TierBronze, user.MembershipTier)
	assert.Empty(t, user.FavoriteClubs)
}

func TestUpdateProfile_DoesNotTouchLoyaltyState(t *testing.T) {
	store := NewMemoryStore()
	user := registeredUser(t, store, "asha@example.com")

	bookingRepo := NewBookingRepository(store)
	_, _, err := bookingRepo.CreateBookingWithReward(&models.Booking{UserID: user.ID, ClubID: 1, EntryType: models.EntryTypeTable}, 100)
	require.NoError(t, err)

	userRepo := NewUserRepository(store)
	updated, err := userRepo.UpdateProfile(&models.User{
		ID:        user.ID,
		FirstName: "Aisha",
		LastName:  "Rao",
		Email:     "aisha@example.com",
		Phone:     "+91 99999 00000",
		City:      "Pune",
		State:     "Maharashtra",
	})
	require.NoError(t, err)

	assert.Equal(t, "Aisha", updated.FirstName)
	assert.Equal(t, "aisha@example.com", updated.Email)
	assert.Equal(t, int64(100), updated.Points)
	assert.Equal(t, int64(1), updated.VisitCount)
}

func TestAddFavoriteClub_Idempotent(t *testing.T) {
	store := NewMemoryStore()
	user := registeredUser(t, store, "asha@example.com")
	repo := NewUserRepository(store)

	first, err := repo.AddFavoriteClub(user.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, first.FavoriteClubs)

	second, err := repo.AddFavoriteClub(user.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, second.FavoriteClubs)
}

func TestCreateBookingWithReward_AppliesLoyaltyAtomically(t *testing.T) {
	store := NewMemoryStore()
	user := registeredUser(t, store, "asha@example.com")

	bookingRepo := NewBookingRepository(store)
	userRepo := NewUserRepository(store)

	booking, rewarded, err := bookingRepo.CreateBookingWithReward(&models.Booking{
		UserID:    user.ID,
		ClubID:    1,
		EntryType: models.EntryTypeCouple,
	}, 75)
	require.NoError(t, err)

	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())

	assert.Equal(t, int64(75), rewarded.Points)
	assert.Equal(t, int64(1), rewarded.VisitCount)
	assert.Equal(t, models.TierBronze, rewarded.MembershipTier)

	// The stored user matches what the compound operation returned.
	fetched, err := userRepo.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, rewarded.Points, fetched.Points)
	assert.Equal(t, rewarded.VisitCount, fetched.VisitCount)
}

func TestCreateBookingWithReward_UnknownUser(t *testing.T) {
	store := NewMemoryStore()
	repo := NewBookingRepository(store)

	_, _, err := repo.CreateBookingWithReward(&models.Booking{UserID: 99, ClubID: 1}, 50)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBookingWithReward_TierProgression(t *testing.T) {
	store := NewMemoryStore()
	user := registeredUser(t, store, "asha@example.com")
	repo := NewBookingRepository(store)

	// Ten single-entry bookings reach the 500 point Silver threshold.
	var rewarded *models.User
	for i := 0; i < 10; i++ {
		var err error
		_, rewarded, err = repo.CreateBookingWithReward(&models.Booking{
			UserID:    user.ID,
			ClubID:    1,
			EntryType: models.EntryTypeSingle,
		}, models.PointsForEntryType(models.EntryTypeSingle))
		require.NoError(t, err)
	}

	assert.Equal(t, int64(500), rewarded.Points)
	assert.Equal(t, int64(10), rewarded.VisitCount)
	assert.Equal(t, models.TierSilver, rewarded.MembershipTier)
}

func TestBookingIDsAreSequentialAndNeverReused(t *testing.T) {
	store := NewMemoryStore()
	user := registeredUser(t, store, "asha@example.com")
	repo := NewBookingRepository(store)

	for expected := int64(1); expected <= 3; expected++ {
		booking, _, err := repo.CreateBookingWithReward(&models.Booking{UserID: user.ID, ClubID: 1}, 50)
		require.NoError(t, err)
		assert.Equal(t, expected, booking.ID)
	}

	bookings, err := repo.GetBookingsByUserID(user.ID)
	require.NoError(t, err)
	assert.Len(t, bookings, 3)
}

func TestAttendanceCheckIn_FirstTransitionStampsTime(t *testing.T) {
	store := NewMemoryStore()
	repo := NewAttendanceRepository(store)

	first := time.Date(2026, time.September, 5, 22, 0, 0, 0, time.UTC)
	record, err := repo.CheckIn(10, 7, 1, first)
	require.NoError(t, err)
	assert.True(t, record.CheckedIn)
	require.NotNil(t, record.CheckInTime)
	assert.Equal(t, first, *record.CheckInTime)

	// A repeated check-in keeps the original time.
	later := first.Add(30 * time.Minute)
	record, err = repo.CheckIn(10, 7, 1, later)
	require.NoError(t, err)
	assert.Equal(t, first, *record.CheckInTime)
}

func TestAttendanceCheckOut_StateMachine(t *testing.T) {
	store := NewMemoryStore()
	repo := NewAttendanceRepository(store)

	now := time.Now()

	t.Run("no record", func(t *testing.T) {
		_, err := repo.CheckOut(10, now)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("checked in then out", func(t *testing.T) {
		_, err := repo.CheckIn(10, 7, 1, now)
		require.NoError(t, err)

		record, err := repo.CheckOut(10, now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.True(t, record.CheckedOut)
		require.NotNil(t, record.CheckOutTime)
		assert.True(t, record.CheckedIn, "checking out does not clear the check-in")
	})
}

func TestGetByClubID_FiltersAttendance(t *testing.T) {
	store := NewMemoryStore()
	repo := NewAttendanceRepository(store)

	now := time.Now()
	_, err := repo.CheckIn(10, 7, 1, now)
	require.NoError(t, err)
	_, err = repo.CheckIn(11, 8, 2, now)
	require.NoError(t, err)

	records, err := repo.GetByClubID(1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(10), records[0].BookingID)
}

func TestSeededStoreClubs(t *testing.T) {
	store := NewSeededStore()
	repo := NewClubRepository(store)

	clubs, err := repo.GetClubs()
	require.NoError(t, err)
	require.Len(t, clubs, 3)

	names := []string{clubs[0].Name, clubs[1].Name, clubs[2].Name}
	assert.Equal(t, []string{"Neon Nights", "Sky Lounge", "Pulse Club"}, names)

	// Seeded clubs are unowned until an owner claims one.
	for _, club := range clubs {
		assert.Nil(t, club.OwnerID)
		assert.NotZero(t, club.ID)
	}

	assert.Equal(t, int64(750), clubs[0].Pricing.Single)
	assert.Equal(t, int64(0), clubs[1].Pricing.Single, "Sky Lounge entry is free for members")
}

func TestRepositoriesReturnDetachedCopies(t *testing.T) {
	store := NewSeededStore()
	clubRepo := NewClubRepository(store)

	club, err := clubRepo.GetClubByID(1)
	require.NoError(t, err)
	club.Name = "Hacked"

	again, err := clubRepo.GetClubByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Neon Nights", again.Name)
}
