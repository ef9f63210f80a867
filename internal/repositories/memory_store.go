package repositories

import (
	"sync"

	"clubin_backend/internal/models"
)

// MemoryStore is the process-memory datastore backing every repository.
// A single RWMutex guards all collections so that compound mutations
// (booking append plus loyalty update) are atomic with respect to readers.
// There is no durable layout; a persistent engine would slot in behind the
// same repository interfaces.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[int64]*models.User
	usersByEmail  map[string]int64
	owners        map[int64]*models.Owner
	ownersByEmail map[string]int64
	clubs         []*models.Club
	events        []*models.Event
	bookings      []*models.Booking
	attendance    map[int64]*models.AttendanceRecord // keyed by booking ID

	nextUserID       int64
	nextOwnerID      int64
	nextClubID       int64
	nextEventID      int64
	nextBookingID    int64
	nextAttendanceID int64
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int64]*models.User),
		usersByEmail:  make(map[string]int64),
		owners:        make(map[int64]*models.Owner),
		ownersByEmail: make(map[string]int64),
		attendance:    make(map[int64]*models.AttendanceRecord),
	}
}

// NewSeededStore creates a store preloaded with the demo club catalog.
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore()
	seeds := []*models.Club{
		{
			Name:        "Neon Nights",
			Description: "Experience the ultimate nightlife with state-of-the-art sound systems and international DJs",
			Genre:       "Electronic & Techno", Capacity: "Available",
			EntryFee: "₹750 for Members", RegularFee: "₹1,500",
			Hours: "10 PM - 4 AM", WaitTime: "No wait", Image: "⚡",
			Rating: 4.5, CurrentPeople: 500, MaxCapacity: 800,
			Pricing: models.EntryPricing{Single: 750, Couple: 1400, Table: 5000},
		},
		{
			Name:        "Sky Lounge",
			Description: "Rooftop lounge with panoramic city views and premium dining experience",
			Genre:       "House & Lounge", Capacity: "Available",
			EntryFee: "Free for Members", RegularFee: "₹2,000",
			Hours: "9 PM - 3 AM", WaitTime: "No wait", Image: "🌆",
			Rating: 4.3, CurrentPeople: 300, MaxCapacity: 450,
			Pricing: models.EntryPricing{Single: 0, Couple: 0, Table: 3500},
		},
		{
			Name:        "Pulse Club",
			Description: "The hottest spot in town with multiple dance floors and themed nights",
			Genre:       "Hip-Hop & Bollywood", Capacity: "Busy",
			EntryFee: "₹900 for Members", RegularFee: "₹1,800",
			Hours: "11 PM - 5 AM", WaitTime: "15 min", Image: "🎵",
			Rating: 4.7, CurrentPeople: 700, MaxCapacity: 800,
			Pricing: models.EntryPricing{Single: 900, Couple: 1700, Table: 6000},
		},
	}
	for _, club := range seeds {
		s.nextClubID++
		club.ID = s.nextClubID
		s.clubs = append(s.clubs, club)
	}
	return s
}

// copyUser returns a detached copy so callers can never mutate stored
// state outside the lock.
func copyUser(u *models.User) *models.User {
	c := *u
	c.FavoriteClubs = append([]int64(nil), u.FavoriteClubs...)
	return &c
}

func copyOwner(o *models.Owner) *models.Owner {
	c := *o
	return &c
}

func copyClub(cl *models.Club) *models.Club {
	c := *cl
	if cl.OwnerID != nil {
		id := *cl.OwnerID
		c.OwnerID = &id
	}
	return &c
}

func copyBooking(b *models.Booking) *models.Booking {
	c := *b
	if b.SecondName != nil {
		s := *b.SecondName
		c.SecondName = &s
	}
	return &c
}

func copyAttendance(a *models.AttendanceRecord) *models.AttendanceRecord {
	c := *a
	if a.CheckInTime != nil {
		t := *a.CheckInTime
		c.CheckInTime = &t
	}
	if a.CheckOutTime != nil {
		t := *a.CheckOutTime
		c.CheckOutTime = &t
	}
	return &c
}
