package models

import "time"

// Entry types affecting pricing and points earned.
const (
	EntryTypeSingle = "single"
	EntryTypeCouple = "couple"
	EntryTypeTable  = "table"
)

// BookingStatusConfirmed is the only booking status; there is no
// cancellation flow in this design.
const BookingStatusConfirmed = "confirmed"

// Booking is an immutable ledger entry. Fee components satisfy
// TotalFee == EntryFee + PlatformFee + Tax.
type Booking struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	ClubID          int64     `json:"clubId"`
	ClubName        string    `json:"clubName"`
	EntryType       string    `json:"entryType"`
	FirstName       string    `json:"firstName"`
	SecondName      *string   `json:"secondName,omitempty"`
	BookingDate     string    `json:"bookingDate"`
	BookingTime     string    `json:"bookingTime"`
	EntryFee        int64     `json:"entryFee"`
	PlatformFee     int64     `json:"platformFee"`
	Tax             int64     `json:"tax"`
	TotalFee        int64     `json:"totalFee"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AttendanceRecord tracks check-in/check-out for exactly one booking.
// Invariant: CheckedOut implies CheckedIn, and CheckInTime is stamped once,
// on the first transition into checked-in.
type AttendanceRecord struct {
	ID           int64      `json:"id"`
	BookingID    int64      `json:"bookingId"`
	UserID       int64      `json:"userId"`
	ClubID       int64      `json:"clubId"`
	CheckedIn    bool       `json:"checkedIn"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckedOut   bool       `json:"checkedOut"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
}
