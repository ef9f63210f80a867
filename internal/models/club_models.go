package models

import "time"

// EntryPricing holds a club's per-entry-type prices in whole rupees.
// Booking fees are always computed server-side from these values.
type EntryPricing struct {
	Single int64 `json:"single"`
	Couple int64 `json:"couple"`
	Table  int64 `json:"table"`
}

// PriceForEntryType returns the price for the given entry type. Unknown
// entry types are charged as a single entry, mirroring the points fallback.
func (p EntryPricing) PriceForEntryType(entryType string) int64 {
	switch entryType {
	case EntryTypeTable:
		return p.Table
	case EntryTypeCouple:
		return p.Couple
	default:
		return p.Single
	}
}

// Club represents a nightclub listed on the platform.
type Club struct {
	ID          int64  `json:"id"`
	OwnerID     *int64 `json:"ownerId,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	// Capacity is a display-only state string ("Available", "Busy").
	Capacity      string       `json:"capacity"`
	EntryFee      string       `json:"entryFee"`   // display text, e.g. "₹750 for Members"
	RegularFee    string       `json:"regularFee"` // display text for non-members
	Hours         string       `json:"hours"`
	WaitTime      string       `json:"waitTime"`
	Image         string       `json:"image"`
	Rating        float64      `json:"rating"`
	CurrentPeople int          `json:"currentPeople,omitempty"`
	MaxCapacity   int          `json:"maxCapacity,omitempty"`
	Pricing       EntryPricing `json:"pricing"`
}

// Event represents a club event published by an owner.
type Event struct {
	ID          int64     `json:"id"`
	ClubID      int64     `json:"clubId"`
	OwnerID     int64     `json:"ownerId"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
	TicketPrice string    `json:"ticketPrice"`
	MemberPrice string    `json:"memberPrice"`
	CreatedAt   time.Time `json:"createdAt"`
}
