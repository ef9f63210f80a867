package models

import "time"

// User represents a registered portal customer.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	DateOfBirth  string    `json:"dateOfBirth"` // YYYY-MM-DD
	PasswordHash string    `json:"-"`           // never serialized
	Points       int64     `json:"points"`
	VisitCount   int64     `json:"visitCount"`
	// MembershipTier is derived from Points via TierForPoints on every
	// points mutation and must never be set independently.
	MembershipTier string    `json:"membershipTier"`
	FavoriteClubs  []int64   `json:"favoriteClubs"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Owner represents a club-owner account. The owned club references the
// owner by ID; the reference is set at registration and never changes.
type Owner struct {
	ID           int64     `json:"id"`
	ClubName     string    `json:"clubName"`
	OwnerName    string    `json:"ownerName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
}
