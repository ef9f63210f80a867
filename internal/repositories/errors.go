package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDuplicateKey is returned when a create would violate a uniqueness
	// rule (e.g. registering an email twice).
	ErrDuplicateKey = errors.New("duplicate key value violates uniqueness rule")

	// ErrInvalidState is returned when a mutation would violate a record's
	// state machine (e.g. checking out a booking that was never checked in).
	ErrInvalidState = errors.New("operation not allowed in current record state")
)
