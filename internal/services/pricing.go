package services

import "math"

// PlatformFee is the fixed surcharge added to every booking before tax,
// in whole rupees.
const PlatformFee = 200

// TaxRate is applied to entry fee plus platform fee.
const TaxRate = 0.15

// FeeBreakdown holds the fee components of a booking.
// Invariant: Total == EntryFee + PlatformFee + Tax.
type FeeBreakdown struct {
	EntryFee    int64 `json:"entryFee"`
	PlatformFee int64 `json:"platformFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"totalFee"`
}

// ComputeFees computes the fee pipeline for a booking: entry fee, fixed
// platform fee, 15% tax on their sum, and the total. Tax is rounded half
// up (math.Round rounds half away from zero, which is half up for the
// non-negative amounts handled here). entryFee must be non-negative;
// callers validate before pricing.
func ComputeFees(entryFee int64) FeeBreakdown {
	subtotal := entryFee + PlatformFee
	tax := int64(math.Round(TaxRate * float64(subtotal)))
	return FeeBreakdown{
		EntryFee:    entryFee,
		PlatformFee: PlatformFee,
		Tax:         tax,
		Total:       subtotal + tax,
	}
}
