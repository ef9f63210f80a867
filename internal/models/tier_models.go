package models

// MembershipTier is a loyalty level unlocked by a points threshold.
type MembershipTier struct {
	Name           string   `json:"name"`
	Color          string   `json:"color"`
	Benefits       []string `json:"benefits"`
	PointsRequired int64    `json:"pointsRequired"`
}

// Tier names.
const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// MembershipTiers is the static tier catalog, ordered by ascending
// points threshold.
var MembershipTiers = []MembershipTier{
	{Name: TierBronze, Color: "#CD7F32", Benefits: []string{"Skip regular lines", "10% off drinks"}, PointsRequired: 0},
	{Name: TierSilver, Color: "#C0C0C0", Benefits: []string{"Priority entry", "15% off drinks"}, PointsRequired: 500},
	{Name: TierGold, Color: "#FFD700", Benefits: []string{"VIP entry", "20% off drinks"}, PointsRequired: 1500},
	{Name: TierPlatinum, Color: "#E5E4E2", Benefits: []string{"Instant entry", "25% off everything"}, PointsRequired: 3000},
}

// TierForPoints returns the name of the highest tier whose threshold is at
// most points. Bronze (threshold 0) is the catch-all, so the function is
// total over non-negative point counts.
func TierForPoints(points int64) string {
	for i := len(MembershipTiers) - 1; i >= 0; i-- {
		if points >= MembershipTiers[i].PointsRequired {
			return MembershipTiers[i].Name
		}
	}
	return TierBronze
}

// Points earned per booking by entry type.
const (
	PointsTableEntry   = 100
	PointsCoupleEntry  = 75
	PointsDefaultEntry = 50
)

// PointsForEntryType returns the loyalty points a booking earns. Entry
// types other than table and couple earn the single-entry reward.
func PointsForEntryType(entryType string) int64 {
	switch entryType {
	case EntryTypeTable:
		return PointsTableEntry
	case EntryTypeCouple:
		return PointsCoupleEntry
	default:
		return PointsDefaultEntry
	}
}
