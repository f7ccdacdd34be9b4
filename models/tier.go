package models

import "fmt"

// Tier is a subscription/visibility level. Tiers are ordered:
// freemium < basic < premium.
type Tier string

const (
	TierFreemium Tier = "freemium"
	TierBasic    Tier = "basic"
	TierPremium  Tier = "premium"
)

// Level returns the ordinal rank of the tier. Unknown values rank below
// freemium so they can never unlock gated content.
func (t Tier) Level() int {
	switch t {
	case TierFreemium:
		return 0
	case TierBasic:
		return 1
	case TierPremium:
		return 2
	default:
		return -1
	}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return t.Level() >= 0
}

// AtLeast reports whether t ranks at or above other.
func (t Tier) AtLeast(other Tier) bool {
	return t.Level() >= other.Level()
}

// TiersUpTo returns the tier names visible to a caller at tier t,
// for use in IN clauses when filtering list queries.
func TiersUpTo(t Tier) []string {
	names := []string{}
	for _, tier := range []Tier{TierFreemium, TierBasic, TierPremium} {
		if t.AtLeast(tier) {
			names = append(names, string(tier))
		}
	}
	return names
}

// ParseTier converts a raw string into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown tier: %q", s)
	}
	return t, nil
}
