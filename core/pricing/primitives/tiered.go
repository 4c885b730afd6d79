// Package primitives - Value-tier selection
// Handles "up to" banded tariffs such as Omnium value tiers.
package primitives

import "github.com/shopspring/decimal"

// PricingTier is one band of a percentage tariff
type PricingTier struct {
	UpTo    decimal.Decimal // Inclusive upper limit
	Percent decimal.Decimal // Rate applied to the whole value
}

// TierIndex returns the index of the first limit that is >= value.
// Limits must be ascending. When value exceeds every limit the last index
// is returned with within=false, so callers can price with the top band
// and flag the overflow.
func TierIndex(value decimal.Decimal, limits []decimal.Decimal) (idx int, within bool) {
	if len(limits) == 0 {
		return -1, false
	}
	for i, limit := range limits {
		if value.LessThanOrEqual(limit) {
			return i, true
		}
	}
	return len(limits) - 1, false
}

// SelectTier picks the percentage band for value (see TierIndex)
func SelectTier(value decimal.Decimal, tiers []PricingTier) (PricingTier, bool) {
	limits := make([]decimal.Decimal, len(tiers))
	for i, t := range tiers {
		limits[i] = t.UpTo
	}
	idx, within := TierIndex(value, limits)
	if idx < 0 {
		return PricingTier{}, false
	}
	return tiers[idx], within
}

// Ascending reports whether limits are strictly increasing
func Ascending(limits []decimal.Decimal) bool {
	for i := 1; i < len(limits); i++ {
		if !limits[i].GreaterThan(limits[i-1]) {
			return false
		}
	}
	return true
}
