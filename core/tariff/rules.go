// Package tariff holds the premium rule tables.
//
// A Rules value is a complete, versioned tariff: category mapping, age
// groups, base premiums, surcharges, optional coverage prices and the
// Omnium formulas. The calculator reads it and never mutates it, so one
// Rules value can back any number of calculators.
package tariff

import (
	"github.com/shopspring/decimal"

	"premium-quote/core/pricing/primitives"
	"premium-quote/core/quote"
)

// Category is a rate category (1-5)
type Category int

// AgeGroup is a category-specific vehicle-age bracket
type AgeGroup string

const (
	NoGroup AgeGroup = ""
	Group1  AgeGroup = "group1"
	Group2  AgeGroup = "group2"
	Group3  AgeGroup = "group3"
)

// Coverage names an optional coverage priced by a CoverageRule
type Coverage string

const (
	CoverageAssistance       Coverage = "assistance"
	CoverageAssistancePlus   Coverage = "assistance_plus"
	CoverageLegalProtection  Coverage = "legal_protection"
	CoverageDriverProtection Coverage = "driver_protection"
	CoverageFireTheftResting Coverage = "fire_theft_resting"
)

// Coverages lists the optional coverages in breakdown order (Omnium excluded)
var Coverages = []Coverage{
	CoverageAssistance,
	CoverageAssistancePlus,
	CoverageLegalProtection,
	CoverageDriverProtection,
	CoverageFireTheftResting,
}

// RankRate is a premium split between the first and additional vehicles
type RankRate struct {
	First      decimal.Decimal
	Additional decimal.Decimal
}

// Flat returns a RankRate with the same amount for every rank
func Flat(amount decimal.Decimal) RankRate {
	return RankRate{First: amount, Additional: amount}
}

// For returns the rate for the first vehicle or for additional ones
func (r RankRate) For(first bool) decimal.Decimal {
	if first {
		return r.First
	}
	return r.Additional
}

// AgeThreshold assigns Group to vehicles at least MinAge years old
type AgeThreshold struct {
	MinAge int
	Group  AgeGroup
}

// CategoryRules holds the RC rating of one category
type CategoryRules struct {
	// Thresholds are evaluated oldest first; the first match wins
	Thresholds []AgeThreshold

	// Base maps an age group to its RC premium
	Base map[AgeGroup]RankRate

	// RankIndependent categories ignore the vehicle rank entirely
	RankIndependent bool
}

// PowerSplit refines one (category, group) cell by vehicle subtype and power
type PowerSplit struct {
	Category Category
	Group    AgeGroup

	// FixedTypes are priced at Fixed regardless of power
	FixedTypes []quote.VehicleType
	Fixed      decimal.Decimal

	// ThresholdKW separates AtOrBelow (power <= threshold) from Above (power > threshold)
	ThresholdKW decimal.Decimal
	AtOrBelow   decimal.Decimal
	Above       decimal.Decimal
}

// Applies reports whether the split prices the given cell
func (p *PowerSplit) Applies(c Category, g AgeGroup) bool {
	return p != nil && p.Category == c && p.Group == g
}

// IsFixed reports whether v is priced at the fixed subtype rate
func (p *PowerSplit) IsFixed(v quote.VehicleType) bool {
	for _, t := range p.FixedTypes {
		if t == v {
			return true
		}
	}
	return false
}

// CoverageRule prices one optional coverage
type CoverageRule struct {
	// Rate is the default first/additional price
	Rate RankRate

	// ByCategory overrides Rate for a category
	ByCategory map[Category]RankRate

	// ByVehicle overrides Rate and ByCategory for a vehicle type
	ByVehicle map[quote.VehicleType]RankRate

	// Excluded categories are neither offered nor priced
	Excluded []Category
}

// Offered reports whether the coverage is available for c
func (r CoverageRule) Offered(c Category) bool {
	for _, ex := range r.Excluded {
		if ex == c {
			return false
		}
	}
	return true
}

// Price returns the premium for v in category c
func (r CoverageRule) Price(v quote.VehicleType, c Category, first bool) decimal.Decimal {
	if rate, ok := r.ByVehicle[v]; ok {
		return rate.For(first)
	}
	if rate, ok := r.ByCategory[c]; ok {
		return rate.For(first)
	}
	return r.Rate.For(first)
}

// AgeBand is a percentage that applies from MinAge years upward
type AgeBand struct {
	MinAge  int
	Percent decimal.Decimal
}

// MiniOmnium is the percentage-of-value formula of the mini cover
type MiniOmnium struct {
	// Storage applies to stored vehicles of at least Storage.MinAge years
	Storage AgeBand

	// Bands are evaluated oldest first
	Bands []AgeBand
}

// TableTier is one row of the full-Omnium flat table
type TableTier struct {
	Limit    decimal.Decimal
	Premiums map[quote.Rank]decimal.Decimal
}

// PercentBand is the full-Omnium percentage schedule from MinAge years upward
type PercentBand struct {
	MinAge int
	Tiers  []primitives.PricingTier
}

// FullOmnium prices values up to TableCeiling from Table, and above it by percentage
type FullOmnium struct {
	TableCeiling decimal.Decimal
	Table        []TableTier

	// Bands are evaluated oldest first
	Bands []PercentBand
}

// OmniumRules holds both Omnium formulas and the minimum premiums
type OmniumRules struct {
	MinPremium           decimal.Decimal
	MinPremiumTwoWheeler decimal.Decimal
	Mini                 MiniOmnium
	Full                 FullOmnium
}

// Floor returns the minimum premium for v
func (o OmniumRules) Floor(v quote.VehicleType) decimal.Decimal {
	if v.IsTwoWheeler() {
		return o.MinPremiumTwoWheeler
	}
	return o.MinPremium
}

// Band returns the first band whose MinAge is <= age
func (m MiniOmnium) Band(age int) (AgeBand, bool) {
	for _, b := range m.Bands {
		if age >= b.MinAge {
			return b, true
		}
	}
	return AgeBand{}, false
}

// Band returns the first band whose MinAge is <= age
func (f FullOmnium) Band(age int) (PercentBand, bool) {
	for _, b := range f.Bands {
		if age >= b.MinAge {
			return b, true
		}
	}
	return PercentBand{}, false
}

// TableLimits returns the table tier limits in order
func (f FullOmnium) TableLimits() []decimal.Decimal {
	limits := make([]decimal.Decimal, len(f.Table))
	for i, t := range f.Table {
		limits[i] = t.Limit
	}
	return limits
}

// Rules is a complete tariff
type Rules struct {
	// Version identifies the tariff (e.g. "2026")
	Version string

	// Currency of every amount
	Currency string

	// VehicleCategories maps a vehicle type to its rate category
	VehicleCategories map[quote.VehicleType]Category

	// DefaultCategory is used for unknown vehicle types
	DefaultCategory Category

	// Categories holds the RC rating per category
	Categories map[Category]CategoryRules

	// PowerSplit refines the category-1 youngest group
	PowerSplit *PowerSplit

	// IndividualSurcharge applies to individual policyholders on their first vehicle
	IndividualSurcharge decimal.Decimal

	// CoverageRules prices the optional coverages
	CoverageRules map[Coverage]CoverageRule

	// Omnium prices comprehensive cover
	Omnium OmniumRules
}
