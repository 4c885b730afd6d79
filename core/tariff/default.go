package tariff

import (
	"github.com/shopspring/decimal"

	"premium-quote/core/pricing/primitives"
	"premium-quote/core/quote"
)

// DefaultVersion is the tariff year built into the binary
const DefaultVersion = "2026"

func amt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rate(first, additional int64) RankRate {
	return RankRate{First: amt(first), Additional: amt(additional)}
}

// Default2026 returns the built-in 2026 tariff.
// Each call returns a fresh value; callers may modify it freely.
func Default2026() *Rules {
	return &Rules{
		Version:  DefaultVersion,
		Currency: "EUR",
		VehicleCategories: map[quote.VehicleType]Category{
			quote.VehicleCar:        1,
			quote.VehicleMotorcycle: 1,
			quote.VehicleVan:        1,
			quote.VehicleTruck:      2,
			quote.VehicleBus:        2,
			quote.VehicleMoped:      3,
			quote.VehicleTractor:    4,
			quote.VehicleTrailer:    5,
			quote.VehicleCaravan:    5,
		},
		DefaultCategory: 1,
		Categories: map[Category]CategoryRules{
			1: {
				Thresholds: []AgeThreshold{{40, Group1}, {25, Group2}, {15, Group3}},
				Base: map[AgeGroup]RankRate{
					Group1: rate(79, 33),
					Group2: rate(119, 33),
					// Group3 is priced by PowerSplit
				},
			},
			2: {
				Thresholds: []AgeThreshold{{40, Group1}, {25, Group2}, {15, Group3}},
				Base: map[AgeGroup]RankRate{
					Group1: rate(94, 49),
					Group2: rate(134, 49),
					Group3: rate(239, 239),
				},
			},
			3: {
				Thresholds: []AgeThreshold{{15, Group1}},
				Base: map[AgeGroup]RankRate{
					Group1: rate(73, 17),
				},
			},
			4: {
				Thresholds: []AgeThreshold{{40, Group1}, {25, Group2}},
				Base: map[AgeGroup]RankRate{
					Group1: rate(43, 17),
					Group2: rate(58, 17),
				},
			},
			5: {
				Thresholds: []AgeThreshold{{25, Group2}, {15, Group1}},
				Base: map[AgeGroup]RankRate{
					Group1: Flat(amt(50)),
					Group2: Flat(amt(25)),
				},
				RankIndependent: true,
			},
		},
		PowerSplit: &PowerSplit{
			Category:    1,
			Group:       Group3,
			FixedTypes:  []quote.VehicleType{quote.VehicleMotorcycle},
			Fixed:       amt(167),
			ThresholdKW: amt(140),
			AtOrBelow:   amt(214),
			Above:       amt(264),
		},
		IndividualSurcharge: amt(50),
		CoverageRules: map[Coverage]CoverageRule{
			// basic assistance is included; assistance plus is the paid extension
			CoverageAssistance: {
				Rate:     rate(0, 0),
				Excluded: []Category{3, 4},
			},
			CoverageAssistancePlus: {
				Rate:     rate(66, 39),
				Excluded: []Category{3, 4},
			},
			CoverageLegalProtection: {
				Rate: rate(17, 0),
				ByCategory: map[Category]RankRate{
					3: rate(12, 0),
				},
			},
			CoverageDriverProtection: {
				Rate: Flat(amt(9)),
				ByVehicle: map[quote.VehicleType]RankRate{
					quote.VehicleMotorcycle: Flat(amt(12)),
					quote.VehicleMoped:      Flat(amt(12)),
				},
			},
			CoverageFireTheftResting: {
				Rate: rate(0, 0),
			},
		},
		Omnium: OmniumRules{
			MinPremium:           amt(175),
			MinPremiumTwoWheeler: amt(135),
			Mini: MiniOmnium{
				Storage: AgeBand{MinAge: 15, Percent: pct("0.58")},
				Bands: []AgeBand{
					{MinAge: 25, Percent: pct("0.83")},
					{MinAge: 15, Percent: pct("1.18")},
				},
			},
			Full: FullOmnium{
				TableCeiling: amt(50000),
				Table: []TableTier{
					fullRow(10000, 175, 175, 175),
					fullRow(20000, 230, 175, 175),
					fullRow(30000, 330, 235, 175),
					fullRow(40000, 430, 335, 175),
					fullRow(50000, 530, 435, 175),
				},
				Bands: []PercentBand{
					{MinAge: 25, Tiers: []primitives.PricingTier{
						{UpTo: amt(75000), Percent: pct("1.18")},
						{UpTo: amt(150000), Percent: pct("0.98")},
					}},
					{MinAge: 15, Tiers: []primitives.PricingTier{
						{UpTo: amt(75000), Percent: pct("1.48")},
						{UpTo: amt(150000), Percent: pct("1.38")},
					}},
				},
			},
		},
	}
}

func fullRow(limit, first, second, third int64) TableTier {
	return TableTier{
		Limit: amt(limit),
		Premiums: map[quote.Rank]decimal.Decimal{
			quote.RankFirst:     amt(first),
			quote.RankSecond:    amt(second),
			quote.RankThirdPlus: amt(third),
		},
	}
}
