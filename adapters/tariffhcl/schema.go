package tariffhcl

import "github.com/hashicorp/hcl/v2"

// Amounts are kept as raw expressions and converted through cty so that
// percentages such as 0.58 reach decimal.Decimal without a float64 detour.

type fileSchema struct {
	Version             string           `hcl:"version"`
	Currency            string           `hcl:"currency,optional"`
	DefaultCategory     int              `hcl:"default_category"`
	IndividualSurcharge hcl.Expression   `hcl:"individual_surcharge"`
	VehicleCategories   map[string]int   `hcl:"vehicle_categories"`
	Categories          []categoryBlock  `hcl:"category,block"`
	PowerSplit          *powerSplitBlock `hcl:"power_split,block"`
	Coverages           []coverageBlock  `hcl:"coverage,block"`
	Omnium              omniumBlock      `hcl:"omnium,block"`
}

type categoryBlock struct {
	ID              string          `hcl:"id,label"`
	RankIndependent bool            `hcl:"rank_independent,optional"`
	AgeGroups       []ageGroupBlock `hcl:"age_group,block"`
}

type ageGroupBlock struct {
	Group      string         `hcl:"group,label"`
	MinAge     int            `hcl:"min_age"`
	First      hcl.Expression `hcl:"first,optional"`
	Additional hcl.Expression `hcl:"additional,optional"`
}

type powerSplitBlock struct {
	Category    int            `hcl:"category"`
	Group       string         `hcl:"group"`
	FixedTypes  []string       `hcl:"fixed_types,optional"`
	Fixed       hcl.Expression `hcl:"fixed,optional"`
	ThresholdKW hcl.Expression `hcl:"threshold_kw"`
	AtOrBelow   hcl.Expression `hcl:"at_or_below"`
	Above       hcl.Expression `hcl:"above"`
}

type rateBlock struct {
	Key        string         `hcl:"key,label"`
	First      hcl.Expression `hcl:"first"`
	Additional hcl.Expression `hcl:"additional,optional"`
}

type coverageBlock struct {
	Name       string         `hcl:"name,label"`
	First      hcl.Expression `hcl:"first"`
	Additional hcl.Expression `hcl:"additional,optional"`
	Excluded   []int          `hcl:"excluded_categories,optional"`
	ByCategory []rateBlock    `hcl:"category_rate,block"`
	ByVehicle  []rateBlock    `hcl:"vehicle_rate,block"`
}

type omniumBlock struct {
	MinPremium           hcl.Expression `hcl:"min_premium"`
	MinPremiumTwoWheeler hcl.Expression `hcl:"min_premium_two_wheeler"`
	Mini                 miniBlock      `hcl:"mini,block"`
	Full                 fullBlock      `hcl:"full,block"`
}

type bandBlock struct {
	MinAge  int            `hcl:"min_age"`
	Percent hcl.Expression `hcl:"percent"`
}

type miniBlock struct {
	Storage bandBlock   `hcl:"storage,block"`
	Bands   []bandBlock `hcl:"band,block"`
}

type fullBlock struct {
	TableCeiling hcl.Expression `hcl:"table_ceiling"`
	Rows         []rowBlock     `hcl:"row,block"`
	Bands        []percentBlock `hcl:"band,block"`
}

type rowBlock struct {
	Limit     hcl.Expression `hcl:"limit"`
	First     hcl.Expression `hcl:"first"`
	Second    hcl.Expression `hcl:"second"`
	ThirdPlus hcl.Expression `hcl:"third_plus"`
}

type percentBlock struct {
	MinAge int         `hcl:"min_age"`
	Tiers  []tierBlock `hcl:"tier,block"`
}

type tierBlock struct {
	UpTo    hcl.Expression `hcl:"up_to"`
	Percent hcl.Expression `hcl:"percent"`
}
