package primitives

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		value, percent, want string
	}{
		{"10000", "0.83", "83"},
		{"30000", "0.83", "249"},
		{"60000", "1.18", "708"},
		{"12345", "0.83", "102.46"},
		{"0", "1.48", "0"},
	}
	for _, tt := range tests {
		got := PercentOf(d(tt.value), d(tt.percent))
		assert.True(t, got.Equal(d(tt.want)), "%s%% of %s = %s, want %s", tt.percent, tt.value, got, tt.want)
	}
}

func TestFloor(t *testing.T) {
	got, applied := Floor(d("83"), d("175"))
	assert.True(t, got.Equal(d("175")))
	assert.True(t, applied)

	got, applied = Floor(d("249"), d("175"))
	assert.True(t, got.Equal(d("249")))
	assert.False(t, applied)

	got, applied = Floor(d("175"), d("175"))
	assert.True(t, got.Equal(d("175")))
	assert.False(t, applied)
}

func TestMonthly(t *testing.T) {
	assert.True(t, Monthly(d("79")).Equal(d("6.58")))
	assert.True(t, Monthly(d("359")).Equal(d("29.92")))
	assert.True(t, Monthly(d("0")).IsZero())
}

func TestTierIndex(t *testing.T) {
	limits := []decimal.Decimal{d("10000"), d("20000"), d("30000")}

	idx, within := TierIndex(d("10000"), limits)
	assert.Equal(t, 0, idx)
	assert.True(t, within)

	idx, within = TierIndex(d("10000.01"), limits)
	assert.Equal(t, 1, idx)
	assert.True(t, within)

	idx, within = TierIndex(d("45000"), limits)
	assert.Equal(t, 2, idx)
	assert.False(t, within)

	idx, within = TierIndex(d("1"), nil)
	assert.Equal(t, -1, idx)
	assert.False(t, within)
}

func TestSelectTier(t *testing.T) {
	tiers := []PricingTier{
		{UpTo: d("75000"), Percent: d("1.18")},
		{UpTo: d("150000"), Percent: d("0.98")},
	}

	tier, within := SelectTier(d("75000"), tiers)
	assert.True(t, within)
	assert.True(t, tier.Percent.Equal(d("1.18")))

	tier, within = SelectTier(d("200000"), tiers)
	assert.False(t, within)
	assert.True(t, tier.Percent.Equal(d("0.98")))
}

func TestAscending(t *testing.T) {
	assert.True(t, Ascending([]decimal.Decimal{d("1"), d("2")}))
	assert.False(t, Ascending([]decimal.Decimal{d("2"), d("2")}))
	assert.True(t, Ascending(nil))
}

func TestSum(t *testing.T) {
	assert.True(t, Sum(d("79"), d("50"), d("230")).Equal(d("359")))
	assert.True(t, Sum().IsZero())
}
