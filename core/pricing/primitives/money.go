// Package primitives - Centralized pricing math
// Rule tables declare rates, not do math.
// All premium arithmetic flows through these primitives.
package primitives

import "github.com/shopspring/decimal"

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// CentPlaces is the rounding precision of every published amount
const CentPlaces = 2

// Round2 rounds an amount to cents, half away from zero
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(CentPlaces)
}

// PercentOf returns value * percent / 100, rounded to cents
func PercentOf(value, percent decimal.Decimal) decimal.Decimal {
	return Round2(value.Mul(percent).Div(hundred))
}

// Floor returns max(amount, minimum) and whether the minimum was used.
// An amount equal to the minimum counts as not floored.
func Floor(amount, minimum decimal.Decimal) (decimal.Decimal, bool) {
	if amount.LessThan(minimum) {
		return minimum, true
	}
	return amount, false
}

// Monthly converts an annual amount to its monthly equivalent
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return Round2(annual.Div(monthsInYear))
}

// Sum adds amounts
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
