package quote

import (
	"github.com/shopspring/decimal"
)

// Number is an optional numeric form field. JSON null and the empty
// string both decode as missing.
type Number struct {
	decimal.Decimal
	Valid bool
}

// NewNumber returns a present value
func NewNumber(d decimal.Decimal) Number {
	return Number{Decimal: d, Valid: true}
}

// Or returns the value, or fallback when missing
func (n Number) Or(fallback decimal.Decimal) decimal.Decimal {
	if !n.Valid {
		return fallback
	}
	return n.Decimal
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Decimal.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "null", `""`:
		*n = Number{}
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*n = NewNumber(d)
	return nil
}
