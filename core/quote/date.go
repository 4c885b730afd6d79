package quote

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the calendar-date form used by the date picker
const DateLayout = "2006-01-02"

// Date is a calendar date. It decodes "YYYY-MM-DD" as well as RFC 3339
// timestamps, and always encodes as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate returns the given calendar date at midnight UTC
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD" or RFC 3339
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// YearsBefore returns the date n years before now, keeping month and day
func YearsBefore(now time.Time, n int) Date {
	return Date{now.AddDate(-n, 0, 0)}
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(DateLayout))), nil
}

// UnmarshalJSON implements json.Unmarshaler. An empty string leaves the
// zero date, which counts as missing.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" || string(b) == `""` {
		*d = Date{}
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
