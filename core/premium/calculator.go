// Package premium prices quote requests against a tariff.
//
// The Calculator is a pure function of (request, tariff, current year): it
// performs no I/O, never returns an error and holds no mutable state, so
// it is safe to call on every form change and from any goroutine.
// Degenerate input resolves to a zero or partial result plus advisory notes.
package premium

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"premium-quote/core/pricing/primitives"
	"premium-quote/core/quote"
	"premium-quote/core/tariff"
	"premium-quote/internal/logging"
)

// Calculator prices requests with one tariff
type Calculator struct {
	rules  *tariff.Rules
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithClock sets the source of the current year
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used for calculation traces
func WithLogger(logger *zap.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a calculator. A nil tariff selects the built-in 2026 grid.
func New(rules *tariff.Rules, opts ...Option) *Calculator {
	if rules == nil {
		rules = tariff.Default2026()
	}
	c := &Calculator{
		rules:  rules,
		now:    time.Now,
		logger: logging.Named("premium"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rules returns the tariff the calculator prices with
func (c *Calculator) Rules() *tariff.Rules {
	return c.rules
}

// Calculate prices a request. It never fails: a request without vehicle
// type or registration date yields an empty result, and every other gap
// only drops the dependent line.
func (c *Calculator) Calculate(req *quote.Request) quote.Result {
	if !req.IsPriceable() {
		c.logger.Debug("request not priceable")
		return quote.Empty(quote.NoteIncompleteRequest)
	}

	registered, _ := req.RegistrationDate()
	selected := req.SelectedCoverages()
	category := c.rules.Category(req.VehicleType)
	age := tariff.VehicleAge(registered, c.now().Year())
	first := req.VehicleRank.IsFirst()

	result := quote.Result{
		Breakdown: []quote.LineItem{},
		Notes:     []string{},
	}

	rc := c.rateRC(req, category, age)
	result.Details.RC = rc.details
	if rc.tooYoung {
		result.Notes = append(result.Notes, quote.NoteRCTooYoung)
	}
	if rc.amount.IsPositive() {
		result.Breakdown = append(result.Breakdown, line(quote.LabelRC, rc.amount))
	}

	if req.UserStatus == quote.UserIndividual && first && c.rules.IndividualSurcharge.IsPositive() {
		result.Breakdown = append(result.Breakdown, line(quote.LabelIndividualSurcharge, c.rules.IndividualSurcharge))
	}

	result.Breakdown = append(result.Breakdown, c.rateCoverages(req.VehicleType, category, first, selected)...)

	om := c.rateOmnium(req, selected, age)
	result.Notes = append(result.Notes, om.notes...)
	result.Details.Omnium = om.details
	if om.item != nil {
		result.Breakdown = append(result.Breakdown, *om.item)
	}

	amounts := make([]decimal.Decimal, len(result.Breakdown))
	for i, item := range result.Breakdown {
		amounts[i] = item.Amount
	}
	result.Annual = primitives.Round2(primitives.Sum(amounts...))
	result.Monthly = primitives.Monthly(result.Annual)

	c.logger.Debug("quote calculated",
		zap.String("vehicle_type", string(req.VehicleType)),
		zap.Int("category", int(category)),
		zap.Int("vehicle_age", age),
		zap.Int("lines", len(result.Breakdown)),
		zap.String("annual", result.Annual.StringFixed(primitives.CentPlaces)),
		zap.Strings("notes", result.Notes),
	)
	return result
}

func line(label string, amount decimal.Decimal) quote.LineItem {
	return quote.LineItem{Label: label, Amount: primitives.Round2(amount)}
}
