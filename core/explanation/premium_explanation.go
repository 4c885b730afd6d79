// Package explanation - Premium explanation
// Exposes WHY each breakdown line has its amount, not just totals.
package explanation

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"premium-quote/core/pricing/primitives"
	"premium-quote/core/quote"
)

// LineExplanation provides full transparency for one breakdown line
type LineExplanation struct {
	// Identity
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`

	// Formula breakdown
	Formula string  `json:"formula"`
	Inputs  []Input `json:"inputs"`

	// Rule is the tariff rule that fired
	Rule string `json:"rule,omitempty"`
}

// Input represents an input to the line formula
type Input struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"` // "request", "tariff", "calculated"
}

// Input sources
const (
	SourceRequest    = "request"
	SourceTariff     = "tariff"
	SourceCalculated = "calculated"
)

// NewLineExplanation creates an explanation for a breakdown line
func NewLineExplanation(item quote.LineItem) *LineExplanation {
	return &LineExplanation{
		Label:  item.Label,
		Amount: item.Amount,
		Inputs: make([]Input, 0),
	}
}

// WithFormula sets the formula description
func (e *LineExplanation) WithFormula(formula string) *LineExplanation {
	e.Formula = formula
	return e
}

// WithRule sets the tariff rule name
func (e *LineExplanation) WithRule(rule string) *LineExplanation {
	e.Rule = rule
	return e
}

// AddInput adds an input to the explanation
func (e *LineExplanation) AddInput(name, value, source string) *LineExplanation {
	e.Inputs = append(e.Inputs, Input{
		Name:   name,
		Value:  value,
		Source: source,
	})
	return e
}

// ToJSON returns JSON representation
func (e *LineExplanation) ToJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// ToHover returns a compact tooltip format
func (e *LineExplanation) ToHover() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("**%s** = %s\n", e.Label, e.Amount.StringFixed(primitives.CentPlaces)))
	if e.Rule != "" {
		sb.WriteString(fmt.Sprintf("Rule: %s\n", e.Rule))
	}
	if e.Formula != "" {
		sb.WriteString(fmt.Sprintf("Formula: `%s`\n", e.Formula))
	}
	for _, in := range e.Inputs {
		sb.WriteString(fmt.Sprintf("- %s: %s (%s)\n", in.Name, in.Value, in.Source))
	}
	return sb.String()
}

// Explain builds one explanation per breakdown line of res, in order
func Explain(req *quote.Request, res quote.Result) []*LineExplanation {
	out := make([]*LineExplanation, 0, len(res.Breakdown))
	for _, item := range res.Breakdown {
		e := NewLineExplanation(item)
		switch item.Label {
		case quote.LabelRC:
			explainRC(e, res.Details.RC)
		case quote.LabelIndividualSurcharge:
			e.WithFormula("fixed surcharge").
				AddInput("userStatus", string(quote.UserIndividual), SourceRequest).
				AddInput("vehicleRank", string(quote.RankFirst), SourceRequest)
		case quote.LabelOmniumFull, quote.LabelOmniumMini:
			explainOmnium(e, res.Details.Omnium)
		default:
			e.WithFormula("flat rate").
				AddInput("vehicleType", string(req.VehicleType), SourceRequest).
				AddInput("vehicleRank", string(req.VehicleRank.Normalize()), SourceRequest)
		}
		out = append(out, e)
	}
	return out
}

func explainRC(e *LineExplanation, d *quote.RCDetails) {
	if d == nil {
		return
	}
	e.WithRule(d.Rule).
		AddInput("category", fmt.Sprintf("%d", d.Category), SourceTariff).
		AddInput("ageGroup", d.AgeGroup, SourceTariff).
		AddInput("vehicleAge", fmt.Sprintf("%d", d.VehicleAge), SourceCalculated).
		AddInput("rank", d.Rank, SourceRequest)

	formula := "base premium"
	if d.Condition != "" {
		formula = fmt.Sprintf("base premium (%s)", d.Condition)
	}
	if d.Power != nil {
		e.AddInput("powerKw", d.Power.String(), SourceRequest)
	}
	e.WithFormula(formula)
}

func explainOmnium(e *LineExplanation, d *quote.OmniumDetails) {
	if d == nil {
		return
	}
	e.WithRule(d.Rule).
		AddInput("type", string(d.Type), SourceRequest).
		AddInput("vehicleValue", d.Value.String(), SourceRequest)

	if d.Branch == quote.OmniumBranchTable {
		e.WithFormula(fmt.Sprintf("table premium for value <= %s", d.TierLimit))
		return
	}

	e.AddInput("ratePercent", d.RatePercent.String(), SourceTariff).
		AddInput("computed", d.Computed.StringFixed(primitives.CentPlaces), SourceCalculated).
		AddInput("minPremium", d.MinPremium.StringFixed(primitives.CentPlaces), SourceTariff)

	formula := fmt.Sprintf("max(%s x %s%%, %s)", d.Value, d.RatePercent, d.MinPremium)
	if d.MinPremiumApplied {
		formula += " (minimum premium applied)"
	}
	e.WithFormula(formula)
}
