// Package explanation - Diff narratives
// Explains what changed between two quotes and why the premium differs
package explanation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"premium-quote/core/pricing/primitives"
	"premium-quote/core/quote"
)

// ChangeType classifies a premium difference
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNone     ChangeType = "no_change"
)

// DiffNarrative explains a premium difference between two quotes
type DiffNarrative struct {
	Subject    string          `json:"subject"`
	OldAnnual  decimal.Decimal `json:"oldAnnual"`
	NewAnnual  decimal.Decimal `json:"newAnnual"`
	Delta      decimal.Decimal `json:"delta"`
	ChangeType ChangeType      `json:"changeType"`
	Changes    []ChangeItem    `json:"changes"`
	Narrative  string          `json:"narrative"`
}

// ChangeItem is one breakdown line that differs between the quotes
type ChangeItem struct {
	Label     string           `json:"label"`
	OldAmount *decimal.Decimal `json:"oldAmount,omitempty"`
	NewAmount *decimal.Decimal `json:"newAmount,omitempty"`
	Impact    ChangeType       `json:"impact"`
}

// NewDiffNarrative creates a diff narrative
func NewDiffNarrative(subject string, oldAnnual, newAnnual decimal.Decimal) *DiffNarrative {
	delta := newAnnual.Sub(oldAnnual)
	changeType := ChangeNone
	switch delta.Sign() {
	case 1:
		changeType = ChangeIncrease
	case -1:
		changeType = ChangeDecrease
	}

	return &DiffNarrative{
		Subject:    subject,
		OldAnnual:  oldAnnual,
		NewAnnual:  newAnnual,
		Delta:      delta,
		ChangeType: changeType,
		Changes:    make([]ChangeItem, 0),
	}
}

// AddChange records a line that was added, removed or repriced.
// A nil amount means the line is absent on that side.
func (d *DiffNarrative) AddChange(label string, oldAmount, newAmount *decimal.Decimal) *DiffNarrative {
	before, after := decimal.Zero, decimal.Zero
	if oldAmount != nil {
		before = *oldAmount
	}
	if newAmount != nil {
		after = *newAmount
	}
	impact := ChangeNone
	switch after.Cmp(before) {
	case 1:
		impact = ChangeIncrease
	case -1:
		impact = ChangeDecrease
	}

	d.Changes = append(d.Changes, ChangeItem{
		Label:     label,
		OldAmount: oldAmount,
		NewAmount: newAmount,
		Impact:    impact,
	})
	return d
}

// Compare builds the narrative between two priced quotes. Lines keep the
// order of the new quote, then lines only present in the old one.
func Compare(subject string, prev, next quote.Result) *DiffNarrative {
	d := NewDiffNarrative(subject, prev.Annual, next.Annual)

	oldLines := make(map[string]decimal.Decimal, len(prev.Breakdown))
	for _, item := range prev.Breakdown {
		oldLines[item.Label] = item.Amount
	}
	seen := make(map[string]bool, len(next.Breakdown))

	for _, item := range next.Breakdown {
		seen[item.Label] = true
		after := item.Amount
		before, existed := oldLines[item.Label]
		switch {
		case !existed:
			d.AddChange(item.Label, nil, &after)
		case !before.Equal(after):
			d.AddChange(item.Label, &before, &after)
		}
	}
	for _, item := range prev.Breakdown {
		if !seen[item.Label] {
			before := item.Amount
			d.AddChange(item.Label, &before, nil)
		}
	}
	return d.Build()
}

func money(v decimal.Decimal) string {
	return v.StringFixed(primitives.CentPlaces)
}

// Build generates the narrative text
func (d *DiffNarrative) Build() *DiffNarrative {
	var parts []string

	switch d.ChangeType {
	case ChangeNone:
		parts = append(parts, fmt.Sprintf("%s premium unchanged at %s/year", d.Subject, money(d.NewAnnual)))
	case ChangeIncrease:
		parts = append(parts, fmt.Sprintf("%s premium increased by %s (from %s to %s)",
			d.Subject, money(d.Delta), money(d.OldAnnual), money(d.NewAnnual)))
	case ChangeDecrease:
		parts = append(parts, fmt.Sprintf("%s premium decreased by %s (from %s to %s)",
			d.Subject, money(d.Delta.Neg()), money(d.OldAnnual), money(d.NewAnnual)))
	}

	if len(d.Changes) > 0 {
		parts = append(parts, "because:")
		for _, change := range d.Changes {
			switch {
			case change.OldAmount == nil:
				parts = append(parts, fmt.Sprintf("  - %s added at %s", change.Label, money(*change.NewAmount)))
			case change.NewAmount == nil:
				parts = append(parts, fmt.Sprintf("  - %s removed (was %s)", change.Label, money(*change.OldAmount)))
			default:
				parts = append(parts, fmt.Sprintf("  - %s changed: %s -> %s",
					change.Label, money(*change.OldAmount), money(*change.NewAmount)))
			}
		}
	}

	d.Narrative = strings.Join(parts, "\n")
	return d
}

// ToMarkdown returns markdown formatted narrative
func (d *DiffNarrative) ToMarkdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("**%s**\n\n", d.Subject))
	if d.ChangeType != ChangeNone {
		sign := "+"
		if d.Delta.IsNegative() {
			sign = ""
		}
		sb.WriteString(fmt.Sprintf("Premium change: **%s%s/year** (%s -> %s)\n\n",
			sign, money(d.Delta), money(d.OldAnnual), money(d.NewAnnual)))
	}

	if len(d.Changes) > 0 {
		sb.WriteString("| Line | Before | After |\n|---|---:|---:|\n")
		for _, change := range d.Changes {
			before, after := "-", "-"
			if change.OldAmount != nil {
				before = money(*change.OldAmount)
			}
			if change.NewAmount != nil {
				after = money(*change.NewAmount)
			}
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %s |\n", change.Label, before, after))
		}
	}

	return sb.String()
}
