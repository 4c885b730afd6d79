package premium

import (
	"premium-quote/core/quote"
	"premium-quote/core/tariff"
)

// coverageLabels maps each optional coverage to its breakdown label
var coverageLabels = map[tariff.Coverage]string{
	tariff.CoverageAssistance:       quote.LabelAssistance,
	tariff.CoverageAssistancePlus:   quote.LabelAssistancePlus,
	tariff.CoverageLegalProtection:  quote.LabelLegalProtection,
	tariff.CoverageDriverProtection: quote.LabelDriverProtection,
	tariff.CoverageFireTheftResting: quote.LabelFireTheftResting,
}

// CoverageLabel returns the breakdown label of cov
func CoverageLabel(cov tariff.Coverage) string {
	return coverageLabels[cov]
}

func isSelected(cov tariff.Coverage, sel quote.Coverages) bool {
	switch cov {
	case tariff.CoverageAssistance:
		return sel.Assistance
	case tariff.CoverageAssistancePlus:
		return sel.AssistancePlus
	case tariff.CoverageLegalProtection:
		return sel.LegalProtection
	case tariff.CoverageDriverProtection:
		return sel.DriverProtection
	case tariff.CoverageFireTheftResting:
		return sel.FireTheftResting
	}
	return false
}

// rateCoverages prices the selected optional coverages in breakdown order.
// A selected coverage offered for the category always yields a line, even at 0.
func (c *Calculator) rateCoverages(v quote.VehicleType, category tariff.Category, first bool, sel quote.Coverages) []quote.LineItem {
	var items []quote.LineItem
	for _, cov := range tariff.Coverages {
		if !isSelected(cov, sel) {
			continue
		}
		rule, ok := c.rules.CoverageRules[cov]
		if !ok || !rule.Offered(category) {
			continue
		}
		items = append(items, line(coverageLabels[cov], rule.Price(v, category, first)))
	}
	return items
}
