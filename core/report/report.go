package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"premium-quote/core/premium"
	"premium-quote/core/pricing/primitives"
	"premium-quote/core/quote"
	"premium-quote/core/tariff"
)

// Outcome is a priced scenario
type Outcome struct {
	Scenario Scenario
	Result   quote.Result
}

// Matches reports whether the premium equals the expected amount.
// Scenarios without expectation always match.
func (o Outcome) Matches() bool {
	return o.Scenario.Expected == nil || o.Result.Annual.Equal(*o.Scenario.Expected)
}

// Verify prices every scenario
func Verify(calc *premium.Calculator, scenarios []Scenario) []Outcome {
	out := make([]Outcome, len(scenarios))
	for i, s := range scenarios {
		out[i] = Outcome{Scenario: s, Result: calc.Calculate(s.Request)}
	}
	return out
}

// Mismatches returns the outcomes that differ from their expectation
func Mismatches(outcomes []Outcome) []Outcome {
	var bad []Outcome
	for _, o := range outcomes {
		if !o.Matches() {
			bad = append(bad, o)
		}
	}
	return bad
}

// Generator renders the verification report
type Generator struct {
	calc *premium.Calculator
	now  time.Time
}

// NewGenerator creates a report generator; now stamps the report
func NewGenerator(calc *premium.Calculator, now time.Time) *Generator {
	return &Generator{calc: calc, now: now}
}

// Render writes the scenario table followed by the rule breakdown
func (g *Generator) Render(w io.Writer, scenarios []Scenario) error {
	rules := g.calc.Rules()
	var sb strings.Builder

	sb.WriteString("# Premium Calculation Verification Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated on: %s\n\n", g.now.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("Tariff: %s (%s)\n\n", rules.Version, rules.Currency))
	sb.WriteString("This report verifies the premium calculation for vehicle types, user statuses and coverage options.\n\n")

	sb.WriteString("| Scenario | Details | Total Annual Premium | Check |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, o := range Verify(g.calc, scenarios) {
		check := "OK"
		if !o.Matches() {
			check = fmt.Sprintf("MISMATCH (expected %s)", money(*o.Scenario.Expected))
		}
		sb.WriteString(fmt.Sprintf("| **%s** | %s | **%s** | %s |\n",
			o.Scenario.Name, scenarioDetails(o.Scenario.Request, g.now), money(o.Result.Annual), check))
	}

	sb.WriteString("\n## Calculation Rules Breakdown\n\n")
	writeRules(&sb, rules)

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderRules writes only the rule breakdown
func RenderRules(w io.Writer, rules *tariff.Rules) error {
	var sb strings.Builder
	writeRules(&sb, rules)
	_, err := io.WriteString(w, sb.String())
	return err
}

func money(v decimal.Decimal) string {
	return v.StringFixed(primitives.CentPlaces)
}

func scenarioDetails(req *quote.Request, now time.Time) string {
	parts := []string{
		"Type: " + string(req.VehicleType),
		fmt.Sprintf("Age: %dy", tariff.VehicleAge(*req.FirstRegistrationDate, now.Year())),
	}
	if req.PowerKW.Valid {
		parts = append(parts, fmt.Sprintf("Power: %skW", req.PowerKW.Decimal))
	}
	if req.VehicleValue.Valid {
		parts = append(parts, fmt.Sprintf("Value: %s", req.VehicleValue.Decimal))
	}
	parts = append(parts, "Status: "+string(req.UserStatus))
	return strings.Join(parts, "<br>")
}

func writeRules(sb *strings.Builder, r *tariff.Rules) {
	sb.WriteString("### 1. Civil Liability (RC) Base Premiums\n")
	for _, c := range r.CategoryIDs() {
		cr := r.Categories[c]
		sb.WriteString(fmt.Sprintf("\n#### Category %d: %s\n", c, strings.Join(vehiclesOf(r, c), ", ")))
		for _, th := range cr.Thresholds {
			head := fmt.Sprintf("- **Group %s (%s)**", strings.TrimPrefix(string(th.Group), "group"), r.GroupRange(c, th.Group))
			switch split := r.PowerSplit; {
			case split.Applies(c, th.Group):
				sb.WriteString(head + ":\n")
				for _, v := range split.FixedTypes {
					sb.WriteString(fmt.Sprintf("  - %s: %s\n", v, money(split.Fixed)))
				}
				sb.WriteString(fmt.Sprintf("  - Power <= %s kW: %s\n", split.ThresholdKW, money(split.AtOrBelow)))
				sb.WriteString(fmt.Sprintf("  - Power > %s kW: %s\n", split.ThresholdKW, money(split.Above)))
			case cr.RankIndependent:
				sb.WriteString(fmt.Sprintf("%s: %s\n", head, money(cr.Base[th.Group].First)))
			default:
				base := cr.Base[th.Group]
				sb.WriteString(head + ":\n")
				sb.WriteString(fmt.Sprintf("  - 1st vehicle: %s\n", money(base.First)))
				sb.WriteString(fmt.Sprintf("  - Additional: %s\n", money(base.Additional)))
			}
		}
	}

	sb.WriteString("\n### 2. Surcharges\n")
	sb.WriteString(fmt.Sprintf("- **Individual status**: +%s on the first vehicle only.\n", money(r.IndividualSurcharge)))

	sb.WriteString("\n### 3. Optional Coverages\n")
	for _, cov := range tariff.Coverages {
		rule, ok := r.CoverageRules[cov]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("- **%s**: %s / %s", cov, money(rule.Rate.First), money(rule.Rate.Additional)))
		if len(rule.Excluded) > 0 {
			sb.WriteString(fmt.Sprintf(" (not offered for categories %s)", joinCategories(rule.Excluded)))
		}
		sb.WriteString("\n")
		for _, c := range sortedCategories(rule.ByCategory) {
			rate := rule.ByCategory[c]
			sb.WriteString(fmt.Sprintf("  - Category %d: %s / %s\n", c, money(rate.First), money(rate.Additional)))
		}
		for _, v := range sortedVehicles(rule.ByVehicle) {
			rate := rule.ByVehicle[v]
			sb.WriteString(fmt.Sprintf("  - %s: %s / %s\n", v, money(rate.First), money(rate.Additional)))
		}
	}

	o := r.Omnium
	sb.WriteString("\n### 4. Omnium\n")
	sb.WriteString("- **Storage (resting)**:\n")
	sb.WriteString(fmt.Sprintf("  - Age >= %d years: %s%% of value\n", o.Mini.Storage.MinAge, o.Mini.Storage.Percent))
	sb.WriteString("- **Mini Omnium**:\n")
	for _, b := range o.Mini.Bands {
		sb.WriteString(fmt.Sprintf("  - Age >= %d years: %s%% of value\n", b.MinAge, b.Percent))
	}
	sb.WriteString("- **Full Omnium**:\n")
	sb.WriteString(fmt.Sprintf("  - **Value <= %s** (table rates, ranks 1 / 2 / 3+):\n", o.Full.TableCeiling))
	for _, tier := range o.Full.Table {
		sb.WriteString(fmt.Sprintf("    - <= %s: %s / %s / %s\n", tier.Limit,
			money(tier.Premiums[quote.RankFirst]), money(tier.Premiums[quote.RankSecond]), money(tier.Premiums[quote.RankThirdPlus])))
	}
	sb.WriteString(fmt.Sprintf("  - **Value > %s** (percentage rates):\n", o.Full.TableCeiling))
	for _, band := range o.Full.Bands {
		sb.WriteString(fmt.Sprintf("    - Age >= %d years:\n", band.MinAge))
		for _, t := range band.Tiers {
			sb.WriteString(fmt.Sprintf("      - Value <= %s: %s%%\n", t.UpTo, t.Percent))
		}
	}
	sb.WriteString("- **Minimum premium**:\n")
	sb.WriteString(fmt.Sprintf("  - Two-wheelers: %s\n", money(o.MinPremiumTwoWheeler)))
	sb.WriteString(fmt.Sprintf("  - Others: %s\n", money(o.MinPremium)))
}

func vehiclesOf(r *tariff.Rules, c tariff.Category) []string {
	var names []string
	for v, cat := range r.VehicleCategories {
		if cat == c {
			names = append(names, string(v))
		}
	}
	sort.Strings(names)
	return names
}

func joinCategories(cats []tariff.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return strings.Join(parts, ", ")
}

func sortedCategories(m map[tariff.Category]tariff.RankRate) []tariff.Category {
	keys := make([]tariff.Category, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedVehicles(m map[quote.VehicleType]tariff.RankRate) []quote.VehicleType {
	keys := make([]quote.VehicleType, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
