package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"premium-quote/core/premium"
	"premium-quote/core/tariff"
)

var fixedNow = time.Date(2026, time.September, 1, 9, 30, 0, 0, time.UTC)

func calculator(rules *tariff.Rules) *premium.Calculator {
	return premium.New(rules, premium.WithClock(func() time.Time { return fixedNow }), premium.WithLogger(zap.NewNop()))
}

func TestDefaultScenariosMatch2026Tariff(t *testing.T) {
	outcomes := Verify(calculator(nil), DefaultScenarios(fixedNow))

	require.Len(t, outcomes, 16)
	for _, o := range Mismatches(outcomes) {
		t.Errorf("%s: got %s, want %s", o.Scenario.Name, o.Result.Annual, o.Scenario.Expected)
	}
}

func TestMismatchIsReported(t *testing.T) {
	rules := tariff.Default2026()
	rules.IndividualSurcharge = decimal.NewFromInt(60)

	outcomes := Verify(calculator(rules), DefaultScenarios(fixedNow))
	bad := Mismatches(outcomes)

	require.Len(t, bad, 1)
	assert.Equal(t, "Surcharge: Individual, 1st vehicle", bad[0].Scenario.Name)

	var buf bytes.Buffer
	require.NoError(t, NewGenerator(calculator(rules), fixedNow).Render(&buf, DefaultScenarios(fixedNow)))
	assert.Contains(t, buf.String(), "MISMATCH (expected 129.00)")
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewGenerator(calculator(nil), fixedNow).Render(&buf, DefaultScenarios(fixedNow)))
	text := buf.String()

	assert.Contains(t, text, "Generated on: 2026-09-01 09:30")
	assert.Contains(t, text, "Tariff: 2026 (EUR)")
	assert.Contains(t, text, "| **RC: Car (15-24), > 140 kW** | Type: car<br>Age: 20y<br>Power: 150kW<br>Status: club_member | **264.00** | OK |")
	assert.NotContains(t, text, "MISMATCH")
}

func TestRenderRules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRules(&buf, tariff.Default2026()))
	text := buf.String()

	assert.Contains(t, text, "#### Category 1: car, motorcycle, van")
	assert.Contains(t, text, "#### Category 5: caravan, trailer")
	assert.Contains(t, text, "- **Group 2 (25+)**: 25.00")
	assert.Contains(t, text, "  - motorcycle: 167.00")
	assert.Contains(t, text, "  - Power > 140 kW: 264.00")
	assert.Contains(t, text, "- **assistance_plus**: 66.00 / 39.00 (not offered for categories 3, 4)")
	assert.Contains(t, text, "  - Category 3: 12.00 / 0.00")
	assert.Contains(t, text, "    - <= 30000: 330.00 / 235.00 / 175.00")
	assert.Contains(t, text, "      - Value <= 150000: 1.38%")
	assert.Contains(t, text, "  - Two-wheelers: 135.00")
}
