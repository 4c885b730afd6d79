package premium

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"premium-quote/core/quote"
	"premium-quote/core/tariff"
)

var fixedNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func newCalc(t *testing.T) *Calculator {
	t.Helper()
	return New(nil,
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(zaptest.NewLogger(t)),
	)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) quote.Number {
	return quote.NewNumber(d(s))
}

func aged(years int) *quote.Date {
	date := quote.YearsBefore(fixedNow, years)
	return &date
}

func request(v quote.VehicleType, age int) *quote.Request {
	return &quote.Request{
		VehicleType:           v,
		FirstRegistrationDate: aged(age),
		VehicleRank:           quote.RankFirst,
		UserStatus:            quote.UserClubMember,
		Coverages:             &quote.Coverages{RC: true},
	}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, context ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "want %s, got %s %v", want, got, context)
}

func TestBaseRatesGoldenTable(t *testing.T) {
	calc := newCalc(t)
	tests := []struct {
		vehicle quote.VehicleType
		age     int
		rank    quote.Rank
		want    string
	}{
		{quote.VehicleCar, 41, quote.RankFirst, "79"},
		{quote.VehicleCar, 41, quote.RankSecond, "33"},
		{quote.VehicleVan, 30, quote.RankFirst, "119"},
		{quote.VehicleMotorcycle, 30, quote.RankThirdPlus, "33"},
		{quote.VehicleMotorcycle, 20, quote.RankFirst, "167"},
		{quote.VehicleMotorcycle, 20, quote.RankSecond, "167"},
		{quote.VehicleCar, 20, quote.RankSecond, "214"},
		{quote.VehicleTruck, 45, quote.RankFirst, "94"},
		{quote.VehicleBus, 45, quote.RankSecond, "49"},
		{quote.VehicleTruck, 30, quote.RankFirst, "134"},
		{quote.VehicleBus, 30, quote.RankThirdPlus, "49"},
		{quote.VehicleTruck, 20, quote.RankFirst, "239"},
		{quote.VehicleTruck, 20, quote.RankSecond, "239"},
		{quote.VehicleMoped, 16, quote.RankFirst, "73"},
		{quote.VehicleMoped, 50, quote.RankSecond, "17"},
		{quote.VehicleTractor, 41, quote.RankFirst, "43"},
		{quote.VehicleTractor, 41, quote.RankSecond, "17"},
		{quote.VehicleTractor, 30, quote.RankFirst, "58"},
		{quote.VehicleTractor, 30, quote.RankThirdPlus, "17"},
		{quote.VehicleTrailer, 30, quote.RankFirst, "25"},
		{quote.VehicleCaravan, 30, quote.RankSecond, "25"},
		{quote.VehicleTrailer, 20, quote.RankFirst, "50"},
		{quote.VehicleCaravan, 20, quote.RankThirdPlus, "50"},
	}
	for _, tt := range tests {
		req := request(tt.vehicle, tt.age)
		req.VehicleRank = tt.rank
		res := calc.Calculate(req)
		assertAmount(t, tt.want, res.Annual, "%s age %d rank %s", tt.vehicle, tt.age, tt.rank)
	}
}

func TestScenarioClassicCarRCOnly(t *testing.T) {
	res := newCalc(t).Calculate(request(quote.VehicleCar, 41))

	assertAmount(t, "79", res.Annual)
	assertAmount(t, "6.58", res.Monthly)
	require.Len(t, res.Breakdown, 1)
	assert.Equal(t, quote.LabelRC, res.Breakdown[0].Label)
	require.NotNil(t, res.Details.RC)
	assert.Equal(t, 1, res.Details.RC.Category)
	assert.Equal(t, "group1", res.Details.RC.AgeGroup)
	assert.Equal(t, 41, res.Details.RC.VehicleAge)
	assert.Equal(t, "CAT 1, Group 1 (40+)", res.Details.RC.Rule)
	assert.Empty(t, res.Notes)
}

func TestScenarioYoungPowerfulCar(t *testing.T) {
	req := request(quote.VehicleCar, 20)
	req.PowerKW = dp("150")

	res := newCalc(t).Calculate(req)

	assertAmount(t, "264", res.Annual)
	assert.Equal(t, "Power > 140 kW", res.Details.RC.Condition)
	assert.Equal(t, "CAT 1, Group 3 (15-24)", res.Details.RC.Rule)
}

func TestScenarioIndividualWithFullOmnium(t *testing.T) {
	req := request(quote.VehicleCar, 41)
	req.UserStatus = quote.UserIndividual
	req.VehicleValue = dp("20000")
	req.Coverages = &quote.Coverages{RC: true, Omnium: true, OmniumType: quote.OmniumFull}

	res := newCalc(t).Calculate(req)

	assertAmount(t, "359", res.Annual)
	assertAmount(t, "29.92", res.Monthly)
	labels := make([]string, len(res.Breakdown))
	for i, item := range res.Breakdown {
		labels[i] = item.Label
	}
	assert.Equal(t, []string{quote.LabelRC, quote.LabelIndividualSurcharge, quote.LabelOmniumFull}, labels)

	om := res.Details.Omnium
	require.NotNil(t, om)
	assert.Equal(t, quote.OmniumBranchTable, om.Branch)
	assertAmount(t, "20000", *om.TierLimit)
	assertAmount(t, "230", om.Amount)
}

func TestScenarioMopedWithLegalProtection(t *testing.T) {
	req := request(quote.VehicleMoped, 16)
	req.Coverages.LegalProtection = true

	res := newCalc(t).Calculate(req)

	assertAmount(t, "85", res.Annual)
	item, ok := res.Line(quote.LabelLegalProtection)
	require.True(t, ok)
	assertAmount(t, "12", item.Amount)
}

func TestMissingRequiredFields(t *testing.T) {
	calc := newCalc(t)
	for name, req := range map[string]*quote.Request{
		"nil request":  nil,
		"missing date": {VehicleType: quote.VehicleCar},
		"missing type": {FirstRegistrationDate: aged(41)},
		"empty date":   {VehicleType: quote.VehicleCar, FirstRegistrationDate: &quote.Date{}},
	} {
		t.Run(name, func(t *testing.T) {
			res := calc.Calculate(req)
			assert.True(t, res.Annual.IsZero())
			assert.True(t, res.Monthly.IsZero())
			assert.NotNil(t, res.Breakdown)
			assert.Empty(t, res.Breakdown)
			assert.True(t, res.HasNote(quote.NoteIncompleteRequest))
		})
	}
}

func TestPowerThresholdBoundary(t *testing.T) {
	calc := newCalc(t)
	tests := []struct {
		power quote.Number
		want  string
	}{
		{dp("140"), "214"},
		{dp("140.01"), "264"},
		{dp("90"), "214"},
		{quote.Number{}, "214"},
	}
	for _, tt := range tests {
		req := request(quote.VehicleCar, 20)
		req.PowerKW = tt.power
		res := calc.Calculate(req)
		assertAmount(t, tt.want, res.Annual, "power %v", tt.power)
		require.NotNil(t, res.Details.RC.Power)
	}

	moto := request(quote.VehicleMotorcycle, 20)
	moto.PowerKW = dp("200")
	res := calc.Calculate(moto)
	assertAmount(t, "167", res.Annual)
	assert.Nil(t, res.Details.RC.Power)
	assert.Equal(t, "Motorcycle", res.Details.RC.Condition)
}

func TestAgeBracketBoundaries(t *testing.T) {
	calc := newCalc(t)
	tests := []struct {
		age  int
		want string
	}{
		{40, "79"},
		{39, "119"},
		{25, "119"},
		{24, "214"},
		{15, "214"},
	}
	for _, tt := range tests {
		res := calc.Calculate(request(quote.VehicleCar, tt.age))
		assertAmount(t, tt.want, res.Annual, "age %d", tt.age)
	}
}

func TestVehicleAgeIgnoresMonthAndDay(t *testing.T) {
	req := request(quote.VehicleCar, 0)
	late := quote.NewDate(1986, time.December, 31)
	req.FirstRegistrationDate = &late

	res := newCalc(t).Calculate(req)

	assert.Equal(t, 40, res.Details.RC.VehicleAge)
	assertAmount(t, "79", res.Annual)
}

func TestTooYoungForRC(t *testing.T) {
	calc := newCalc(t)

	res := calc.Calculate(request(quote.VehicleCar, 10))
	assert.True(t, res.Annual.IsZero())
	assert.Empty(t, res.Breakdown)
	assert.True(t, res.HasNote(quote.NoteRCTooYoung))
	assert.Empty(t, res.Details.RC.AgeGroup)

	tractor := request(quote.VehicleTractor, 24)
	tractor.Coverages.LegalProtection = true
	res = calc.Calculate(tractor)
	assertAmount(t, "17", res.Annual)
	assert.True(t, res.HasNote(quote.NoteRCTooYoung))
	_, hasRC := res.Line(quote.LabelRC)
	assert.False(t, hasRC)
}

func TestIndividualSurchargeOnlyOnFirstVehicle(t *testing.T) {
	calc := newCalc(t)
	statuses := []quote.UserStatus{quote.UserClubMember, quote.UserSupporter, quote.UserIndividual, ""}
	for _, status := range statuses {
		for _, rank := range []quote.Rank{quote.RankFirst, quote.RankSecond, quote.RankThirdPlus, ""} {
			req := request(quote.VehicleCar, 41)
			req.UserStatus = status
			req.VehicleRank = rank

			res := calc.Calculate(req)

			_, has := res.Line(quote.LabelIndividualSurcharge)
			want := status == quote.UserIndividual && rank.IsFirst()
			assert.Equal(t, want, has, "status %q rank %q", status, rank)
		}
	}
}

func TestOptionalCoveragesInOrder(t *testing.T) {
	req := request(quote.VehicleCar, 41)
	req.Coverages = &quote.Coverages{
		RC:               true,
		Assistance:       true,
		AssistancePlus:   true,
		LegalProtection:  true,
		DriverProtection: true,
		FireTheftResting: true,
	}

	res := newCalc(t).Calculate(req)

	assertAmount(t, "171", res.Annual)
	labels := make([]string, len(res.Breakdown))
	for i, item := range res.Breakdown {
		labels[i] = item.Label
	}
	assert.Equal(t, []string{
		quote.LabelRC,
		quote.LabelAssistance,
		quote.LabelAssistancePlus,
		quote.LabelLegalProtection,
		quote.LabelDriverProtection,
		quote.LabelFireTheftResting,
	}, labels)
	item, _ := res.Line(quote.LabelAssistance)
	assert.True(t, item.Amount.IsZero())
}

func TestAdditionalVehicleCoverages(t *testing.T) {
	req := request(quote.VehicleMotorcycle, 41)
	req.VehicleRank = quote.RankSecond
	req.Coverages = &quote.Coverages{RC: true, AssistancePlus: true, LegalProtection: true, DriverProtection: true}

	res := newCalc(t).Calculate(req)

	// 33 RC + 39 assistance plus + 0 legal + 12 driver
	assertAmount(t, "84", res.Annual)
	legal, ok := res.Line(quote.LabelLegalProtection)
	require.True(t, ok)
	assert.True(t, legal.Amount.IsZero())
}

func TestAssistanceNotOfferedForMopedsAndTractors(t *testing.T) {
	calc := newCalc(t)
	for _, v := range []quote.VehicleType{quote.VehicleMoped, quote.VehicleTractor} {
		req := request(v, 41)
		req.Coverages = &quote.Coverages{RC: true, Assistance: true, AssistancePlus: true}

		res := calc.Calculate(req)

		_, basic := res.Line(quote.LabelAssistance)
		_, plus := res.Line(quote.LabelAssistancePlus)
		assert.False(t, basic, string(v))
		assert.False(t, plus, string(v))
	}
}

func TestRCToggleIsIgnored(t *testing.T) {
	req := request(quote.VehicleCar, 41)
	req.Coverages = &quote.Coverages{RC: false}
	assertAmount(t, "79", newCalc(t).Calculate(req).Annual)

	req.Coverages = nil
	assertAmount(t, "79", newCalc(t).Calculate(req).Annual)
}

func TestUnknownEnumerations(t *testing.T) {
	calc := newCalc(t)

	res := calc.Calculate(request("hovercraft", 41))
	assertAmount(t, "79", res.Annual)
	assert.Equal(t, 1, res.Details.RC.Category)

	req := request(quote.VehicleCar, 41)
	req.VehicleRank = "7"
	res = calc.Calculate(req)
	assertAmount(t, "33", res.Annual)
	assert.Equal(t, "3+", res.Details.RC.Rank)
}

func TestRankIndependentCategoryDetails(t *testing.T) {
	req := request(quote.VehicleTrailer, 30)
	req.VehicleRank = quote.RankSecond

	res := newCalc(t).Calculate(req)

	assert.Equal(t, RankNotApplicable, res.Details.RC.Rank)
	assert.Equal(t, "CAT 5, Group 2 (25+)", res.Details.RC.Rule)
}

func TestInjectedTariff(t *testing.T) {
	rules := tariff.Default2026()
	rules.CoverageRules[tariff.CoverageFireTheftResting] = tariff.CoverageRule{Rate: tariff.Flat(d("25"))}
	calc := New(rules, WithClock(func() time.Time { return fixedNow }), WithLogger(zap.NewNop()))

	req := request(quote.VehicleCar, 41)
	req.Coverages.FireTheftResting = true

	assertAmount(t, "104", calc.Calculate(req).Annual)
	assert.Same(t, rules, calc.Rules())
}

func TestIdempotence(t *testing.T) {
	calc := newCalc(t)
	req := request(quote.VehicleCar, 30)
	req.UserStatus = quote.UserIndividual
	req.VehicleValue = dp("87654.32")
	req.Coverages = &quote.Coverages{RC: true, Omnium: true, LegalProtection: true, AssistancePlus: true}

	a := calc.Calculate(req)
	b := calc.Calculate(req)

	assert.Equal(t, a, b)
}

func sampleRequests() []*quote.Request {
	var reqs []*quote.Request
	values := []quote.Number{{}, dp("10000"), dp("12345.67"), dp("49999.99"), dp("60000"), dp("180000")}
	for _, v := range quote.VehicleTypes {
		for _, age := range []int{5, 16, 20, 27, 33, 45} {
			for _, rank := range quote.Ranks {
				for i, value := range values {
					req := request(v, age)
					req.VehicleRank = rank
					req.VehicleValue = value
					if i%2 == 1 {
						req.UserStatus = quote.UserIndividual
					}
					if i%3 == 2 {
						req.Coverages.OmniumType = quote.OmniumMini
						req.RegistrationStatus = quote.RegistrationStorage
					}
					reqs = append(reqs, req)
				}
			}
		}
	}
	return reqs
}

func TestRoundingLaw(t *testing.T) {
	calc := newCalc(t)
	for _, req := range sampleRequests() {
		req.Coverages = &quote.Coverages{RC: true, Omnium: true, LegalProtection: true, DriverProtection: true, OmniumType: req.Coverages.OmniumType}
		res := calc.Calculate(req)
		assert.True(t, res.Monthly.Equal(res.Annual.Div(decimal.NewFromInt(12)).Round(2)))
		assert.True(t, res.Annual.Equal(res.Annual.Round(2)))
	}
}

func TestMonotonicity(t *testing.T) {
	calc := newCalc(t)
	toggles := map[string]func(*quote.Coverages){
		"omnium":           func(c *quote.Coverages) { c.Omnium = true },
		"assistance":       func(c *quote.Coverages) { c.Assistance = true },
		"assistancePlus":   func(c *quote.Coverages) { c.AssistancePlus = true },
		"legalProtection":  func(c *quote.Coverages) { c.LegalProtection = true },
		"driverProtection": func(c *quote.Coverages) { c.DriverProtection = true },
		"fireTheftResting": func(c *quote.Coverages) { c.FireTheftResting = true },
	}
	for _, req := range sampleRequests() {
		without := calc.Calculate(req).Annual
		for name, enable := range toggles {
			with := *req
			cov := *req.Coverages
			enable(&cov)
			with.Coverages = &cov
			got := calc.Calculate(&with).Annual
			assert.True(t, got.GreaterThanOrEqual(without), "enabling %s lowered %s from %s to %s", name, req.VehicleType, without, got)
		}
	}
}

func TestCalculationIsTracedAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	calc := New(nil, WithClock(func() time.Time { return fixedNow }), WithLogger(zap.New(core)))

	calc.Calculate(request(quote.VehicleCar, 41))

	entries := logs.FilterMessage("quote calculated").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "79.00", entries[0].ContextMap()["annual"])
}
