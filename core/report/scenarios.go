// Package report prices a fixed scenario set against a tariff and renders
// a markdown verification report together with the tariff rule table.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"premium-quote/core/quote"
)

// Scenario is a named request with its expected annual premium
type Scenario struct {
	Name     string
	Request  *quote.Request
	Expected *decimal.Decimal
}

type scenarioSpec struct {
	name      string
	vehicle   quote.VehicleType
	age       int
	rank      quote.Rank
	status    quote.UserStatus
	powerKW   int64
	value     int64
	coverages quote.Coverages
	expected  int64
}

var defaultScenarios = []scenarioSpec{
	{name: "RC: Car (40+), 1st vehicle", vehicle: quote.VehicleCar, age: 41, expected: 79},
	{name: "RC: Car (25-39), 1st vehicle", vehicle: quote.VehicleCar, age: 30, expected: 119},
	{name: "RC: Car (15-24), <= 140 kW", vehicle: quote.VehicleCar, age: 20, powerKW: 100, expected: 214},
	{name: "RC: Car (15-24), > 140 kW", vehicle: quote.VehicleCar, age: 20, powerKW: 150, expected: 264},
	{name: "RC: Motorcycle (15-24)", vehicle: quote.VehicleMotorcycle, age: 20, expected: 167},
	{name: "RC: Truck (40+)", vehicle: quote.VehicleTruck, age: 41, expected: 94},
	{name: "RC: Moped (15+)", vehicle: quote.VehicleMoped, age: 16, expected: 73},
	{name: "RC: Trailer (25+)", vehicle: quote.VehicleTrailer, age: 26, expected: 25},
	{name: "Surcharge: Individual, 1st vehicle", vehicle: quote.VehicleCar, age: 41, status: quote.UserIndividual, expected: 129},
	{name: "Surcharge: Individual, 2nd vehicle", vehicle: quote.VehicleCar, age: 41, rank: quote.RankSecond, status: quote.UserIndividual, expected: 33},
	{name: "Coverage: Assistance plus", vehicle: quote.VehicleCar, age: 41, coverages: quote.Coverages{AssistancePlus: true}, expected: 145},
	{name: "Coverage: Legal protection (car)", vehicle: quote.VehicleCar, age: 41, coverages: quote.Coverages{LegalProtection: true}, expected: 96},
	{name: "Coverage: Driver protection (car)", vehicle: quote.VehicleCar, age: 41, coverages: quote.Coverages{DriverProtection: true}, expected: 88},
	{name: "Omnium: Mini (25+), 10000, minimum premium", vehicle: quote.VehicleCar, age: 30, value: 10000,
		coverages: quote.Coverages{Omnium: true, OmniumType: quote.OmniumMini}, expected: 294},
	{name: "Omnium: Full (table), 20000, rank 1", vehicle: quote.VehicleCar, age: 41, value: 20000,
		coverages: quote.Coverages{Omnium: true, OmniumType: quote.OmniumFull}, expected: 309},
	{name: "Omnium: Full (percentage), 60000, 25+", vehicle: quote.VehicleCar, age: 26, value: 60000,
		coverages: quote.Coverages{Omnium: true, OmniumType: quote.OmniumFull}, expected: 827},
}

// DefaultScenarios builds the verification scenarios with registration
// dates relative to now. Expected amounts hold for the 2026 tariff.
func DefaultScenarios(now time.Time) []Scenario {
	out := make([]Scenario, 0, len(defaultScenarios))
	for _, s := range defaultScenarios {
		date := quote.YearsBefore(now, s.age)
		cov := s.coverages
		cov.RC = true

		req := &quote.Request{
			VehicleType:           s.vehicle,
			FirstRegistrationDate: &date,
			VehicleRank:           s.rank.Normalize(),
			UserStatus:            s.status,
			Coverages:             &cov,
		}
		if req.UserStatus == "" {
			req.UserStatus = quote.UserClubMember
		}
		if s.powerKW > 0 {
			req.PowerKW = quote.NewNumber(decimal.NewFromInt(s.powerKW))
		}
		if s.value > 0 {
			req.VehicleValue = quote.NewNumber(decimal.NewFromInt(s.value))
		}
		expected := decimal.NewFromInt(s.expected)
		out = append(out, Scenario{Name: s.name, Request: req, Expected: &expected})
	}
	return out
}
