package tariff

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"premium-quote/core/pricing/primitives"
	"premium-quote/core/quote"
	qerrors "premium-quote/internal/errors"
)

// ValidationRule checks one aspect of a tariff
type ValidationRule func(*Rules) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateCategories,
		validateThresholds,
		validateBaseRates,
		validatePowerSplit,
		validateCoverages,
		validateOmniumTable,
		validateOmniumBands,
	}
}

// Check runs rules against the tariff and returns every violation
func (r *Rules) Check(rules []ValidationRule) []error {
	var errs []error
	for _, rule := range rules {
		if err := rule(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Validate runs the default rules and folds violations into a single tariff error
func (r *Rules) Validate() error {
	errs := r.Check(DefaultValidationRules())
	if len(errs) == 0 {
		return nil
	}
	return qerrors.Tariff("tariff %s has %d validation errors", r.Version, len(errs)).
		WithContext("errors", errs)
}

// CategoryIDs returns the configured categories in ascending order
func (r *Rules) CategoryIDs() []Category {
	ids := make([]Category, 0, len(r.Categories))
	for c := range r.Categories {
		ids = append(ids, c)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func validateCategories(r *Rules) error {
	if _, ok := r.Categories[r.DefaultCategory]; !ok {
		return fmt.Errorf("default category %d is not defined", r.DefaultCategory)
	}
	for v, c := range r.VehicleCategories {
		if _, ok := r.Categories[c]; !ok {
			return fmt.Errorf("vehicle type %s maps to undefined category %d", v, c)
		}
	}
	return nil
}

func validateThresholds(r *Rules) error {
	for _, c := range r.CategoryIDs() {
		th := r.Categories[c].Thresholds
		if len(th) == 0 {
			return fmt.Errorf("category %d has no age groups", c)
		}
		for i := 1; i < len(th); i++ {
			if th[i].MinAge >= th[i-1].MinAge {
				return fmt.Errorf("category %d: age thresholds must be strictly descending", c)
			}
		}
	}
	return nil
}

func validateBaseRates(r *Rules) error {
	for _, c := range r.CategoryIDs() {
		cr := r.Categories[c]
		for _, th := range cr.Thresholds {
			base, ok := cr.Base[th.Group]
			if !ok {
				if r.PowerSplit.Applies(c, th.Group) {
					continue
				}
				return fmt.Errorf("category %d: %s has no base premium", c, th.Group)
			}
			if base.First.IsNegative() || base.Additional.IsNegative() {
				return fmt.Errorf("category %d: %s has a negative base premium", c, th.Group)
			}
		}
	}
	return nil
}

func validatePowerSplit(r *Rules) error {
	p := r.PowerSplit
	if p == nil {
		return nil
	}
	if _, ok := r.Categories[p.Category]; !ok {
		return fmt.Errorf("power split targets undefined category %d", p.Category)
	}
	if !p.ThresholdKW.IsPositive() {
		return fmt.Errorf("power split threshold must be positive")
	}
	if p.Above.LessThan(p.AtOrBelow) {
		return fmt.Errorf("power split: premium above %s kW is lower than at or below", p.ThresholdKW)
	}
	return nil
}

func validateCoverages(r *Rules) error {
	for _, cov := range Coverages {
		rule, ok := r.CoverageRules[cov]
		if !ok {
			return fmt.Errorf("coverage %s has no price", cov)
		}
		rates := []RankRate{rule.Rate}
		for _, rr := range rule.ByCategory {
			rates = append(rates, rr)
		}
		for _, rr := range rule.ByVehicle {
			rates = append(rates, rr)
		}
		for _, rr := range rates {
			if rr.First.IsNegative() || rr.Additional.IsNegative() {
				return fmt.Errorf("coverage %s has a negative price", cov)
			}
		}
	}
	return nil
}

func validateOmniumTable(r *Rules) error {
	full := r.Omnium.Full
	if len(full.Table) == 0 {
		return fmt.Errorf("full omnium table is empty")
	}
	limits := full.TableLimits()
	if !primitives.Ascending(limits) {
		return fmt.Errorf("full omnium table limits must be strictly ascending")
	}
	if !limits[len(limits)-1].Equal(full.TableCeiling) {
		return fmt.Errorf("full omnium table must end at the ceiling %s", full.TableCeiling)
	}
	for _, tier := range full.Table {
		for _, rank := range quote.Ranks {
			if _, ok := tier.Premiums[rank]; !ok {
				return fmt.Errorf("full omnium tier %s has no premium for rank %s", tier.Limit, rank)
			}
		}
	}
	return nil
}

func validateOmniumBands(r *Rules) error {
	o := r.Omnium
	if o.MinPremium.IsNegative() || o.MinPremiumTwoWheeler.IsNegative() {
		return fmt.Errorf("omnium minimum premium is negative")
	}
	if len(o.Mini.Bands) == 0 {
		return fmt.Errorf("mini omnium has no age bands")
	}
	for i := 1; i < len(o.Mini.Bands); i++ {
		if o.Mini.Bands[i].MinAge >= o.Mini.Bands[i-1].MinAge {
			return fmt.Errorf("mini omnium bands must be strictly descending by age")
		}
	}
	if len(o.Full.Bands) == 0 {
		return fmt.Errorf("full omnium has no percentage bands")
	}
	for i, band := range o.Full.Bands {
		if i > 0 && band.MinAge >= o.Full.Bands[i-1].MinAge {
			return fmt.Errorf("full omnium bands must be strictly descending by age")
		}
		if len(band.Tiers) == 0 {
			return fmt.Errorf("full omnium band %d+ has no tiers", band.MinAge)
		}
		limits := make([]decimal.Decimal, len(band.Tiers))
		for j, t := range band.Tiers {
			limits[j] = t.UpTo
		}
		if !primitives.Ascending(limits) {
			return fmt.Errorf("full omnium band %d+: tier limits must be strictly ascending", band.MinAge)
		}
		if !limits[0].GreaterThan(o.Full.TableCeiling) {
			return fmt.Errorf("full omnium band %d+ starts below the table ceiling", band.MinAge)
		}
	}
	return nil
}
