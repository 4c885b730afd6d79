package premium

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"premium-quote/core/pricing/primitives"
	"premium-quote/core/quote"
)

type omniumRating struct {
	item    *quote.LineItem
	notes   []string
	details *quote.OmniumDetails
}

// rateOmnium prices comprehensive cover. A missing value, or a vehicle too
// young for the percentage bands it needs, drops the line and leaves a
// note instead.
func (c *Calculator) rateOmnium(req *quote.Request, sel quote.Coverages, age int) omniumRating {
	var out omniumRating
	if !sel.Omnium {
		return out
	}

	if req.RegistrationStatus.IsOffRoad() {
		out.notes = append(out.notes, quote.NoteOmniumStorageVerification)
	}

	if !req.VehicleValue.Valid || !req.VehicleValue.IsPositive() {
		out.notes = append(out.notes, quote.NoteOmniumValueMissing)
		return out
	}

	value := req.VehicleValue.Decimal
	typ := sel.OmniumType.OrDefault()
	details := &quote.OmniumDetails{
		Type:       typ,
		Value:      value,
		MinPremium: c.rules.Omnium.Floor(req.VehicleType),
	}

	var ok bool
	if typ == quote.OmniumMini {
		ok = c.rateMini(req, age, details)
	} else {
		ok = c.rateFull(req, age, details, &out)
	}
	if !ok {
		out.notes = append(out.notes, quote.NoteOmniumTooYoung)
		return out
	}

	label := quote.LabelOmniumFull
	if typ == quote.OmniumMini {
		label = quote.LabelOmniumMini
	}
	item := line(label, details.Amount)
	out.item = &item
	out.details = details

	c.logger.Debug("rated omnium",
		zap.String("type", string(typ)),
		zap.String("branch", string(details.Branch)),
		zap.String("rule", details.Rule),
		zap.String("computed", details.Computed.String()),
		zap.Bool("min_premium_applied", details.MinPremiumApplied),
		zap.String("amount", details.Amount.String()),
	)
	return out
}

// rateMini applies the value percentage of the vehicle's band, floored
func (c *Calculator) rateMini(req *quote.Request, age int, d *quote.OmniumDetails) bool {
	mini := c.rules.Omnium.Mini

	var percent decimal.Decimal
	switch band, found := mini.Band(age); {
	case req.RegistrationStatus == quote.RegistrationStorage && age >= mini.Storage.MinAge:
		percent = mini.Storage.Percent
		d.Rule = "Mini, storage"
	case found:
		percent = band.Percent
		d.Rule = fmt.Sprintf("Mini, age %d+", band.MinAge)
	default:
		return false
	}

	d.Branch = quote.OmniumBranchPercentage
	d.RatePercent = &percent
	d.Computed = primitives.PercentOf(d.Value, percent)
	d.Amount, d.MinPremiumApplied = primitives.Floor(d.Computed, d.MinPremium)
	return true
}

// rateFull uses the flat table up to the ceiling and the age-banded
// percentage schedule above it. The table depends on value and rank only.
// Only the percentage branch is floored.
func (c *Calculator) rateFull(req *quote.Request, age int, d *quote.OmniumDetails, out *omniumRating) bool {
	full := c.rules.Omnium.Full

	if len(full.Table) > 0 && d.Value.LessThanOrEqual(full.TableCeiling) {
		idx, _ := primitives.TierIndex(d.Value, full.TableLimits())
		tier := full.Table[idx]
		rank := req.VehicleRank.Normalize()
		limit := tier.Limit

		d.Branch = quote.OmniumBranchTable
		d.TierLimit = &limit
		d.Rule = fmt.Sprintf("Full, value <= %s, rank %s", limit, rank)
		d.Computed = tier.Premiums[rank]
		d.Amount = d.Computed
		return true
	}

	band, found := full.Band(age)
	if !found {
		return false
	}
	tier, within := primitives.SelectTier(d.Value, band.Tiers)
	if !within {
		out.notes = append(out.notes, quote.NoteOmniumAboveCeiling)
	}
	limit := tier.UpTo
	percent := tier.Percent

	d.Branch = quote.OmniumBranchPercentage
	d.TierLimit = &limit
	d.RatePercent = &percent
	d.Rule = fmt.Sprintf("Full, age %d+, value <= %s", band.MinAge, limit)
	d.Computed = primitives.PercentOf(d.Value, percent)
	d.Amount, d.MinPremiumApplied = primitives.Floor(d.Computed, d.MinPremium)
	return true
}
