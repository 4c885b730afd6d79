package premium

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"premium-quote/core/quote"
	"premium-quote/core/tariff"
)

// RankNotApplicable marks RC details of rank-independent categories
const RankNotApplicable = "not_applicable"

type rcRating struct {
	amount   decimal.Decimal
	tooYoung bool
	details  *quote.RCDetails
}

func (c *Calculator) rateRC(req *quote.Request, category tariff.Category, age int) rcRating {
	rank := req.VehicleRank.Normalize()
	cr := c.rules.Categories[category]
	group := c.rules.AgeGroup(age, category)

	details := &quote.RCDetails{
		Category:   int(category),
		AgeGroup:   string(group),
		VehicleAge: age,
		Rank:       string(rank),
		Base:       decimal.Zero,
	}
	if cr.RankIndependent {
		details.Rank = RankNotApplicable
	}

	if group == tariff.NoGroup {
		c.logger.Debug("vehicle too young for RC",
			zap.Int("category", int(category)), zap.Int("vehicle_age", age))
		return rcRating{amount: decimal.Zero, tooYoung: true, details: details}
	}

	details.Rule = c.ruleName(category, group)

	var amount decimal.Decimal
	if split := c.rules.PowerSplit; split.Applies(category, group) {
		amount = c.ratePowerSplit(split, req, details)
	} else {
		amount = cr.Base[group].For(rank.IsFirst() || cr.RankIndependent)
	}
	details.Base = amount

	c.logger.Debug("rated RC",
		zap.String("rule", details.Rule),
		zap.String("rank", details.Rank),
		zap.String("base", amount.String()),
	)
	return rcRating{amount: amount, details: details}
}

func (c *Calculator) ratePowerSplit(split *tariff.PowerSplit, req *quote.Request, details *quote.RCDetails) decimal.Decimal {
	if split.IsFixed(req.VehicleType) {
		details.Condition = cases.Title(language.English).String(string(req.VehicleType))
		return split.Fixed
	}
	power := req.PowerKW.Or(decimal.Zero)
	details.Power = &power
	if power.LessThanOrEqual(split.ThresholdKW) {
		details.Condition = fmt.Sprintf("Power <= %s kW", split.ThresholdKW)
		return split.AtOrBelow
	}
	details.Condition = fmt.Sprintf("Power > %s kW", split.ThresholdKW)
	return split.Above
}

// ruleName renders e.g. "CAT 1, Group 2 (25-39)"
func (c *Calculator) ruleName(category tariff.Category, group tariff.AgeGroup) string {
	label := strings.TrimPrefix(string(group), "group")
	return fmt.Sprintf("CAT %d, Group %s (%s)", category, label, c.rules.GroupRange(category, group))
}
