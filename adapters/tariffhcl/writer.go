package tariffhcl

import (
	"sort"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"premium-quote/core/quote"
	"premium-quote/core/tariff"
)

// Encode renders rules in the format read by Loader.Parse
func Encode(r *tariff.Rules) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("version", cty.StringVal(r.Version))
	root.SetAttributeValue("currency", cty.StringVal(r.Currency))
	root.SetAttributeValue("default_category", cty.NumberIntVal(int64(r.DefaultCategory)))
	root.SetAttributeValue("individual_surcharge", number(r.IndividualSurcharge))

	vehicles := make(map[string]cty.Value, len(r.VehicleCategories))
	for v, c := range r.VehicleCategories {
		vehicles[string(v)] = cty.NumberIntVal(int64(c))
	}
	root.SetAttributeValue("vehicle_categories", cty.ObjectVal(vehicles))

	for _, c := range r.CategoryIDs() {
		cr := r.Categories[c]
		root.AppendNewline()
		body := root.AppendNewBlock("category", []string{strconv.Itoa(int(c))}).Body()
		if cr.RankIndependent {
			body.SetAttributeValue("rank_independent", cty.True)
		}
		for _, th := range cr.Thresholds {
			gb := body.AppendNewBlock("age_group", []string{string(th.Group)}).Body()
			gb.SetAttributeValue("min_age", cty.NumberIntVal(int64(th.MinAge)))
			if base, ok := cr.Base[th.Group]; ok {
				setRankRate(gb, base)
			}
		}
	}

	if ps := r.PowerSplit; ps != nil {
		root.AppendNewline()
		body := root.AppendNewBlock("power_split", nil).Body()
		body.SetAttributeValue("category", cty.NumberIntVal(int64(ps.Category)))
		body.SetAttributeValue("group", cty.StringVal(string(ps.Group)))
		if len(ps.FixedTypes) > 0 {
			types := make([]cty.Value, len(ps.FixedTypes))
			for i, v := range ps.FixedTypes {
				types[i] = cty.StringVal(string(v))
			}
			body.SetAttributeValue("fixed_types", cty.TupleVal(types))
			body.SetAttributeValue("fixed", number(ps.Fixed))
		}
		body.SetAttributeValue("threshold_kw", number(ps.ThresholdKW))
		body.SetAttributeValue("at_or_below", number(ps.AtOrBelow))
		body.SetAttributeValue("above", number(ps.Above))
	}

	for _, cov := range tariff.Coverages {
		rule, ok := r.CoverageRules[cov]
		if !ok {
			continue
		}
		root.AppendNewline()
		body := root.AppendNewBlock("coverage", []string{string(cov)}).Body()
		setRankRate(body, rule.Rate)
		if len(rule.Excluded) > 0 {
			cats := make([]cty.Value, len(rule.Excluded))
			for i, c := range rule.Excluded {
				cats[i] = cty.NumberIntVal(int64(c))
			}
			body.SetAttributeValue("excluded_categories", cty.TupleVal(cats))
		}
		cats := make([]int, 0, len(rule.ByCategory))
		for c := range rule.ByCategory {
			cats = append(cats, int(c))
		}
		sort.Ints(cats)
		for _, c := range cats {
			setRankRate(body.AppendNewBlock("category_rate", []string{strconv.Itoa(c)}).Body(), rule.ByCategory[tariff.Category(c)])
		}
		vehicles := make([]string, 0, len(rule.ByVehicle))
		for v := range rule.ByVehicle {
			vehicles = append(vehicles, string(v))
		}
		sort.Strings(vehicles)
		for _, v := range vehicles {
			setRankRate(body.AppendNewBlock("vehicle_rate", []string{v}).Body(), rule.ByVehicle[quote.VehicleType(v)])
		}
	}

	root.AppendNewline()
	writeOmnium(root.AppendNewBlock("omnium", nil).Body(), r.Omnium)

	return f.Bytes()
}

func writeOmnium(body *hclwrite.Body, o tariff.OmniumRules) {
	body.SetAttributeValue("min_premium", number(o.MinPremium))
	body.SetAttributeValue("min_premium_two_wheeler", number(o.MinPremiumTwoWheeler))

	mini := body.AppendNewBlock("mini", nil).Body()
	setBand(mini.AppendNewBlock("storage", nil).Body(), o.Mini.Storage)
	for _, b := range o.Mini.Bands {
		setBand(mini.AppendNewBlock("band", nil).Body(), b)
	}

	full := body.AppendNewBlock("full", nil).Body()
	full.SetAttributeValue("table_ceiling", number(o.Full.TableCeiling))
	for _, tier := range o.Full.Table {
		row := full.AppendNewBlock("row", nil).Body()
		row.SetAttributeValue("limit", number(tier.Limit))
		row.SetAttributeValue("first", number(tier.Premiums[quote.RankFirst]))
		row.SetAttributeValue("second", number(tier.Premiums[quote.RankSecond]))
		row.SetAttributeValue("third_plus", number(tier.Premiums[quote.RankThirdPlus]))
	}
	for _, band := range o.Full.Bands {
		bb := full.AppendNewBlock("band", nil).Body()
		bb.SetAttributeValue("min_age", cty.NumberIntVal(int64(band.MinAge)))
		for _, t := range band.Tiers {
			tb := bb.AppendNewBlock("tier", nil).Body()
			tb.SetAttributeValue("up_to", number(t.UpTo))
			tb.SetAttributeValue("percent", number(t.Percent))
		}
	}
}

func setRankRate(body *hclwrite.Body, rate tariff.RankRate) {
	body.SetAttributeValue("first", number(rate.First))
	if !rate.Additional.Equal(rate.First) {
		body.SetAttributeValue("additional", number(rate.Additional))
	}
}

func setBand(body *hclwrite.Body, b tariff.AgeBand) {
	body.SetAttributeValue("min_age", cty.NumberIntVal(int64(b.MinAge)))
	body.SetAttributeValue("percent", number(b.Percent))
}

// number goes through the decimal string so 0.58 is written as 0.58
func number(d decimal.Decimal) cty.Value {
	return cty.MustParseNumberVal(d.String())
}
