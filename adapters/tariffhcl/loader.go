// Package tariffhcl reads and writes tariff rule sets as HCL files.
package tariffhcl

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"go.uber.org/zap"

	"premium-quote/core/pricing/primitives"
	"premium-quote/core/quote"
	"premium-quote/core/tariff"
	qerrors "premium-quote/internal/errors"
	"premium-quote/internal/logging"
)

// Loader decodes tariff files into tariff.Rules
type Loader struct {
	parser *hclparse.Parser
	logger *zap.Logger
}

// NewLoader creates a tariff loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
		logger: logging.Named("tariffhcl"),
	}
}

// LoadFile reads, decodes and validates the tariff at path
func (l *Loader) LoadFile(path string) (*tariff.Rules, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, qerrors.Input("failed to read tariff file", err).WithContext("file", path)
	}
	return l.Parse(src, path)
}

// Parse decodes and validates tariff source. filename is used in diagnostics.
func (l *Loader) Parse(src []byte, filename string) (*tariff.Rules, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, qerrors.Parsing("failed to parse tariff file", diags).WithContext("file", filename)
	}

	var fs fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &fs); diags.HasErrors() {
		return nil, qerrors.Parsing("failed to decode tariff file", diags).WithContext("file", filename)
	}

	d := &decoder{}
	rules := d.rules(&fs)
	if d.diags.HasErrors() {
		return nil, qerrors.Parsing("invalid tariff values", d.diags).WithContext("file", filename)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	l.logger.Debug("tariff loaded",
		zap.String("file", filename),
		zap.String("version", rules.Version),
		zap.Int("categories", len(rules.Categories)))
	return rules, nil
}

// LoadFile loads a tariff with a fresh Loader
func LoadFile(path string) (*tariff.Rules, error) {
	return NewLoader().LoadFile(path)
}

type decoder struct {
	diags hcl.Diagnostics
}

func (d *decoder) errorf(subject *hcl.Range, summary, format string, args ...interface{}) {
	d.diags = append(d.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  subject,
	})
}

// optional evaluates an amount expression; ok is false when it is absent or invalid
func (d *decoder) optional(expr hcl.Expression, what string) (decimal.Decimal, bool) {
	if expr == nil {
		return decimal.Zero, false
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		d.diags = append(d.diags, diags...)
		return decimal.Zero, false
	}
	if val.IsNull() {
		return decimal.Zero, false
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil || !num.IsWhollyKnown() {
		d.errorf(expr.Range().Ptr(), "Invalid amount", "%s must be a number", what)
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(num.AsBigFloat().Text('f', -1))
	if err != nil {
		d.errorf(expr.Range().Ptr(), "Invalid amount", "%s: %v", what, err)
		return decimal.Zero, false
	}
	return amount, true
}

func (d *decoder) required(expr hcl.Expression, what string) decimal.Decimal {
	amount, ok := d.optional(expr, what)
	if !ok && !d.diags.HasErrors() {
		var subject *hcl.Range
		if expr != nil {
			subject = expr.Range().Ptr()
		}
		d.errorf(subject, "Missing amount", "%s is required", what)
	}
	return amount
}

// rankRate reads first/additional; a missing additional repeats first
func (d *decoder) rankRate(first, additional hcl.Expression, what string) tariff.RankRate {
	f := d.required(first, what+".first")
	if a, ok := d.optional(additional, what+".additional"); ok {
		return tariff.RankRate{First: f, Additional: a}
	}
	return tariff.Flat(f)
}

func (d *decoder) category(label, what string) tariff.Category {
	id, err := strconv.Atoi(label)
	if err != nil || id <= 0 {
		d.errorf(nil, "Invalid category", "%s: category label %q must be a positive integer", what, label)
	}
	return tariff.Category(id)
}

func (d *decoder) vehicle(name, what string) quote.VehicleType {
	v := quote.VehicleType(name)
	if !v.IsKnown() {
		d.errorf(nil, "Unknown vehicle type", "%s: %q is not a vehicle type", what, name)
	}
	return v
}

func (d *decoder) group(label, what string) tariff.AgeGroup {
	switch g := tariff.AgeGroup(label); g {
	case tariff.Group1, tariff.Group2, tariff.Group3:
		return g
	}
	d.errorf(nil, "Invalid age group", "%s: %q must be group1, group2 or group3", what, label)
	return tariff.NoGroup
}

func (d *decoder) rules(fs *fileSchema) *tariff.Rules {
	r := &tariff.Rules{
		Version:             fs.Version,
		Currency:            fs.Currency,
		DefaultCategory:     tariff.Category(fs.DefaultCategory),
		IndividualSurcharge: d.required(fs.IndividualSurcharge, "individual_surcharge"),
		VehicleCategories:   make(map[quote.VehicleType]tariff.Category, len(fs.VehicleCategories)),
		Categories:          make(map[tariff.Category]tariff.CategoryRules, len(fs.Categories)),
		CoverageRules:       make(map[tariff.Coverage]tariff.CoverageRule, len(fs.Coverages)),
	}
	if r.Currency == "" {
		r.Currency = "EUR"
	}

	for name, c := range fs.VehicleCategories {
		r.VehicleCategories[d.vehicle(name, "vehicle_categories")] = tariff.Category(c)
	}

	for _, cb := range fs.Categories {
		what := "category " + cb.ID
		id := d.category(cb.ID, what)
		if _, dup := r.Categories[id]; dup {
			d.errorf(nil, "Duplicate category", "%s is defined twice", what)
			continue
		}
		cr := tariff.CategoryRules{
			Base:            make(map[tariff.AgeGroup]tariff.RankRate, len(cb.AgeGroups)),
			RankIndependent: cb.RankIndependent,
		}
		for _, ag := range cb.AgeGroups {
			g := d.group(ag.Group, what)
			cr.Thresholds = append(cr.Thresholds, tariff.AgeThreshold{MinAge: ag.MinAge, Group: g})
			// groups priced by the power split carry no base premium
			if _, ok := d.optional(ag.First, what+"."+ag.Group+".first"); ok {
				cr.Base[g] = d.rankRate(ag.First, ag.Additional, what+"."+ag.Group)
			}
		}
		r.Categories[id] = cr
	}

	if ps := fs.PowerSplit; ps != nil {
		split := &tariff.PowerSplit{
			Category:    tariff.Category(ps.Category),
			Group:       d.group(ps.Group, "power_split"),
			ThresholdKW: d.required(ps.ThresholdKW, "power_split.threshold_kw"),
			AtOrBelow:   d.required(ps.AtOrBelow, "power_split.at_or_below"),
			Above:       d.required(ps.Above, "power_split.above"),
		}
		for _, v := range ps.FixedTypes {
			split.FixedTypes = append(split.FixedTypes, d.vehicle(v, "power_split.fixed_types"))
		}
		if len(split.FixedTypes) > 0 {
			split.Fixed = d.required(ps.Fixed, "power_split.fixed")
		}
		r.PowerSplit = split
	}

	for _, cb := range fs.Coverages {
		what := "coverage " + cb.Name
		cov := tariff.Coverage(cb.Name)
		if !knownCoverage(cov) {
			d.errorf(nil, "Unknown coverage", "%q is not an optional coverage", cb.Name)
			continue
		}
		rule := tariff.CoverageRule{Rate: d.rankRate(cb.First, cb.Additional, what)}
		for _, c := range cb.Excluded {
			rule.Excluded = append(rule.Excluded, tariff.Category(c))
		}
		if len(cb.ByCategory) > 0 {
			rule.ByCategory = make(map[tariff.Category]tariff.RankRate, len(cb.ByCategory))
			for _, rb := range cb.ByCategory {
				rule.ByCategory[d.category(rb.Key, what)] = d.rankRate(rb.First, rb.Additional, what+".category_rate "+rb.Key)
			}
		}
		if len(cb.ByVehicle) > 0 {
			rule.ByVehicle = make(map[quote.VehicleType]tariff.RankRate, len(cb.ByVehicle))
			for _, rb := range cb.ByVehicle {
				rule.ByVehicle[d.vehicle(rb.Key, what)] = d.rankRate(rb.First, rb.Additional, what+".vehicle_rate "+rb.Key)
			}
		}
		r.CoverageRules[cov] = rule
	}

	r.Omnium = d.omnium(&fs.Omnium)
	return r
}

func (d *decoder) omnium(ob *omniumBlock) tariff.OmniumRules {
	o := tariff.OmniumRules{
		MinPremium:           d.required(ob.MinPremium, "omnium.min_premium"),
		MinPremiumTwoWheeler: d.required(ob.MinPremiumTwoWheeler, "omnium.min_premium_two_wheeler"),
		Mini: tariff.MiniOmnium{
			Storage: d.band(ob.Mini.Storage, "omnium.mini.storage"),
		},
		Full: tariff.FullOmnium{
			TableCeiling: d.required(ob.Full.TableCeiling, "omnium.full.table_ceiling"),
		},
	}
	for _, b := range ob.Mini.Bands {
		o.Mini.Bands = append(o.Mini.Bands, d.band(b, "omnium.mini.band"))
	}
	for _, row := range ob.Full.Rows {
		o.Full.Table = append(o.Full.Table, tariff.TableTier{
			Limit: d.required(row.Limit, "omnium.full.row.limit"),
			Premiums: map[quote.Rank]decimal.Decimal{
				quote.RankFirst:     d.required(row.First, "omnium.full.row.first"),
				quote.RankSecond:    d.required(row.Second, "omnium.full.row.second"),
				quote.RankThirdPlus: d.required(row.ThirdPlus, "omnium.full.row.third_plus"),
			},
		})
	}
	for _, pb := range ob.Full.Bands {
		band := tariff.PercentBand{MinAge: pb.MinAge}
		for _, t := range pb.Tiers {
			band.Tiers = append(band.Tiers, primitives.PricingTier{
				UpTo:    d.required(t.UpTo, "omnium.full.band.tier.up_to"),
				Percent: d.required(t.Percent, "omnium.full.band.tier.percent"),
			})
		}
		o.Full.Bands = append(o.Full.Bands, band)
	}
	return o
}

func (d *decoder) band(b bandBlock, what string) tariff.AgeBand {
	return tariff.AgeBand{MinAge: b.MinAge, Percent: d.required(b.Percent, what+".percent")}
}

func knownCoverage(c tariff.Coverage) bool {
	for _, k := range tariff.Coverages {
		if k == c {
			return true
		}
	}
	return false
}
