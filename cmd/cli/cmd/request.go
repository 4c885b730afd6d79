package cmd

import (
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"premium-quote/core/quote"
	qerrors "premium-quote/internal/errors"
)

// requestFlags lets a request be given, or patched, on the command line
type requestFlags struct {
	vehicle      string
	registered   string
	rank         string
	status       string
	registration string
	power        string
	value        string
	omniumType   string

	omnium         bool
	assistance     bool
	assistancePlus bool
	legal          bool
	driver         bool
	fireTheft      bool
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.vehicle, "vehicle", "", "vehicle type (car, motorcycle, van, tractor, truck, bus, trailer, caravan, moped)")
	fs.StringVar(&f.registered, "registered", "", "first registration date (YYYY-MM-DD)")
	fs.StringVar(&f.rank, "rank", "", "vehicle rank among the insured vehicles (1, 2, 3+)")
	fs.StringVar(&f.status, "status", "", "policyholder status (club_member, supporter, individual)")
	fs.StringVar(&f.registration, "registration", "", "registration status (registered, not_registered, storage)")
	fs.StringVar(&f.power, "power", "", "engine power in kW")
	fs.StringVar(&f.value, "value", "", "declared vehicle value")
	fs.StringVar(&f.omniumType, "omnium-type", "", "omnium formula (full, mini)")
	fs.BoolVar(&f.omnium, "omnium", false, "add Omnium")
	fs.BoolVar(&f.assistance, "assistance", false, "add assistance")
	fs.BoolVar(&f.assistancePlus, "assistance-plus", false, "add assistance plus")
	fs.BoolVar(&f.legal, "legal-protection", false, "add legal protection")
	fs.BoolVar(&f.driver, "driver-protection", false, "add driver protection")
	fs.BoolVar(&f.fireTheft, "fire-theft", false, "add fire/theft while resting")
}

// apply overwrites the fields whose flags were set
func (f *requestFlags) apply(cmd *cobra.Command, req *quote.Request) error {
	changed := cmd.Flags().Changed

	if changed("vehicle") {
		req.VehicleType = quote.VehicleType(f.vehicle)
	}
	if changed("registered") {
		d, err := quote.ParseDate(f.registered)
		if err != nil {
			return qerrors.Input("invalid --registered", err)
		}
		req.FirstRegistrationDate = &d
	}
	if changed("rank") {
		req.VehicleRank = quote.Rank(f.rank)
	}
	if changed("status") {
		req.UserStatus = quote.UserStatus(f.status)
	}
	if changed("registration") {
		req.RegistrationStatus = quote.RegistrationStatus(f.registration)
	}
	if changed("power") {
		p, err := decimal.NewFromString(f.power)
		if err != nil {
			return qerrors.Input("invalid --power", err)
		}
		req.PowerKW = quote.NewNumber(p)
	}
	if changed("value") {
		v, err := decimal.NewFromString(f.value)
		if err != nil {
			return qerrors.Input("invalid --value", err)
		}
		req.VehicleValue = quote.NewNumber(v)
	}

	toggles := []struct {
		flag  string
		value bool
		set   func(c *quote.Coverages, v bool)
	}{
		{"omnium", f.omnium, func(c *quote.Coverages, v bool) { c.Omnium = v }},
		{"assistance", f.assistance, func(c *quote.Coverages, v bool) { c.Assistance = v }},
		{"assistance-plus", f.assistancePlus, func(c *quote.Coverages, v bool) { c.AssistancePlus = v }},
		{"legal-protection", f.legal, func(c *quote.Coverages, v bool) { c.LegalProtection = v }},
		{"driver-protection", f.driver, func(c *quote.Coverages, v bool) { c.DriverProtection = v }},
		{"fire-theft", f.fireTheft, func(c *quote.Coverages, v bool) { c.FireTheftResting = v }},
	}
	for _, t := range toggles {
		if !changed(t.flag) {
			continue
		}
		ensureCoverages(req)
		t.set(req.Coverages, t.value)
	}
	if changed("omnium-type") {
		ensureCoverages(req)
		req.Coverages.OmniumType = quote.OmniumType(f.omniumType)
	}
	return nil
}

func ensureCoverages(req *quote.Request) {
	if req.Coverages == nil {
		req.Coverages = &quote.Coverages{RC: true}
	}
}

// readRequest decodes a JSON request from path, "-" for stdin, or returns
// an empty request when path is empty
func readRequest(path string, stdin io.Reader) (*quote.Request, error) {
	req := &quote.Request{}
	if path == "" {
		return req, nil
	}

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, qerrors.Input("failed to open request", err).WithContext("file", path)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(req); err != nil {
		return nil, qerrors.Parsing("failed to decode request", err).WithContext("file", path)
	}
	return req, nil
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
