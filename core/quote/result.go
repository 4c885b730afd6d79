package quote

import "github.com/shopspring/decimal"

// Breakdown label keys. The calculator emits these language-neutral keys;
// the localization layer turns them into text.
const (
	LabelRC                  = "coverages.rc.label"
	LabelIndividualSurcharge = "coverages.surcharge.individual.label"
	LabelAssistance          = "coverages.assistance.label"
	LabelAssistancePlus      = "coverages.assistancePlus.label"
	LabelLegalProtection     = "coverages.legalProtection.label"
	LabelDriverProtection    = "coverages.driverProtection.label"
	LabelFireTheftResting    = "coverages.fireTheftResting.label"
	LabelOmniumFull          = "coverages.omniumType.full"
	LabelOmniumMini          = "coverages.omniumType.mini"
)

// Advisory note keys
const (
	NoteIncompleteRequest         = "notes.request.incomplete"
	NoteRCTooYoung                = "notes.rc.tooYoung"
	NoteOmniumValueMissing        = "notes.omnium.valueMissing"
	NoteOmniumTooYoung            = "notes.omnium.tooYoung"
	NoteOmniumAboveCeiling        = "notes.omnium.aboveCeiling"
	NoteOmniumStorageVerification = "notes.omnium.storageVerification"
)

// LineItem is one entry of the premium breakdown. Negative amounts are discounts.
type LineItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Result is the priced quote
type Result struct {
	// Annual is the yearly premium, rounded to cents
	Annual decimal.Decimal `json:"annual"`

	// Monthly is Annual / 12, rounded to cents
	Monthly decimal.Decimal `json:"monthly"`

	// Breakdown lists the applied items in evaluation order
	Breakdown []LineItem `json:"breakdown"`

	// Notes holds advisory note keys
	Notes []string `json:"notes"`

	// Details is the audit trail of the rule facts used
	Details Details `json:"details"`
}

// Empty returns a zero-amount result carrying the given notes
func Empty(notes ...string) Result {
	if notes == nil {
		notes = []string{}
	}
	return Result{
		Annual:    decimal.Zero,
		Monthly:   decimal.Zero,
		Breakdown: []LineItem{},
		Notes:     notes,
	}
}

// HasNote reports whether key is among the result notes
func (r Result) HasNote(key string) bool {
	for _, n := range r.Notes {
		if n == key {
			return true
		}
	}
	return false
}

// Line returns the breakdown item with the given label
func (r Result) Line(label string) (LineItem, bool) {
	for _, item := range r.Breakdown {
		if item.Label == label {
			return item, true
		}
	}
	return LineItem{}, false
}

// Details explains how the premium was reached
type Details struct {
	RC     *RCDetails     `json:"rc,omitempty"`
	Omnium *OmniumDetails `json:"omnium,omitempty"`
}

// RCDetails records the civil-liability rating facts
type RCDetails struct {
	Category   int              `json:"category"`
	AgeGroup   string           `json:"ageGroup,omitempty"`
	VehicleAge int              `json:"vehicleAge"`
	Rank       string           `json:"rank"`
	Rule       string           `json:"rule,omitempty"`
	Base       decimal.Decimal  `json:"base"`
	Condition  string           `json:"condition,omitempty"`
	Power      *decimal.Decimal `json:"power,omitempty"`
}

// OmniumBranch names the formula family used for Omnium
type OmniumBranch string

const (
	OmniumBranchTable      OmniumBranch = "table"
	OmniumBranchPercentage OmniumBranch = "percentage"
)

// OmniumDetails records how the Omnium charge was derived
type OmniumDetails struct {
	Type              OmniumType       `json:"type"`
	Branch            OmniumBranch     `json:"branch,omitempty"`
	Rule              string           `json:"rule,omitempty"`
	TierLimit         *decimal.Decimal `json:"tierLimit,omitempty"`
	RatePercent       *decimal.Decimal `json:"ratePercent,omitempty"`
	Value             decimal.Decimal  `json:"value"`
	Computed          decimal.Decimal  `json:"computed"`
	MinPremium        decimal.Decimal  `json:"minPremium"`
	MinPremiumApplied bool             `json:"minPremiumApplied"`
	Amount            decimal.Decimal  `json:"amount"`
}
