// Package quote defines the records exchanged with the premium calculator:
// the (possibly partial) quote request assembled by the form, and the
// premium result rendered back to it.
package quote

// VehicleType is the kind of vehicle being insured
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleVan        VehicleType = "van"
	VehicleTractor    VehicleType = "tractor"
	VehicleTruck      VehicleType = "truck"
	VehicleBus        VehicleType = "bus"
	VehicleTrailer    VehicleType = "trailer"
	VehicleCaravan    VehicleType = "caravan"
	VehicleMoped      VehicleType = "moped"
)

// VehicleTypes lists every known vehicle type in form order
var VehicleTypes = []VehicleType{
	VehicleCar, VehicleMotorcycle, VehicleVan, VehicleTractor, VehicleTruck,
	VehicleBus, VehicleTrailer, VehicleCaravan, VehicleMoped,
}

// IsKnown reports whether v is one of VehicleTypes
func (v VehicleType) IsKnown() bool {
	for _, known := range VehicleTypes {
		if v == known {
			return true
		}
	}
	return false
}

// IsTwoWheeler reports whether v is priced as a two-wheeled vehicle
func (v VehicleType) IsTwoWheeler() bool {
	return v == VehicleMotorcycle || v == VehicleMoped
}

// Rank is the position of the vehicle among the policyholder's insured vehicles
type Rank string

const (
	RankFirst     Rank = "1"
	RankSecond    Rank = "2"
	RankThirdPlus Rank = "3+"
)

// Ranks lists every rank
var Ranks = []Rank{RankFirst, RankSecond, RankThirdPlus}

// Normalize maps a missing rank to RankFirst and anything unrecognised to RankThirdPlus
func (r Rank) Normalize() Rank {
	switch r {
	case "":
		return RankFirst
	case RankFirst, RankSecond, RankThirdPlus:
		return r
	default:
		return RankThirdPlus
	}
}

// IsFirst reports whether the first-vehicle rates apply
func (r Rank) IsFirst() bool {
	return r.Normalize() == RankFirst
}

// UserStatus is the policyholder's affiliation
type UserStatus string

const (
	UserClubMember UserStatus = "club_member"
	UserSupporter  UserStatus = "supporter"
	UserIndividual UserStatus = "individual"
)

// RegistrationStatus is the vehicle's current registration state
type RegistrationStatus string

const (
	RegistrationNone       RegistrationStatus = "not_registered"
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationStorage    RegistrationStatus = "storage"
)

// IsOffRoad reports whether the vehicle is currently unregistered or stored
func (s RegistrationStatus) IsOffRoad() bool {
	return s == RegistrationNone || s == RegistrationStorage
}

// OmniumType selects the comprehensive cover formula
type OmniumType string

const (
	OmniumFull OmniumType = "full"
	OmniumMini OmniumType = "mini"
)

// OrDefault returns OmniumFull for an unset type
func (t OmniumType) OrDefault() OmniumType {
	if t == OmniumMini {
		return OmniumMini
	}
	return OmniumFull
}

// Coverages holds the independent coverage toggles.
// RC is mandatory and always priced; the toggle only mirrors the form.
type Coverages struct {
	RC               bool       `json:"rc"`
	Omnium           bool       `json:"omnium"`
	OmniumType       OmniumType `json:"omniumType,omitempty"`
	Assistance       bool       `json:"assistance"`
	LegalProtection  bool       `json:"legalProtection"`
	DriverProtection bool       `json:"driverProtection"`
	FireTheftResting bool       `json:"fireTheftResting"`
	AssistancePlus   bool       `json:"assistancePlus"`
}

// Request is a quote request as assembled by the form.
//
// VehicleType and FirstRegistrationDate are required for pricing; without
// them the calculator returns an empty result. Every other field is
// optional and a missing value only makes the dependent coverage
// inapplicable.
type Request struct {
	VehicleType           VehicleType        `json:"vehicleType,omitempty"`
	FirstRegistrationDate *Date              `json:"firstRegistrationDate,omitempty"`
	VehicleRank           Rank               `json:"vehicleRank,omitempty"`
	UserStatus            UserStatus         `json:"userStatus,omitempty"`
	RegistrationStatus    RegistrationStatus `json:"registrationStatus,omitempty"`
	PowerKW               Number             `json:"powerKw"`
	VehicleValue          Number             `json:"vehicleValue"`
	Coverages             *Coverages         `json:"coverages,omitempty"`
}

// IsPriceable reports whether the required pricing fields are present
func (r *Request) IsPriceable() bool {
	if r == nil || r.VehicleType == "" {
		return false
	}
	_, ok := r.RegistrationDate()
	return ok
}

// RegistrationDate returns the first registration date. A nil or zero
// date is missing.
func (r *Request) RegistrationDate() (Date, bool) {
	if r.FirstRegistrationDate == nil || r.FirstRegistrationDate.IsZero() {
		return Date{}, false
	}
	return *r.FirstRegistrationDate, true
}

// SelectedCoverages returns the toggles, treating a missing record as RC only
func (r *Request) SelectedCoverages() Coverages {
	if r == nil || r.Coverages == nil {
		return Coverages{RC: true}
	}
	return *r.Coverages
}
