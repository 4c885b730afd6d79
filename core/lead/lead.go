// Package lead builds the record sent to the sales webhook once a quote has
// been priced: the request, the estimated premium and the contact details.
package lead

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"premium-quote/core/quote"
	qerrors "premium-quote/internal/errors"
)

// ContractType tells whether the lead is a new policy or a change to an existing one
type ContractType string

const (
	ContractNew    ContractType = "new"
	ContractChange ContractType = "change"
)

// Contact identifies the person asking for the offer
type Contact struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

// Vehicle carries the descriptive vehicle fields that do not affect the price
type Vehicle struct {
	Brand              string `json:"brand,omitempty"`
	Model              string `json:"model,omitempty"`
	ChassisNumber      string `json:"chassisNumber,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
}

// Lead is the submission payload. Request, Vehicle and Contact are embedded
// so the wire form is one flat object plus estimatedPremium.
type Lead struct {
	ID           uuid.UUID    `json:"id"`
	SubmittedAt  time.Time    `json:"submittedAt"`
	Language     string       `json:"language,omitempty"`
	ContractType ContractType `json:"contractType,omitempty" validate:"omitempty,oneof=new change"`

	quote.Request
	Vehicle
	Contact

	EstimatedPremium quote.Result `json:"estimatedPremium"`
}

// New assembles a lead for req priced as estimated
func New(req quote.Request, contact Contact, estimated quote.Result, now time.Time) *Lead {
	return &Lead{
		ID:               uuid.New(),
		SubmittedAt:      now.UTC(),
		ContractType:     ContractNew,
		Request:          req,
		Contact:          contact,
		EstimatedPremium: estimated,
	}
}

// FieldError is one failed check, with the dictionary key of its message
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check returns every problem that blocks submission, in field order
func (l *Lead) Check() []FieldError {
	var problems []FieldError
	if !l.Request.IsPriceable() {
		if l.VehicleType == "" {
			problems = append(problems, FieldError{Field: "vehicleType", Message: "validation.required"})
		}
		if _, ok := l.RegistrationDate(); !ok {
			problems = append(problems, FieldError{Field: "firstRegistrationDate", Message: "validation.dateRequired"})
		}
	}

	err := validate.Struct(l)
	if err == nil {
		return problems
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(problems, FieldError{Field: "", Message: err.Error()})
	}
	for _, fe := range verrs {
		problems = append(problems, FieldError{Field: fe.Field(), Message: messageKey(fe)})
	}
	return problems
}

// Validate returns a VALIDATION_ERROR carrying the problems, or nil
func (l *Lead) Validate() error {
	problems := l.Check()
	if len(problems) == 0 {
		return nil
	}
	fields := make([]string, len(problems))
	for i, p := range problems {
		fields[i] = p.Field
	}
	return qerrors.Validation("lead is incomplete: %s", strings.Join(fields, ", ")).
		WithContext("problems", problems)
}

// Problems extracts the field problems from a Validate error
func Problems(err error) []FieldError {
	qe, ok := err.(*qerrors.Error)
	if !ok || qe.Context == nil {
		return nil
	}
	problems, _ := qe.Context["problems"].([]FieldError)
	return problems
}

func messageKey(fe validator.FieldError) string {
	switch fe.Field() {
	case "firstName":
		return "validation.firstNameRequired"
	case "lastName":
		return "validation.lastNameRequired"
	case "email":
		if fe.Tag() == "email" {
			return "validation.emailInvalid"
		}
		return "validation.emailRequired"
	}
	return "validation.required"
}
