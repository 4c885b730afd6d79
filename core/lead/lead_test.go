package lead

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premium-quote/core/quote"
	qerrors "premium-quote/internal/errors"
)

var fixedNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func validLead() *Lead {
	date := quote.NewDate(1975, time.June, 1)
	req := quote.Request{
		VehicleType:           quote.VehicleCar,
		FirstRegistrationDate: &date,
		VehicleRank:           quote.RankFirst,
		UserStatus:            quote.UserClubMember,
		Coverages:             &quote.Coverages{RC: true},
	}
	result := quote.Result{
		Annual:    decimal.NewFromInt(119),
		Monthly:   decimal.RequireFromString("9.92"),
		Breakdown: []quote.LineItem{{Label: quote.LabelRC, Amount: decimal.NewFromInt(119)}},
	}
	l := New(req, Contact{FirstName: "Ada", LastName: "Peeters", Email: "ada@example.test"}, result, fixedNow)
	l.Vehicle = Vehicle{Brand: "Citroën", Model: "DS 21", ChassisNumber: "DS21-4471"}
	return l
}

func TestNew(t *testing.T) {
	l := validLead()

	assert.NotEqual(t, uuid.Nil, l.ID)
	assert.Equal(t, fixedNow, l.SubmittedAt)
	assert.Equal(t, ContractNew, l.ContractType)
	assert.NotEqual(t, l.ID, validLead().ID)
}

func TestValidLeadPasses(t *testing.T) {
	l := validLead()
	assert.Empty(t, l.Check())
	assert.NoError(t, l.Validate())

	l.Phone = "+32 470 00 00 00"
	assert.NoError(t, l.Validate())
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Lead)
		want   []FieldError
	}{
		{
			name:   "missing first name",
			mutate: func(l *Lead) { l.FirstName = "" },
			want:   []FieldError{{Field: "firstName", Message: "validation.firstNameRequired"}},
		},
		{
			name:   "missing last name",
			mutate: func(l *Lead) { l.LastName = "" },
			want:   []FieldError{{Field: "lastName", Message: "validation.lastNameRequired"}},
		},
		{
			name:   "missing email",
			mutate: func(l *Lead) { l.Email = "" },
			want:   []FieldError{{Field: "email", Message: "validation.emailRequired"}},
		},
		{
			name:   "malformed email",
			mutate: func(l *Lead) { l.Email = "ada-at-example" },
			want:   []FieldError{{Field: "email", Message: "validation.emailInvalid"}},
		},
		{
			name:   "unknown contract type",
			mutate: func(l *Lead) { l.ContractType = "renewal" },
			want:   []FieldError{{Field: "contractType", Message: "validation.required"}},
		},
		{
			name: "request not priceable",
			mutate: func(l *Lead) {
				l.VehicleType = ""
				l.FirstRegistrationDate = nil
			},
			want: []FieldError{
				{Field: "vehicleType", Message: "validation.required"},
				{Field: "firstRegistrationDate", Message: "validation.dateRequired"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLead()
			tt.mutate(l)

			assert.Equal(t, tt.want, l.Check())

			err := l.Validate()
			require.Error(t, err)
			assert.True(t, qerrors.IsType(err, qerrors.TypeValidation))
			assert.Equal(t, tt.want, Problems(err))
		})
	}
}

func TestContactOnlyProblemsAreAllReported(t *testing.T) {
	l := validLead()
	l.Contact = Contact{}

	problems := l.Check()
	require.Len(t, problems, 3)
	assert.Equal(t, "firstName", problems[0].Field)
	assert.Equal(t, "lastName", problems[1].Field)
	assert.Equal(t, "email", problems[2].Field)
}

func TestWireFormIsFlat(t *testing.T) {
	data, err := json.Marshal(validLead())
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))

	assert.Equal(t, "car", wire["vehicleType"])
	assert.Equal(t, "1975-06-01", wire["firstRegistrationDate"])
	assert.Equal(t, "Ada", wire["firstName"])
	assert.Equal(t, "ada@example.test", wire["email"])
	assert.Equal(t, "DS 21", wire["model"])
	assert.Equal(t, "new", wire["contractType"])
	assert.NotContains(t, wire, "phone")
	assert.NotContains(t, wire, "Request")
	assert.NotContains(t, wire, "Contact")

	premium, ok := wire["estimatedPremium"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "119", premium["annual"])
}

func TestProblemsOfForeignError(t *testing.T) {
	assert.Nil(t, Problems(assert.AnError))
	assert.Nil(t, Problems(nil))
}
