// Package explanation - Unrated explanations
// Explains why a coverage could not be priced
package explanation

import (
	"strings"

	"premium-quote/core/quote"
)

// UnratedExplanation explains an advisory note
type UnratedExplanation struct {
	Note        string   `json:"note"`
	Reason      string   `json:"reason"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// NewUnratedExplanation creates an explanation for a note
func NewUnratedExplanation(note, reason string) *UnratedExplanation {
	return &UnratedExplanation{
		Note:   note,
		Reason: reason,
	}
}

// WithSuggestion adds a suggestion for resolution
func (u *UnratedExplanation) WithSuggestion(suggestion string) *UnratedExplanation {
	u.Suggestions = append(u.Suggestions, suggestion)
	return u
}

// ToMarkdown returns a markdown explanation
func (u *UnratedExplanation) ToMarkdown() string {
	var sb strings.Builder

	sb.WriteString("**" + u.Reason + "** (`" + u.Note + "`)\n")
	for _, suggestion := range u.Suggestions {
		sb.WriteString("- " + suggestion + "\n")
	}
	return sb.String()
}

// Common reasons
const (
	ReasonIncomplete       = "vehicle type or first registration date is missing"
	ReasonRCTooYoung       = "vehicle is too young to be rated for civil liability"
	ReasonValueMissing     = "omnium requires a positive vehicle value"
	ReasonOmniumTooYoung   = "vehicle is too young for omnium cover"
	ReasonAboveCeiling     = "vehicle value exceeds the highest omnium tier"
	ReasonStorageAndOmnium = "omnium on an unregistered or stored vehicle"
	ReasonAdvisory         = "advisory note"
)

// ExplainNote creates the standard explanation for a note key
func ExplainNote(note string) *UnratedExplanation {
	switch note {
	case quote.NoteIncompleteRequest:
		return NewUnratedExplanation(note, ReasonIncomplete).
			WithSuggestion("Provide vehicleType and firstRegistrationDate")
	case quote.NoteRCTooYoung:
		return NewUnratedExplanation(note, ReasonRCTooYoung).
			WithSuggestion("Check the first registration date")
	case quote.NoteOmniumValueMissing:
		return NewUnratedExplanation(note, ReasonValueMissing).
			WithSuggestion("Provide vehicleValue")
	case quote.NoteOmniumTooYoung:
		return NewUnratedExplanation(note, ReasonOmniumTooYoung)
	case quote.NoteOmniumAboveCeiling:
		return NewUnratedExplanation(note, ReasonAboveCeiling).
			WithSuggestion("The premium uses the highest tier rate and needs manual verification")
	case quote.NoteOmniumStorageVerification:
		return NewUnratedExplanation(note, ReasonStorageAndOmnium).
			WithSuggestion("Cover is subject to manual verification")
	}
	return NewUnratedExplanation(note, ReasonAdvisory)
}
