// Package explanation - Response types for explanations
// Safe for JSON serialization and UI consumption
package explanation

import "premium-quote/core/quote"

// ExplanationResponse bundles every explanation of one quote
type ExplanationResponse struct {
	Lines   []*LineExplanation    `json:"lines"`
	Unrated []*UnratedExplanation `json:"unrated,omitempty"`
}

// BuildExplanationResponse explains each breakdown line and each note of res
func BuildExplanationResponse(req *quote.Request, res quote.Result) ExplanationResponse {
	response := ExplanationResponse{
		Lines: Explain(req, res),
	}
	for _, note := range res.Notes {
		response.Unrated = append(response.Unrated, ExplainNote(note))
	}
	return response
}
