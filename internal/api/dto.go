package api

import "fake-recruiter-detector/backend/internal/scoring"

// AnalyzeRequest is the body of POST /analyze. Text is a pointer so a missing
// or null field is rejected while an empty string is accepted.
type AnalyzeRequest struct {
	Text *string `json:"text" binding:"required"`
}

// Highlight is a matched phrase returned for UI emphasis.
type Highlight struct {
	Phrase string `json:"phrase"`
}

// AnalyzeResponse is the API representation of a scoring result.
type AnalyzeResponse struct {
	Score      int         `json:"score"`
	Level      string      `json:"level"`
	Flags      []string    `json:"flags"`
	Highlights []Highlight `json:"highlights"`
}

// PatternDTO is one entry of the active phrase table.
type PatternDTO struct {
	Phrase      string `json:"phrase"`
	Weight      int    `json:"weight"`
	Description string `json:"description"`
}

// PatternsResponse lists the active phrase table in match order.
type PatternsResponse struct {
	Items []PatternDTO `json:"items"`
	Total int          `json:"total"`
}

// FromResult converts a scoring.Result into the response payload.
func FromResult(r scoring.Result) AnalyzeResponse {
	flags := make([]string, len(r.Flags))
	copy(flags, r.Flags)
	highlights := make([]Highlight, 0, len(r.Highlights))
	for _, phrase := range r.Highlights {
		highlights = append(highlights, Highlight{Phrase: phrase})
	}
	return AnalyzeResponse{
		Score:      r.Score,
		Level:      r.Level.String(),
		Flags:      flags,
		Highlights: highlights,
	}
}

// PatternsFromTable converts the table into its listing payload.
func PatternsFromTable(table *scoring.PatternTable) PatternsResponse {
	patterns := table.Patterns()
	items := make([]PatternDTO, 0, len(patterns))
	for _, p := range patterns {
		items = append(items, PatternDTO{
			Phrase:      p.Phrase,
			Weight:      p.Weight,
			Description: p.Description,
		})
	}
	return PatternsResponse{Items: items, Total: len(items)}
}
