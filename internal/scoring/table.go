package scoring

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyPhrase     = errors.New("pattern phrase is empty")
	ErrDuplicatePhrase = errors.New("duplicate pattern phrase")
	ErrNegativeWeight  = errors.New("pattern weight is negative")
)

// Pattern is a suspicious phrase with its score contribution and the flag
// shown to the user when it matches.
type Pattern struct {
	Phrase      string `json:"phrase" yaml:"phrase"`
	Weight      int    `json:"weight" yaml:"weight"`
	Description string `json:"description" yaml:"description"`
}

// PatternTable is an ordered, read-only set of patterns keyed by phrase.
// A table never changes after construction, so one instance can be shared
// by any number of goroutines.
type PatternTable struct {
	patterns []Pattern
}

// NewPatternTable validates the entries and builds a table preserving their
// order. Phrases are trimmed and lowercased.
func NewPatternTable(entries []Pattern) (*PatternTable, error) {
	patterns := make([]Pattern, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		phrase := normalizePhrase(entry.Phrase)
		if phrase == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyPhrase)
		}
		if entry.Weight < 0 {
			return nil, fmt.Errorf("phrase %q: %w", phrase, ErrNegativeWeight)
		}
		if _, ok := seen[phrase]; ok {
			return nil, fmt.Errorf("phrase %q: %w", phrase, ErrDuplicatePhrase)
		}
		seen[phrase] = struct{}{}
		patterns = append(patterns, Pattern{
			Phrase:      phrase,
			Weight:      entry.Weight,
			Description: strings.TrimSpace(entry.Description),
		})
	}
	return &PatternTable{patterns: patterns}, nil
}

// DefaultTable builds a table from the built-in patterns.
func DefaultTable() *PatternTable {
	table, err := NewPatternTable(defaultPatterns[:])
	if err != nil {
		panic(fmt.Sprintf("built-in pattern table: %v", err))
	}
	return table
}

// Len reports the number of patterns.
func (t *PatternTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.patterns)
}

// Patterns returns a copy of the entries in table order.
func (t *PatternTable) Patterns() []Pattern {
	if t == nil {
		return nil
	}
	out := make([]Pattern, len(t.patterns))
	copy(out, t.patterns)
	return out
}

func normalizePhrase(phrase string) string {
	return strings.ToLower(strings.TrimSpace(phrase))
}
