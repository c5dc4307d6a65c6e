package scoring

import "strings"

// Result captures the outcome of analyzing one message.
type Result struct {
	Score      int      `json:"score"`
	Level      Level    `json:"level"`
	Flags      []string `json:"flags"`
	Highlights []string `json:"highlights"`
}

// Analyzer scores recruiter messages against a pattern table.
type Analyzer struct {
	table *PatternTable
}

// NewAnalyzer returns an analyzer over the given table. A nil table falls back
// to the built-in patterns.
func NewAnalyzer(table *PatternTable) *Analyzer {
	if table == nil {
		table = DefaultTable()
	}
	return &Analyzer{table: table}
}

var defaultAnalyzer = NewAnalyzer(nil)

// Analyze scores text with the built-in pattern table.
func Analyze(text string) Result {
	return defaultAnalyzer.Analyze(text)
}

// Table returns the table the analyzer scores against.
func (a *Analyzer) Table() *PatternTable {
	return a.table
}

// Analyze lowercases text and checks every phrase for plain substring
// containment, in table order. A phrase counts once no matter how often it
// occurs. Matching is not word-boundary aware ("fee" matches "coffee") and
// lowercasing is simple per-rune case mapping, not full Unicode case folding.
func (a *Analyzer) Analyze(text string) Result {
	lowered := strings.ToLower(text)

	total := 0
	flags := make([]string, 0)
	highlights := make([]string, 0)
	for _, p := range a.table.patterns {
		if !strings.Contains(lowered, p.Phrase) {
			continue
		}
		total += p.Weight
		flags = append(flags, p.Description)
		highlights = append(highlights, p.Phrase)
	}

	score := clampScore(total)
	return Result{
		Score:      score,
		Level:      LevelForScore(score),
		Flags:      flags,
		Highlights: highlights,
	}
}

func clampScore(total int) int {
	if total > MaxScore {
		return MaxScore
	}
	if total < 0 {
		return 0
	}
	return total
}
