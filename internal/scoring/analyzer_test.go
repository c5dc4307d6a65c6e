package scoring

import (
	"reflect"
	"sync"
	"testing"
	"testing/quick"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \r\n"} {
		result := Analyze(text)
		if result.Score != 0 {
			t.Fatalf("%q: expected score 0 got %d", text, result.Score)
		}
		if result.Level != LevelLow {
			t.Fatalf("%q: expected Low got %s", text, result.Level)
		}
		if result.Flags == nil || len(result.Flags) != 0 {
			t.Fatalf("%q: expected empty non-nil flags got %#v", text, result.Flags)
		}
		if result.Highlights == nil || len(result.Highlights) != 0 {
			t.Fatalf("%q: expected empty non-nil highlights got %#v", text, result.Highlights)
		}
	}
}

func TestAnalyzeCaseInsensitive(t *testing.T) {
	upper := Analyze("GIFT CARD")
	lower := Analyze("gift card")
	if !reflect.DeepEqual(upper, lower) {
		t.Fatalf("expected identical results, got %+v and %+v", upper, lower)
	}
	if upper.Score != 30 || upper.Level != LevelMedium {
		t.Fatalf("expected 30/Medium got %d/%s", upper.Score, upper.Level)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	text := "Hurry, send a processing fee via Zelle and text me on WhatsApp"
	first := Analyze(text)
	second := Analyze(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestAnalyzeCountsPhraseOnce(t *testing.T) {
	result := Analyze("fee fee fee")
	if result.Score != 20 {
		t.Fatalf("expected score 20 got %d", result.Score)
	}
	if !reflect.DeepEqual(result.Highlights, []string{"fee"}) {
		t.Fatalf("unexpected highlights %v", result.Highlights)
	}
	if !reflect.DeepEqual(result.Flags, []string{"Mentions upfront fee"}) {
		t.Fatalf("unexpected flags %v", result.Flags)
	}
}

func TestAnalyzeMatchesInsideWords(t *testing.T) {
	result := Analyze("Let's grab a coffee")
	if !reflect.DeepEqual(result.Highlights, []string{"fee"}) {
		t.Fatalf("expected substring match on fee, got %v", result.Highlights)
	}
}

func TestAnalyzeReportsInTableOrder(t *testing.T) {
	result := Analyze("urgent gift card")
	if !reflect.DeepEqual(result.Highlights, []string{"gift card", "urgent"}) {
		t.Fatalf("expected table order, got %v", result.Highlights)
	}
}

func TestAnalyzeRecruiterScam(t *testing.T) {
	result := Analyze("We need your bank account and social security number via Western Union, urgent!")
	if result.Level != LevelHigh {
		t.Fatalf("expected High got %s", result.Level)
	}
	if result.Score != MaxScore {
		t.Fatalf("expected clamped score %d got %d", MaxScore, result.Score)
	}
	for _, phrase := range []string{"bank account", "social security", "western union", "urgent"} {
		if !contains(result.Highlights, phrase) {
			t.Fatalf("expected %q in highlights %v", phrase, result.Highlights)
		}
	}
}

func TestAnalyzeFlagsPairWithHighlights(t *testing.T) {
	descriptions := make(map[string]string)
	for _, p := range DefaultPatterns() {
		descriptions[p.Phrase] = p.Description
	}

	result := Analyze("Dear friend, work from home with no experience. Telegram me, send a Bitcoin security deposit ASAP. Best regards")
	if len(result.Flags) != len(result.Highlights) {
		t.Fatalf("flags/highlights length mismatch: %d vs %d", len(result.Flags), len(result.Highlights))
	}
	seen := make(map[string]struct{})
	for i, phrase := range result.Highlights {
		if _, ok := seen[phrase]; ok {
			t.Fatalf("phrase %q reported twice", phrase)
		}
		seen[phrase] = struct{}{}
		if result.Flags[i] != descriptions[phrase] {
			t.Fatalf("flag %d: expected %q got %q", i, descriptions[phrase], result.Flags[i])
		}
	}
}

func TestAnalyzeScoreBoundaries(t *testing.T) {
	table, err := NewPatternTable([]Pattern{
		{Phrase: "alpha", Weight: 10, Description: "a"},
		{Phrase: "bravo", Weight: 20, Description: "b"},
		{Phrase: "charlie", Weight: 19, Description: "c"},
		{Phrase: "delta", Weight: 40, Description: "d"},
		{Phrase: "echo", Weight: 50, Description: "e"},
		{Phrase: "foxtrot", Weight: 70, Description: "f"},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	analyzer := NewAnalyzer(table)

	tests := []struct {
		name          string
		text          string
		expectedScore int
		expectedLevel Level
	}{
		{"none", "nothing here", 0, LevelLow},
		{"just below medium", "alpha charlie", 29, LevelLow},
		{"exactly medium", "alpha bravo", 30, LevelMedium},
		{"exactly high", "delta bravo", 60, LevelHigh},
		{"clamped", "echo foxtrot delta", 100, LevelHigh},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := analyzer.Analyze(tc.text)
			if result.Score != tc.expectedScore {
				t.Fatalf("expected score %d got %d", tc.expectedScore, result.Score)
			}
			if result.Level != tc.expectedLevel {
				t.Fatalf("expected level %s got %s", tc.expectedLevel, result.Level)
			}
		})
	}
}

func TestAnalyzeScoreAlwaysBounded(t *testing.T) {
	bounded := func(text string) bool {
		score := Analyze(text).Score
		return score >= 0 && score <= MaxScore
	}
	if err := quick.Check(bounded, nil); err != nil {
		t.Fatal(err)
	}

	var everything string
	for _, p := range DefaultPatterns() {
		everything += p.Phrase + " "
	}
	if score := Analyze(everything).Score; score != MaxScore {
		t.Fatalf("expected %d got %d", MaxScore, score)
	}
}

func TestAnalyzeConcurrentUse(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	expected := analyzer.Analyze("Act now: pay the verification fee in crypto")

	var wg sync.WaitGroup
	errs := make(chan Result, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := analyzer.Analyze("Act now: pay the verification fee in crypto"); !reflect.DeepEqual(got, expected) {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("expected %+v got %+v", expected, got)
	}
}

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected Level
	}{
		{0, LevelLow},
		{29, LevelLow},
		{30, LevelMedium},
		{59, LevelMedium},
		{60, LevelHigh},
		{100, LevelHigh},
	}
	for _, tc := range tests {
		if got := LevelForScore(tc.score); got != tc.expected {
			t.Fatalf("score %d: expected %s got %s", tc.score, tc.expected, got)
		}
	}
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
