package scoring

// Level is the coarse risk classification derived from a score.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

const (
	MaxScore        = 100
	MediumThreshold = 30
	HighThreshold   = 60
)

// LevelForScore classifies a clamped score. Thresholds are inclusive lower
// bounds: 30 is Medium and 60 is High.
func LevelForScore(score int) Level {
	switch {
	case score >= HighThreshold:
		return LevelHigh
	case score >= MediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

// String returns the level name.
func (l Level) String() string {
	return string(l)
}
