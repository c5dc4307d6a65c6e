package util

import "time"

// Stopwatch measures wall time from the moment it was started.
type Stopwatch struct {
	start time.Time
	now   func() time.Time
}

func StartStopwatch() Stopwatch {
	return Stopwatch{start: time.Now(), now: time.Now}
}

// Elapsed returns zero for an unstarted stopwatch.
func (s Stopwatch) Elapsed() time.Duration {
	if s.start.IsZero() || s.now == nil {
		return 0
	}
	return s.now().Sub(s.start)
}

// ElapsedMs is Elapsed in fractional milliseconds, for log fields.
func (s Stopwatch) ElapsedMs() float64 {
	return float64(s.Elapsed()) / float64(time.Millisecond)
}
