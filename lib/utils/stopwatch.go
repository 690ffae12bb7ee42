package utils

import "time"

// Stopwatch measures the time between consecutive laps.
type Stopwatch struct {
	last time.Time
	now  func() time.Time
}

// Lap returns the time since the previous lap, or 0 on the first call.
func (s *Stopwatch) Lap() time.Duration {
	if s.now == nil {
		s.now = time.Now
	}
	// sample the clock once so that errors don't accumulate across laps
	t := s.now()
	defer func() { s.last = t }()

	if s.last.IsZero() {
		return 0
	}
	return t.Sub(s.last)
}
