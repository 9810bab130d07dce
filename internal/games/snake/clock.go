package snake

import "time"

// FixedStep is a fixed-period schedule driven by frame deltas.
// It fires at most once per frame; time owed beyond one extra period is
// dropped, so a long stall costs skipped ticks rather than a burst.
type FixedStep struct {
	Period time.Duration
	acc    time.Duration
}

// NewFixedStep creates a schedule with the given period.
func NewFixedStep(period time.Duration) FixedStep {
	return FixedStep{Period: period}
}

// Advance adds the frame delta and reports whether the schedule fires.
func (s *FixedStep) Advance(dt time.Duration) bool {
	if s.Period <= 0 {
		return false
	}
	if dt > 0 {
		s.acc += dt
	}
	if s.acc < s.Period {
		return false
	}
	s.acc -= s.Period
	if s.acc >= s.Period {
		s.acc %= s.Period
	}
	return true
}

// Reset clears the accumulated time.
func (s *FixedStep) Reset() {
	s.acc = 0
}
