package birds

import "time"

// Timer is a repeating accumulator checked once per simulation tick.
type Timer struct {
	Period  time.Duration
	elapsed time.Duration
}

// NewTimer creates a repeating timer with the given period.
func NewTimer(period time.Duration) Timer {
	return Timer{Period: period}
}

// Tick adds dt and reports whether the period elapsed during this tick.
// It fires at most once per call; overflow carries into the next period.
func (t *Timer) Tick(dt time.Duration) bool {
	if t.Period <= 0 {
		return true
	}
	t.elapsed += dt
	if t.elapsed < t.Period {
		return false
	}
	t.elapsed %= t.Period
	return true
}

// Elapsed returns the time accumulated towards the next fire.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}
