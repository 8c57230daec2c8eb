package snake

import "time"

// Interval fires at most once per period of a caller-supplied clock. It does
// not catch up: after a long gap it fires once and restarts the period from
// the current time.
type Interval struct {
	every time.Duration
	last  time.Duration
}

// NewInterval creates an interval of the given period, starting at time zero.
func NewInterval(every time.Duration) *Interval {
	return &Interval{every: every}
}

// Due reports whether a full period has passed since the last firing, and if
// so records now as the new firing time.
func (iv *Interval) Due(now time.Duration) bool {
	if now-iv.last >= iv.every {
		iv.last = now
		return true
	}
	return false
}

// Every returns the period.
func (iv *Interval) Every() time.Duration {
	return iv.every
}

// Reset rewinds the interval to time zero.
func (iv *Interval) Reset() {
	iv.last = 0
}
