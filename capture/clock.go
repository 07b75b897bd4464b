package capture

import "time"

// Clock abstracts time for throttle decisions so tests can drive a virtual
// clock instead of relying on wall-clock timing.
type Clock interface {
	Now() time.Time
}

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock Clock used by default.
func SystemClock() Clock { return systemClock{} }

// Throttle coalesces a burst of events so at most one redraw is issued per
// interval. It bounds redraw cadence only; captured points are never
// dropped from the stroke record.
type Throttle struct {
	interval time.Duration
	clock    Clock
	last     time.Time
	primed   bool
}

// NewThrottle creates a throttle with the given minimum interval.
// A zero or negative interval disables throttling (every call fires).
func NewThrottle(interval time.Duration, clock Clock) *Throttle {
	if clock == nil {
		clock = SystemClock()
	}
	return &Throttle{interval: interval, clock: clock}
}

// Allow reports whether enough time has passed since the last allowed
// event, and if so records the current time as the new baseline.
func (t *Throttle) Allow() bool {
	if t.interval <= 0 {
		return true
	}
	now := t.clock.Now()
	if t.primed && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	t.primed = true
	return true
}

// Reset clears the throttle baseline so the next Allow fires immediately.
func (t *Throttle) Reset() {
	t.primed = false
}
