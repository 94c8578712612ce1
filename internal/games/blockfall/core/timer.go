package core

import "time"

// Timer is a countdown advanced by the frame delta. It fires on the tick its
// remaining time reaches zero and then starts over from the full duration;
// overshoot is discarded rather than carried into the next period.
type Timer struct {
	duration  time.Duration
	remaining time.Duration
}

// NewTimer creates a timer that first fires after d.
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d, remaining: d}
}

// Tick advances the timer by dt and reports whether it fired.
// A zero-duration timer fires on every tick.
func (t *Timer) Tick(dt time.Duration) bool {
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = t.duration
		return true
	}
	return false
}

// Reset restarts the countdown from the full duration.
func (t *Timer) Reset() {
	t.remaining = t.duration
}

// Duration returns the configured period.
func (t Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns the time left until the timer fires.
func (t Timer) Remaining() time.Duration {
	return t.remaining
}
