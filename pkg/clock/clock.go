// Package clock provides the single time source every scheduling decision in
// the engine must use. The clock runs in real mode by default and can be
// offset from the wall clock or pinned to an explicit instant for simulation,
// so that "time travel" correctly triggers day rollovers and review
// eligibility without touching the OS clock.
package clock

import (
	"math"
	"sync"
	"time"
)

// Clock supplies the authoritative "now".
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to the Clock interface, handy in tests.
type Func func() time.Time

// Now implements Clock.
func (f Func) Now() time.Time { return f() }

// Fixed returns a clock pinned to the given instant.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

// Real is the wall-clock implementation.
type Real struct{}

// Now implements Clock.
func (Real) Now() time.Time { return time.Now() }

// Simulated is a wall clock with a mutable offset, optionally pinned to an
// explicit instant. The zero offset behaves exactly like Real.
type Simulated struct {
	mu     sync.RWMutex
	offset time.Duration
	pinned *time.Time
}

// NewSimulated returns a simulated clock with zero offset.
func NewSimulated() *Simulated { return &Simulated{} }

// Now implements Clock.
func (c *Simulated) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.pinned != nil {
		return *c.pinned
	}
	return time.Now().Add(c.offset)
}

// Offset reports the current offset from the wall clock.
func (c *Simulated) Offset() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// SetOffset shifts the clock by a fixed duration from the wall clock and
// clears any pin.
func (c *Simulated) SetOffset(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = d
	c.pinned = nil
}

// Travel offsets the clock so that Now() returns the target instant at the
// moment of the call, then keeps ticking.
func (c *Simulated) Travel(target time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = time.Until(target)
	c.pinned = nil
}

// Pin freezes the clock at the given instant until Reset or SetOffset.
func (c *Simulated) Pin(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pinned = &t
}

// Reset returns the clock to real time.
func (c *Simulated) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = 0
	c.pinned = nil
}

// IsSimulated reports whether the clock deviates from the wall clock.
func (c *Simulated) IsSimulated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pinned != nil || c.offset != 0
}

// DayKey identifies the calendar day of t, in t's location.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextDay returns midnight of the calendar day after t.
func NextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// DaysBetween returns the calendar-day difference between a and b
// (b later than a gives a positive count). Both instants are truncated to
// their day start first, so the result never drifts across a midnight the way
// raw duration division would.
func DaysBetween(a, b time.Time) int {
	start := StartOfDay(a)
	end := StartOfDay(b.In(a.Location()))
	// Round instead of truncating so DST-shortened days still count as one.
	return int(math.Round(end.Sub(start).Hours() / 24))
}
