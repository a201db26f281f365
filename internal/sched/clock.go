// internal/sched/clock.go

package sched

import "fmt"

// Clock is the simulated CPU clock. It only moves forward, and only by the
// length of each executed slice.
type Clock struct {
	now int64
}

// Now returns the current simulated time.
func (c *Clock) Now() int64 { return c.now }

// Advance moves the clock forward by d and returns the new time.
func (c *Clock) Advance(d int64) int64 {
	if d < 0 {
		panic(fmt.Sprintf("sched: clock cannot move backwards (advance by %d)", d))
	}
	c.now += d
	return c.now
}
