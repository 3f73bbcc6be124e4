// Package session models the input state of a typing test.
package session

import "time"

// Clock tracks a session's time budget. Only the start instant is stored;
// elapsed and remaining time are always derived from it.
type Clock struct {
	start  time.Time
	budget time.Duration
}

// StartClock captures the start instant for a session with the given budget.
func StartClock(budget time.Duration) Clock {
	return Clock{start: time.Now(), budget: budget}
}

// Elapsed returns the time since the session started.
func (c Clock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Remaining returns the unspent budget, floored at zero.
func (c Clock) Remaining() time.Duration {
	remaining := c.budget - c.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the budget is spent.
func (c Clock) Expired() bool {
	return c.Remaining() <= 0
}

// Final returns the elapsed time capped at the budget, the value scoring
// uses regardless of how the session ended.
func (c Clock) Final() time.Duration {
	elapsed := c.Elapsed()
	if elapsed > c.budget {
		return c.budget
	}
	return elapsed
}
