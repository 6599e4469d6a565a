package clock

import "time"

// Deadline is a monotonic stopwatch with an optional time limit.
//
// A Deadline from Unlimited never reports Reached; the zero value
// Deadline{} has a zero limit and reports Reached. Deadline is a small
// immutable value: copy it freely, there is no shared mutable state.
type Deadline struct {
	start time.Time
	limit time.Duration
	unset bool
}

// Unlimited returns a Deadline that never expires.
func Unlimited() Deadline {
	return Deadline{start: time.Now(), unset: true}
}

// New returns a Deadline that expires limit after now. A negative limit
// is treated as Unlimited. A limit of exactly 0 is NOT unlimited: it
// produces a Deadline that has already expired the instant it is created
// (Elapsed() >= 0 == limit immediately). The unset and explicit-zero
// cases are distinct and must stay that way for callers: cmd/wcsplift
// only reaches Unlimited() when -time-limit was never passed on the
// command line, while an explicit "-time-limit 0" forces an immediate
// timeout.
func New(limit time.Duration) Deadline {
	if limit < 0 {
		return Unlimited()
	}
	return Deadline{start: time.Now(), limit: limit}
}

// Elapsed returns the time since the Deadline was created.
func (d Deadline) Elapsed() time.Duration {
	return time.Since(d.start)
}

// Remaining returns how much time is left, or the largest representable
// duration if Unlimited.
func (d Deadline) Remaining() time.Duration {
	if d.unset {
		return time.Duration(1<<63 - 1)
	}
	r := d.limit - d.Elapsed()
	if r < 0 {
		return 0
	}
	return r
}

// Reached reports whether the deadline has passed.
func (d Deadline) Reached() bool {
	if d.unset {
		return false
	}
	return d.Elapsed() >= d.limit
}

// Seconds returns the configured limit in seconds, or 0 if Unlimited --
// the value the lp.Solver.SetTimeLimit contract expects (a solver with
// no limit set is free to run unbounded).
func (d Deadline) Seconds() float64 {
	if d.unset {
		return 0
	}
	return d.limit.Seconds()
}
