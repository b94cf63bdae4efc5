// Package time holds the clock seam used for run timestamps
package time

import "time"

// Now returns the current time in UTC. Tests swap it with testkit.Swap
var Now = func() time.Time { return time.Now().UTC() }

// Since is the elapsed time from start according to Now
func Since(start time.Time) time.Duration { return Now().Sub(start) }

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
