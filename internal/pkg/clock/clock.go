// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/dungeon-layout/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time. Times are UTC and
// truncated to milliseconds so they survive a JSON round trip unchanged.
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant
type Fixed struct {
	At time.Time
}

// Now returns the fixed time
func (c Fixed) Now() time.Time {
	return c.At
}
