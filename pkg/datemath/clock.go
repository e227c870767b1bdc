package datemath

import (
	"fmt"
	"time"
)

// Clock supplies the reference time relative expressions are resolved against.
type Clock interface {
	Now() time.Time
}

// ZoneClock reads the system clock and reports it in a fixed IANA timezone, so the calendar day of
// Now() is the user's day rather than the server's.
type ZoneClock struct {
	location *time.Location
}

// NewClock creates a clock for the given IANA timezone string, e.g. "Asia/Ho_Chi_Minh".
func NewClock(timezone string) (*ZoneClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &ZoneClock{location: loc}, nil
}

// Now returns the current time in the clock's timezone.
func (c *ZoneClock) Now() time.Time {
	return time.Now().In(c.location)
}

// Location returns the clock's timezone.
func (c *ZoneClock) Location() *time.Location {
	return c.location
}

// FixedClock always returns the same instant. Used by tests and by callers pinning a reference time.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
