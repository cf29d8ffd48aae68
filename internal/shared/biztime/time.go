// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used for
// calculating date boundaries, most importantly the calendar day that keys
// the per-user urgent-ticket quota.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location. If not explicitly
// initialized, automatically initializes with the default timezone.
func Location() *time.Location {
	bizLocationOnce.Do(func() {
		bizLocation, initErr = time.LoadLocation(DefaultTimezone)
	})
	if initErr != nil || bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current calendar date in the business timezone,
// formatted as YYYY-MM-DD. This is the key used for daily quotas.
func Today() string {
	return time.Now().In(Location()).Format(time.DateOnly)
}

// DayString formats a time as a business-timezone calendar date (YYYY-MM-DD).
func DayString(t time.Time) string {
	return t.In(Location()).Format(time.DateOnly)
}
