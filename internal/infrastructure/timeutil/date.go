package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// DateLayout is the calendar date format used by the provider.
const DateLayout = "2006-01-02"

// AnywhereOnEarth is UTC-12, the last zone to start a calendar day.
// A date is only in the past once it has ended there.
var AnywhereOnEarth = time.FixedZone("AoE", -12*60*60)

var locationCache sync.Map

// GetLocation loads a timezone by IANA name, caching the result.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// IsPastDate reports whether the YYYY-MM-DD date has already ended everywhere.
// Unparseable dates are reported as an error.
func IsPastDate(date string, now time.Time) (bool, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false, err
	}
	return d.Before(Today(now, AnywhereOnEarth)), nil
}
