package domain

import (
	"fmt"
	"time"
)

// DayKeyLayout is the persisted date format of a DayKey.
const DayKeyLayout = "2006-01-02"

// DayKey identifies a calendar day in local wall-clock time, e.g. "2024-06-01".
type DayKey string

// DayKeyOf returns the calendar day of t in t's own location. Callers pass
// local time; tests pin a location explicitly.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(DayKeyLayout))
}

// ParseDayKey validates s as a YYYY-MM-DD date.
func ParseDayKey(s string) (DayKey, error) {
	if _, err := time.Parse(DayKeyLayout, s); err != nil {
		return "", fmt.Errorf("invalid day key %q: %w", s, err)
	}
	return DayKey(s), nil
}

// Date returns midnight of the day in loc.
func (d DayKey) Date(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, string(d), loc)
}

// EndOf returns the last millisecond of the day in loc. Millisecond rather
// than nanosecond granularity survives the float epoch encoding.
func (d DayKey) EndOf(loc *time.Location) (time.Time, error) {
	start, err := d.Date(loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, 1).Add(-time.Millisecond), nil
}

func (d DayKey) String() string {
	return string(d)
}
