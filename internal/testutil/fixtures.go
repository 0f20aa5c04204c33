package testutil

import (
	"time"

	"github.com/alexanderramin/worktime/internal/domain"
)

// ClosedSession builds a finished session between two epoch seconds.
func ClosedSession(start, end float64) domain.Session {
	return domain.Session{Start: start, End: &end}
}

// OpenSession builds an in-progress session.
func OpenSession(start float64) domain.Session {
	return domain.Session{Start: start}
}

// SpanSession builds a finished session from wall-clock times.
func SpanSession(start, end time.Time) domain.Session {
	return ClosedSession(domain.EpochSeconds(start), domain.EpochSeconds(end))
}

// LogOption mutates a session log under construction.
type LogOption func(domain.SessionLog)

func WithDay(day domain.DayKey, sessions ...domain.Session) LogOption {
	return func(l domain.SessionLog) {
		for _, s := range sessions {
			l.Append(day, s)
		}
	}
}

// WithWorkedDays records one hour of work at 09:00 on each of n consecutive
// days starting at first.
func WithWorkedDays(first time.Time, n int) LogOption {
	return func(l domain.SessionLog) {
		for i := range n {
			start := time.Date(first.Year(), first.Month(), first.Day()+i, 9, 0, 0, 0, first.Location())
			l.Append(domain.DayKeyOf(start), SpanSession(start, start.Add(time.Hour)))
		}
	}
}

func NewTestSessionLog(opts ...LogOption) domain.SessionLog {
	l := domain.NewSessionLog()
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// At returns a fixed instant on the given day in loc.
func At(loc *time.Location, year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}
