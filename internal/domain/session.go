package domain

import (
	"fmt"
	"time"
)

// Session is one contiguous interval of work. Start and End are epoch
// seconds; a nil End marks the session as open.
type Session struct {
	Start float64  `json:"start"`
	End   *float64 `json:"end,omitempty"`
}

// NewSession opens a session at t.
func NewSession(t time.Time) Session {
	return Session{Start: EpochSeconds(t)}
}

func (s Session) IsOpen() bool {
	return s.End == nil
}

// Close records the end of the session. Closing an already closed session
// or closing before the start is an error.
func (s *Session) Close(t time.Time) error {
	if s.End != nil {
		return fmt.Errorf("session started at %s is already closed", FromEpoch(s.Start).Format(time.RFC3339))
	}
	end := EpochSeconds(t)
	if end < s.Start {
		return fmt.Errorf("end %.3f precedes start %.3f", end, s.Start)
	}
	s.End = &end
	return nil
}

// Seconds returns the length of the session. Open sessions are measured up
// to now.
func (s Session) Seconds(now time.Time) float64 {
	if s.End != nil {
		return *s.End - s.Start
	}
	return EpochSeconds(now) - s.Start
}

func (s Session) StartTime() time.Time {
	return FromEpoch(s.Start)
}

// EpochSeconds converts t to fractional seconds since the Unix epoch.
func EpochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// FromEpoch converts fractional epoch seconds back to a local time.Time.
func FromEpoch(sec float64) time.Time {
	whole := int64(sec)
	frac := int64((sec - float64(whole)) * 1e9)
	return time.Unix(whole, frac)
}
