package domain

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// SessionLog maps each day to its sessions in chronological order.
type SessionLog map[DayKey][]Session

func NewSessionLog() SessionLog {
	return SessionLog{}
}

// Validate reports the first structural problem in the log: a malformed day
// key or a closed session that ends before it starts.
func (l SessionLog) Validate() error {
	for _, day := range l.Days() {
		if _, err := ParseDayKey(string(day)); err != nil {
			return err
		}
		for i, s := range l[day] {
			if s.End != nil && *s.End < s.Start {
				return fmt.Errorf("day %s session %d: end %.3f precedes start %.3f", day, i, *s.End, s.Start)
			}
		}
	}
	return nil
}

// Days returns the day keys that hold at least one session, most recent first.
func (l SessionLog) Days() []DayKey {
	days := make([]DayKey, 0, len(l))
	for day, sessions := range l {
		if len(sessions) > 0 {
			days = append(days, day)
		}
	}
	slices.Sort(days)
	slices.Reverse(days)
	return days
}

// Last returns a pointer to the most recent session of day, or nil.
func (l SessionLog) Last(day DayKey) *Session {
	sessions := l[day]
	if len(sessions) == 0 {
		return nil
	}
	return &sessions[len(sessions)-1]
}

// Append adds s after the existing sessions of day.
func (l SessionLog) Append(day DayKey, s Session) {
	l[day] = append(l[day], s)
}

// EnsureDay creates an empty sequence for day if none exists. Empty days are
// dropped again by Compact before the log is persisted.
func (l SessionLog) EnsureDay(day DayKey) {
	if _, ok := l[day]; !ok {
		l[day] = []Session{}
	}
}

// Compact removes days without sessions.
func (l SessionLog) Compact() {
	for day, sessions := range l {
		if len(sessions) == 0 {
			delete(l, day)
		}
	}
}

// OpenRef locates an open session inside a SessionLog.
type OpenRef struct {
	Day   DayKey
	Index int
	Start time.Time
}

// FindStale returns the most recent open session recorded on a day before
// today. Open sessions dated after today are left alone; they become
// today's session once the clock reaches their day.
func (l SessionLog) FindStale(today DayKey) (OpenRef, bool) {
	for _, day := range l.Days() {
		if day >= today {
			continue
		}
		sessions := l[day]
		for i := len(sessions) - 1; i >= 0; i-- {
			if sessions[i].IsOpen() {
				return OpenRef{Day: day, Index: i, Start: sessions[i].StartTime()}, true
			}
		}
	}
	return OpenRef{}, false
}

// Clone returns a deep copy.
func (l SessionLog) Clone() SessionLog {
	out := make(SessionLog, len(l))
	for day, sessions := range l {
		cp := make([]Session, len(sessions))
		for i, s := range sessions {
			cp[i] = Session{Start: s.Start}
			if s.End != nil {
				end := *s.End
				cp[i].End = &end
			}
		}
		out[day] = cp
	}
	return out
}

// DaySummary aggregates one day of the log.
type DaySummary struct {
	Day      DayKey
	Seconds  float64
	Sessions int
	Active   bool
}

// Summarize totals the sessions of day. Open sessions count up to now.
func (l SessionLog) Summarize(day DayKey, now time.Time) DaySummary {
	sum := DaySummary{Day: day}
	for _, s := range l[day] {
		sum.Sessions++
		sum.Seconds += s.Seconds(now)
		if s.IsOpen() {
			sum.Active = true
		}
	}
	return sum
}

// Recent yields summaries for the n most recent days, newest first. The
// day keys are snapshotted when Recent is called; durations of open sessions
// are computed against now as each summary is produced.
func (l SessionLog) Recent(now time.Time, n int) iter.Seq[DaySummary] {
	days := l.Days()
	if n < len(days) {
		days = days[:max(n, 0)]
	}
	return func(yield func(DaySummary) bool) {
		for _, day := range days {
			if !yield(l.Summarize(day, now)) {
				return
			}
		}
	}
}
