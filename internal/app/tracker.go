package app

import (
	"time"

	"github.com/alexanderramin/worktime/internal/domain"
)

// DefaultReportDays is the number of days listed by a report when the caller
// does not ask for a specific count.
const DefaultReportDays = 7

// StaleSession describes an open session left behind on an earlier day.
type StaleSession struct {
	Day       domain.DayKey
	StartedAt time.Time
}

type StartRequest struct {
	Now *time.Time
}

type StartResponse struct {
	Notice    domain.Notice
	Day       domain.DayKey
	StartedAt time.Time
	Stale     *StaleSession
}

type StopRequest struct {
	Now *time.Time
}

type StopResponse struct {
	Notice    domain.Notice
	Day       domain.DayKey
	StartedAt time.Time
	EndedAt   time.Time
	Seconds   float64
	Stale     *StaleSession
}

type StatusRequest struct {
	Now *time.Time
}

type StatusResponse struct {
	Notice      domain.Notice
	Day         domain.DayKey
	Seconds     float64
	Sessions    int
	Active      bool
	ActiveSince *time.Time
}

type ReportRequest struct {
	Now  *time.Time
	Days int
}

func NewReportRequest() ReportRequest {
	return ReportRequest{Days: DefaultReportDays}
}

type ReportResponse struct {
	Notice       domain.Notice
	Requested    int
	Rows         []domain.DaySummary
	TotalSeconds float64
}

type ResolveRequest struct {
	Now *time.Time
	// At overrides the end time. Nil closes the session at the end of its day.
	At *time.Time
	// DryRun computes the outcome without saving it.
	DryRun bool
}

type ResolveResponse struct {
	Notice    domain.Notice
	Day       domain.DayKey
	StartedAt time.Time
	EndedAt   time.Time
	Seconds   float64
}

type TrackerErrorCode string

const (
	TrackerErrInvalidDays    TrackerErrorCode = "INVALID_DAYS"
	TrackerErrInvalidEndTime TrackerErrorCode = "INVALID_END_TIME"
)

type TrackerError struct {
	Code    TrackerErrorCode
	Message string
}

func (e *TrackerError) Error() string {
	return string(e.Code) + ": " + e.Message
}
