package domain

// Notice is a non-fatal outcome of a tracker operation. The zero value means
// the operation did what was asked.
type Notice string

const (
	NoticeNone            Notice = ""
	NoticeAlreadyTracking Notice = "already_tracking"
	NoticeStaleSession    Notice = "stale_session"
	NoticeNothingToStop   Notice = "nothing_to_stop"
	NoticeNoWorkToday     Notice = "no_work_today"
	NoticeNoLogs          Notice = "no_logs"
	NoticeNoStaleSession  Notice = "no_stale_session"
)

// Message returns the user-facing wording of the notice.
func (n Notice) Message() string {
	switch n {
	case NoticeAlreadyTracking:
		return "You already have an active work session"
	case NoticeStaleSession:
		return "An earlier work session was never stopped"
	case NoticeNothingToStop:
		return "No active work session found"
	case NoticeNoWorkToday:
		return "No work tracked today"
	case NoticeNoLogs:
		return "No work logs found"
	case NoticeNoStaleSession:
		return "No stale work session found"
	default:
		return ""
	}
}
