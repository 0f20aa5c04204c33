package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
)

// FormatNotice renders a notice on its own line. NoticeNone renders empty.
func FormatNotice(n domain.Notice) string {
	if n == domain.NoticeNone {
		return ""
	}
	return NoticeStyle(n).Render(n.Message()) + "\n"
}

// FormatStaleHint explains a stale session and how to close it.
func FormatStaleHint(stale *app.StaleSession) string {
	if stale == nil {
		return ""
	}
	return Dim(fmt.Sprintf("  Session on %s started at %s is still open. Run `worktime resolve` to close it.",
		stale.Day, ClockTime(stale.StartedAt))) + "\n"
}

// FormatStart renders the outcome of a start.
func FormatStart(resp *app.StartResponse) string {
	switch resp.Notice {
	case domain.NoticeNone:
		return StyleGreen.Render("Started tracking at "+ClockTime(resp.StartedAt)) + "\n"
	case domain.NoticeAlreadyTracking:
		return FormatNotice(resp.Notice) + Dim("  Running since "+ClockTime(resp.StartedAt)) + "\n"
	default:
		return FormatNotice(resp.Notice) + FormatStaleHint(resp.Stale)
	}
}

// FormatStop renders the outcome of a stop.
func FormatStop(resp *app.StopResponse) string {
	if resp.Notice != domain.NoticeNone {
		return FormatNotice(resp.Notice) + FormatStaleHint(resp.Stale)
	}
	return fmt.Sprintf("%s %s\n",
		StyleGreen.Render("Stopped tracking. Session duration:"),
		Bold(FormatDuration(resp.Seconds)))
}

// FormatResolve renders the outcome of closing a stale session.
func FormatResolve(resp *app.ResolveResponse) string {
	if resp.Notice != domain.NoticeNone {
		return FormatNotice(resp.Notice)
	}
	return fmt.Sprintf("%s %s %s\n",
		StyleGreen.Render(fmt.Sprintf("Closed session on %s at %s.", resp.Day, resp.EndedAt.Format(time.DateTime))),
		Dim("Session duration:"),
		Bold(FormatDuration(resp.Seconds)))
}
