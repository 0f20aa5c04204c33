package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
)

// FormatStatus renders today's total. An open session switches the wording
// from "Worked" to "Currently working".
func FormatStatus(resp *app.StatusResponse) string {
	if resp.Notice != domain.NoticeNone {
		return FormatNotice(resp.Notice)
	}

	prefix := "Worked"
	if resp.Active {
		prefix = "Currently working"
	}
	return fmt.Sprintf("%s today: %s\n", prefix, Bold(FormatDuration(resp.Seconds)))
}

// FormatStatusPanel renders the boxed status shown by the live view.
func FormatStatusPanel(resp *app.StatusResponse) string {
	var b strings.Builder
	b.WriteString(ActivityIndicator(resp.Active))
	b.WriteString("\n\n")

	if resp.Notice != domain.NoticeNone {
		b.WriteString(NoticeStyle(resp.Notice).Render(resp.Notice.Message()))
		return RenderBox(string(resp.Day), b.String())
	}

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Total   "), Bold(FormatDuration(resp.Seconds))))
	b.WriteString(fmt.Sprintf("%s  %d", Dim("Sessions"), resp.Sessions))
	if resp.ActiveSince != nil {
		b.WriteString(fmt.Sprintf("\n%s  %s", Dim("Since   "), ClockTime(*resp.ActiveSince)))
	}
	return RenderBox(string(resp.Day), b.String())
}
