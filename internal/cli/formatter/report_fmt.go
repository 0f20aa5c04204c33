package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
)

// FormatReport renders the per-day report table, most recent day first.
func FormatReport(resp *app.ReportResponse, now time.Time) string {
	if resp.Notice != domain.NoticeNone {
		return FormatNotice(resp.Notice)
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Work time report (last %d days)", len(resp.Rows))))
	b.WriteString("\n\n")

	headers := []string{"DATE", "DURATION", "SESSIONS", ""}
	rows := make([][]string, 0, len(resp.Rows))
	sessions := 0
	for _, row := range resp.Rows {
		active := ""
		if row.Active {
			active = StyleGreen.Render("●")
		}
		rows = append(rows, []string{
			DayLabel(row.Day, now),
			FormatDuration(row.Seconds),
			strconv.Itoa(row.Sessions),
			active,
		})
		sessions += row.Sessions
	}
	b.WriteString(RenderTable(headers, rows, "Total", FormatDuration(resp.TotalSeconds), strconv.Itoa(sessions)))
	return b.String()
}
