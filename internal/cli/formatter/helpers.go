package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatDuration renders seconds as "{h}h {m}m", flooring into whole hours
// and then whole minutes of the remainder. Seconds are never shown and
// nothing is rounded up.
func FormatDuration(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "0h 0m"
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
}

// ClockTime formats t as a wall-clock time of day.
func ClockTime(t time.Time) string {
	return t.Format("15:04:05")
}

// DayLabel renders a day key with a relative hint for today and yesterday.
func DayLabel(day domain.DayKey, now time.Time) string {
	switch day {
	case domain.DayKeyOf(now):
		return string(day) + Dim(" (today)")
	case domain.DayKeyOf(now.AddDate(0, 0, -1)):
		return string(day) + Dim(" (yesterday)")
	default:
		return string(day)
	}
}
