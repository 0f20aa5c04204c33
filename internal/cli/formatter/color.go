package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// NoticeStyle returns the style a notice is rendered with. Notices that
// point at a problem in the log are yellow; plain "nothing here" results
// are dimmed.
func NoticeStyle(n domain.Notice) lipgloss.Style {
	switch n {
	case domain.NoticeAlreadyTracking, domain.NoticeStaleSession,
		domain.NoticeNothingToStop, domain.NoticeNoStaleSession:
		return StyleYellow
	case domain.NoticeNoWorkToday, domain.NoticeNoLogs:
		return StyleDim
	default:
		return StyleFg
	}
}

// ActivityIndicator returns "● WORKING" for an active day and "○ IDLE" otherwise.
func ActivityIndicator(active bool) string {
	if active {
		return StyleGreen.Render("● WORKING")
	}
	return StyleDim.Render("○ IDLE")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
