package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/liftsheet/pkg/model"
	"github.com/vanderheijden86/liftsheet/pkg/workout"
)

// Adaptive palette for light and dark terminals.
var (
	ColorText    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	DangerStyle  = lipgloss.NewStyle().Foreground(ColorDanger)
	ErrorStyle   = DangerStyle.Bold(true)
)

// RenderSheetName renders a sheet name in its theme color.
func RenderSheetName(s model.Sheet) string {
	return lipgloss.NewStyle().Bold(true).Foreground(ThemeColor(s.Theme)).Render(s.Name)
}

// RenderTrend colors a trend: gains green, losses red, the rest muted.
func RenderTrend(t workout.Trend, unit string) string {
	text := t.Describe(unit)
	switch t.Kind {
	case workout.TrendIncrease:
		return SuccessStyle.Render(text)
	case workout.TrendDecrease:
		return DangerStyle.Render(text)
	default:
		return MutedStyle.Render(text)
	}
}
