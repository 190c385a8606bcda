// Package ui holds the terminal presentation helpers liftsheet's CLI uses:
// colors and styles, width-aware column layout, and Markdown rendering.
package ui

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// FormatTimeRel returns a relative time string (e.g., "2h ago", "3d ago")
func FormatTimeRel(t time.Time) string {
	return formatTimeRelAt(t, time.Now())
}

func formatTimeRelAt(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		// Future timestamps treated as now
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	default:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	}
}

// Truncate cuts s to maxWidth terminal cells, ending with "…" when cut.
func Truncate(s string, maxWidth int) string {
	return truncateWidth(s, maxWidth, "…")
}

func truncateWidth(s string, maxWidth int, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	suffixWidth := runewidth.StringWidth(suffix)
	if suffixWidth > maxWidth {
		return runewidth.Truncate(suffix, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth-suffixWidth, "") + suffix
}

// Cell truncates s and pads it to exactly width cells.
func Cell(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}
