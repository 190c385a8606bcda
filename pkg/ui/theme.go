package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/liftsheet/pkg/model"
)

// TermProfile is the color profile of stdout, detected once at init.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// Styled reports whether stdout can show colors and rendered Markdown.
func Styled() bool {
	return TermProfile > colorprofile.Ascii
}

// sheetColors maps the opaque theme color of a sheet to a terminal color.
// Unknown names fall back to the primary color.
var sheetColors = map[string]lipgloss.AdaptiveColor{
	"blue":   {Light: "#0066CC", Dark: "#6699FF"},
	"red":    {Light: "#CC0000", Dark: "#FF5555"},
	"green":  {Light: "#007700", Dark: "#50FA7B"},
	"orange": {Light: "#B06800", Dark: "#FFB86C"},
	"purple": {Light: "#6B47D9", Dark: "#BD93F9"},
	"teal":   {Light: "#008080", Dark: "#00CED1"},
}

// ThemeColor returns the accent color for a sheet theme.
func ThemeColor(t model.Theme) lipgloss.AdaptiveColor {
	if c, ok := sheetColors[t.Color]; ok {
		return c
	}
	return ColorPrimary
}
