package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/protlab/ssbrowse/internal/browser"
)

// Catppuccin-derived accents; the light theme maps to the Latte variants.
const (
	darkText     = lipgloss.Color("#cdd6f4")
	darkSubtle   = lipgloss.Color("#a6adc8")
	darkOverlay  = lipgloss.Color("#7f849c")
	darkSurface  = lipgloss.Color("#45475a")
	darkAccent   = lipgloss.Color("#89b4fa")
	darkError    = lipgloss.Color("#f38ba8")
	lightText    = lipgloss.Color("#4c4f69")
	lightSubtle  = lipgloss.Color("#5c5f77")
	lightOverlay = lipgloss.Color("#8c8fa1")
	lightSurface = lipgloss.Color("#ccd0da")
	lightAccent  = lipgloss.Color("#1e66f5")
	lightError   = lipgloss.Color("#d20f39")
)

type styles struct {
	header   lipgloss.Style
	box      lipgloss.Style
	boxTitle lipgloss.Style
	listItem lipgloss.Style
	listSel  lipgloss.Style
	disabled lipgloss.Style
	status   lipgloss.Style
	statusErr lipgloss.Style
	footer   lipgloss.Style
}

func newStyles(theme browser.Theme) styles {
	text, subtle, overlay, surface, accent, errc :=
		darkText, darkSubtle, darkOverlay, darkSurface, darkAccent, darkError
	if theme.Light() {
		text, subtle, overlay, surface, accent, errc =
			lightText, lightSubtle, lightOverlay, lightSurface, lightAccent, lightError
	}
	base := lipgloss.NewStyle().Foreground(text)
	return styles{
		header:    base.Bold(true).Padding(0, 1),
		box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(surface).Padding(0, 1),
		boxTitle:  base.Bold(true),
		listItem:  lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		listSel:   lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1),
		disabled:  lipgloss.NewStyle().Foreground(overlay),
		status:    lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		statusErr: lipgloss.NewStyle().Foreground(errc).Padding(0, 1),
		footer:    lipgloss.NewStyle().Foreground(overlay).Padding(0, 1),
	}
}
