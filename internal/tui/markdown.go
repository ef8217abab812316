package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/protlab/ssbrowse/internal/browser"
)

// markdownCache lazily builds a glamour renderer for the session theme and
// rebuilds it when the wrap width changes. Rendering falls back to the raw
// markdown if the renderer cannot be constructed.
type markdownCache struct {
	theme    browser.Theme
	wrap     int
	renderer *glamour.TermRenderer
}

func newMarkdownCache(theme browser.Theme, wrap int) *markdownCache {
	if wrap < 0 {
		wrap = 0
	}
	return &markdownCache{theme: theme, wrap: wrap}
}

func (m *markdownCache) SetWrap(width int) {
	if width < 0 {
		width = 0
	}
	if m.wrap != width {
		m.wrap = width
		m.renderer = nil
	}
}

func (m *markdownCache) Render(content string) string {
	r := m.ensure()
	if r == nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}

func (m *markdownCache) ensure() *glamour.TermRenderer {
	if m.renderer != nil {
		return m.renderer
	}
	style := "light"
	if !m.theme.Light() {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(m.wrap),
	)
	if err != nil {
		return nil
	}
	m.renderer = r
	return r
}
