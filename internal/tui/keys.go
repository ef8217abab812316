package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search  key.Binding
	Cycle   key.Binding
	UpDown  key.Binding
	Style   key.Binding
	Single  key.Binding
	Refresh key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Close   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search structure")),
		Cycle:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "structure")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select disulfide")),
		Style:   key.NewBinding(key.WithKeys("s", "1", "2", "3"), key.WithHelp("s/1-3", "style")),
		Single:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "single view")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Cycle, k.UpDown, k.Style, k.Single, k.Refresh, k.Quit}
}

func (k keyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Close, k.Quit}
}
