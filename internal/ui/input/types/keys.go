package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding used by the input modes
type KeyMap struct {
	Search    key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Activate  key.Binding
	Dismiss   key.Binding
	Clear     key.Binding
	Submit    key.Binding
	Blur      key.Binding
	Up        key.Binding
	Down      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/", "s"),
			key.WithHelp("/", "search"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "prev tab"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", "/", "i"),
			key.WithHelp("enter", "type query"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "close search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear & close"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop typing"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "prev result"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next result"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// StepTab returns the tab delta positions away from current, wrapping around.
// A current tab missing from tabs counts as sitting just before the first one.
func StepTab(tabs []string, current string, delta int) string {
	if len(tabs) == 0 {
		return current
	}

	idx := -1
	for i, tab := range tabs {
		if tab == current {
			idx = i
			break
		}
	}
	if idx < 0 && delta < 0 {
		idx = 0
	}

	n := len(tabs)
	next := ((idx+delta)%n + n) % n
	return tabs[next]
}
