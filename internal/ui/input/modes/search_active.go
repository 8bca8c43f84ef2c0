package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"m3search/internal/domain"
	"m3search/internal/ui/input/types"
)

// SearchActiveMode handles keys while the search field has focus.
// Keys it doesn't consume are text edits for the search field.
type SearchActiveMode struct {
	keys types.KeyMap
}

func NewSearchActiveMode(keys types.KeyMap) *SearchActiveMode {
	return &SearchActiveMode{keys: keys}
}

func (m *SearchActiveMode) Name() string {
	return "search-active"
}

func (m *SearchActiveMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Clear):
		return clearSearch(), true
	case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Blur):
		return []types.Action{types.Submit(domain.ToggleSearchBarActiveEvent{Active: false})}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true
	}
	return nil, false
}

func (m *SearchActiveMode) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Submit, m.keys.Blur, m.keys.Clear, m.keys.Down}
}

func (m *SearchActiveMode) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Submit, m.keys.Blur, m.keys.Clear},
		{m.keys.Up, m.keys.Down},
		{m.keys.ForceQuit},
	}
}
