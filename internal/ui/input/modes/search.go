package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"m3search/internal/domain"
	"m3search/internal/ui/input/types"
)

// SearchMode handles keys while the search bar is shown but not focused
type SearchMode struct {
	keys types.KeyMap
}

func NewSearchMode(keys types.KeyMap) *SearchMode {
	return &SearchMode{keys: keys}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	case key.Matches(msg, m.keys.Activate):
		return []types.Action{types.Submit(domain.ToggleSearchBarActiveEvent{Active: true})}, true
	case key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.Clear):
		return clearSearch(), true
	}

	return handleTabKeys(m.keys, msg, ctx)
}

func (m *SearchMode) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Activate, m.keys.Dismiss, m.keys.NextTab, m.keys.Quit}
}

func (m *SearchMode) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Activate, m.keys.Dismiss},
		{m.keys.NextTab, m.keys.PrevTab},
		{m.keys.Help, m.keys.Quit},
	}
}

// clearSearch empties the field and runs the close sequence
func clearSearch() []types.Action {
	return []types.Action{
		types.ResetInputAction{},
		types.Submit(domain.ClearSearchEvents()...),
	}
}
