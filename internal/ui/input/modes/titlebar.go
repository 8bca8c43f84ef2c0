package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"m3search/internal/domain"
	"m3search/internal/ui/input/types"
)

// TitleBarMode handles keys while the title bar is shown
type TitleBarMode struct {
	keys types.KeyMap
}

func NewTitleBarMode(keys types.KeyMap) *TitleBarMode {
	return &TitleBarMode{keys: keys}
}

func (m *TitleBarMode) Name() string {
	return "title"
}

func (m *TitleBarMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.Submit(domain.SearchClickEvent{})}, true
	}

	return handleTabKeys(m.keys, msg, ctx)
}

func (m *TitleBarMode) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Search, m.keys.NextTab, m.keys.Help, m.keys.Quit}
}

func (m *TitleBarMode) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Search},
		{m.keys.NextTab, m.keys.PrevTab},
		{m.keys.Help, m.keys.Quit},
	}
}
