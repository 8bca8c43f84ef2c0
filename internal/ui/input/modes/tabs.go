package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"m3search/internal/domain"
	"m3search/internal/ui/input/types"
)

// handleTabKeys covers tab switching, shared by every mode that shows the tab row
func handleTabKeys(keys types.KeyMap, msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	current := ctx.State().SelectedTab

	switch {
	case key.Matches(msg, keys.NextTab):
		return selectTab(types.StepTab(ctx.Tabs(), current, 1)), true
	case key.Matches(msg, keys.PrevTab):
		return selectTab(types.StepTab(ctx.Tabs(), current, -1)), true
	}

	// Number keys jump straight to a tab
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx := int(s[0] - '1')
		if tabs := ctx.Tabs(); idx < len(tabs) {
			return selectTab(tabs[idx]), true
		}
		return nil, true
	}

	return nil, false
}

func selectTab(tab string) []types.Action {
	return []types.Action{types.Submit(domain.SelectTabEvent{Tab: tab})}
}
