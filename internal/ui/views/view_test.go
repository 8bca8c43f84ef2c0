package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func baseState() ViewState {
	return ViewState{
		Width:       80,
		Height:      24,
		Title:       "People",
		Prompt:      "Search for an Associate",
		Tabs:        []string{"Recent", "Followed"},
		SelectedTab: "Recent",
		ShowTabs:    true,
	}
}

func TestRenderTitleBarWithTabs(t *testing.T) {
	out := NewRenderer().Render(baseState())

	assert.Contains(t, out, "People")
	assert.Contains(t, out, "Recent")
	assert.Contains(t, out, "Followed")
	assert.Contains(t, out, "Search for an Associate")
	assert.NotContains(t, out, PlaceholderInactive)
}

func TestRenderHidesTabsWhenRequested(t *testing.T) {
	state := baseState()
	state.ShowTabs = false

	out := NewRenderer().Render(state)
	assert.NotContains(t, out, "Followed")
}

func TestRenderSearchBarPlaceholders(t *testing.T) {
	r := NewRenderer()

	state := baseState()
	state.SearchVisible = true
	assert.Contains(t, r.Render(state), PlaceholderInactive)

	state.SearchQuery = "ann"
	out := r.Render(state)
	assert.Contains(t, out, "ann")
	assert.NotContains(t, out, PlaceholderInactive)

	state.SearchQuery = ""
	state.SearchActive = true
	assert.Contains(t, r.Render(state), PlaceholderActive)
}

func TestRenderResultsWindowFollowsCursor(t *testing.T) {
	state := baseState()
	state.SearchVisible = true
	state.SearchActive = true
	state.ShowTabs = false
	state.ShowResults = true
	state.SearchQuery = "ann"
	for i := 0; i < 20; i++ {
		state.Results = append(state.Results, Result{
			Title:       "Result " + string(rune('A'+i)),
			Description: "desc",
		})
	}

	r := NewRenderer()
	out := r.Render(state)
	assert.Contains(t, out, "Result A")
	assert.NotContains(t, out, "Result T")
	assert.NotContains(t, out, "Search for an Associate")

	state.Cursor = 19
	out = r.Render(state)
	assert.Contains(t, out, "Result T")
	assert.NotContains(t, out, "Result A")
	assert.Contains(t, out, "of 20")
}

func TestRenderFitsTerminalHeight(t *testing.T) {
	state := baseState()
	state.HelpView = "/ search • q quit"
	state.ShowHelpBar = true

	out := NewRenderer().Render(state)
	assert.LessOrEqual(t, lipgloss.Height(out), state.Height)
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, " \n"), "q quit"))
}

func TestRenderDefaultsSizeBeforeFirstResize(t *testing.T) {
	state := baseState()
	state.Width = 0
	state.Height = 0

	out := NewRenderer().Render(state)
	assert.Equal(t, DefaultHeight, lipgloss.Height(out))
}

func TestResultWindow(t *testing.T) {
	tests := []struct {
		total, cursor, visible int
		start, end             int
	}{
		{20, 0, 5, 0, 5},
		{20, 4, 5, 0, 5},
		{20, 5, 5, 1, 6},
		{20, 19, 5, 15, 20},
		{3, 0, 5, 0, 3},
		{3, 10, 5, 0, 3},
		{0, 0, 5, 0, 0},
		{5, -1, 2, 0, 2},
	}
	for _, tt := range tests {
		start, end := ResultWindow(tt.total, tt.cursor, tt.visible)
		assert.Equal(t, tt.start, start, "%+v", tt)
		assert.Equal(t, tt.end, end, "%+v", tt)
	}
}
