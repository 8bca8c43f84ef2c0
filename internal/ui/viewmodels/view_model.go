package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"m3search/internal/config"
	"m3search/internal/domain"
	"m3search/internal/ui/views"
)

// ViewModel transforms a landing snapshot into view-ready data
type ViewModel struct {
	config        *config.Config
	snapshot      domain.State
	width         int
	height        int
	cursor        int
	help          help.Model
	keys          help.KeyMap
	statusMessage string
}

// NewViewModel creates a new view model
func NewViewModel(cfg *config.Config) *ViewModel {
	return &ViewModel{
		config:   cfg,
		snapshot: domain.DefaultState(),
		help:     help.New(),
	}
}

// SetSnapshot sets the snapshot to render
func (vm *ViewModel) SetSnapshot(s domain.State) {
	vm.snapshot = s
	vm.cursor = vm.clampCursor(vm.cursor)
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetKeys sets the bindings shown in the help bar
func (vm *ViewModel) SetKeys(keys help.KeyMap) {
	vm.keys = keys
}

// ToggleFullHelp switches the help bar between short and full views
func (vm *ViewModel) ToggleFullHelp() {
	vm.help.ShowAll = !vm.help.ShowAll
}

// ShowingFullHelp reports whether the full help is displayed
func (vm *ViewModel) ShowingFullHelp() bool {
	return vm.help.ShowAll
}

// SetStatusMessage sets the status line message
func (vm *ViewModel) SetStatusMessage(msg string) {
	vm.statusMessage = msg
}

// MoveCursor moves the result cursor, staying within the result list
func (vm *ViewModel) MoveCursor(delta int) {
	vm.cursor = vm.clampCursor(vm.cursor + delta)
}

// Cursor returns the highlighted result index
func (vm *ViewModel) Cursor() int {
	return vm.cursor
}

// Results returns the placeholder results for the current snapshot
func (vm *ViewModel) Results() []views.Result {
	if !vm.snapshot.ShowsResults() {
		return nil
	}
	return PlaceholderResults(vm.snapshot.SearchQuery, vm.config.ResultCount)
}

func (vm *ViewModel) clampCursor(c int) int {
	n := 0
	if vm.snapshot.ShowsResults() {
		n = vm.config.ResultCount
	}
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(input textinput.Model) views.ViewState {
	s := vm.snapshot

	helpView := ""
	if vm.keys != nil {
		helpView = vm.help.View(vm.keys)
	}

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Title:         vm.config.Title,
		Prompt:        vm.config.Prompt,
		Tabs:          vm.config.Tabs,
		SelectedTab:   s.SelectedTab,
		SearchVisible: s.SearchBarVisible,
		SearchActive:  s.SearchBarActive,
		SearchQuery:   s.SearchQuery,
		SearchInput:   input.View(),
		ShowResults:   s.ShowsResults(),
		ShowTabs:      s.ShowsTabs(),
		Results:       vm.Results(),
		Cursor:        vm.cursor,
		ShowHelpBar:   vm.config.UISettings.ShowHelpBar,
		HelpView:      helpView,
		StatusMessage: vm.statusMessage,
	}
}
