package domain

// Predefined tab identifiers
const (
	TabRecent   = "Recent"
	TabFollowed = "Followed"
)

// DefaultTab is the tab selected when a screen session starts
const DefaultTab = TabRecent

// State is an immutable snapshot of the landing screen
type State struct {
	SelectedTab      string
	SearchQuery      string
	SearchBarActive  bool // search input has focus and shows live results
	SearchBarVisible bool // search bar replaces the title bar
}

// DefaultState returns the snapshot a new screen session starts from
func DefaultState() State {
	return State{
		SelectedTab: DefaultTab,
	}
}

// ShowsResults reports whether the placeholder result list should be shown
func (s State) ShowsResults() bool {
	return s.SearchBarVisible && s.SearchBarActive && s.SearchQuery != ""
}

// ShowsTabs reports whether the tab row is shown
func (s State) ShowsTabs() bool {
	return !s.SearchBarActive
}
