package types

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"m3search/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeTitleBar Mode = iota
	ModeSearch
	ModeSearchActive
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeSearchActive:
		return "search-active"
	default:
		return "title"
	}
}

// ModeFor derives the input mode from a landing snapshot.
// An active search bar that isn't visible behaves like the title bar.
func ModeFor(s domain.State) Mode {
	switch {
	case s.SearchBarVisible && s.SearchBarActive:
		return ModeSearchActive
	case s.SearchBarVisible:
		return ModeSearch
	default:
		return ModeTitleBar
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	State() domain.State
	Tabs() []string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string

	// ShortHelp and FullHelp make every mode a help.KeyMap
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}
