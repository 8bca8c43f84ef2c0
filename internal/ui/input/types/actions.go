package types

import "m3search/internal/domain"

// SubmitAction forwards landing events to the state container in order
type SubmitAction struct {
	Events []domain.Event
}

func (a SubmitAction) Type() string { return "submit" }

// Submit wraps events in a SubmitAction
func Submit(events ...domain.Event) SubmitAction {
	return SubmitAction{Events: events}
}

// MoveCursorAction moves the highlighted search result
type MoveCursorAction struct {
	Delta int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// ResetInputAction empties the search text field
type ResetInputAction struct{}

func (a ResetInputAction) Type() string { return "reset_input" }

// ShowHelpAction opens the key reference
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// QuitAction exits the application
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
