package domain

// EventType represents the type of landing screen event
type EventType string

// Event types
const (
	EventSelectTab             EventType = "SelectTab"
	EventSearchClick           EventType = "SearchClick"
	EventSearchDismiss         EventType = "SearchDismiss"
	EventSearchQueryUpdate     EventType = "SearchQueryUpdate"
	EventToggleSearchBarActive EventType = "ToggleSearchBarActive"
)

// Event is the closed set of user intents the landing screen accepts.
// The unexported marker keeps other packages from adding variants.
type Event interface {
	Type() EventType
	landingEvent()
}

// SelectTabEvent is emitted when a tab button is pressed
type SelectTabEvent struct {
	Tab string
}

func (e SelectTabEvent) Type() EventType { return EventSelectTab }
func (SelectTabEvent) landingEvent()     {}

// SearchClickEvent is emitted when the search icon in the title bar is pressed
type SearchClickEvent struct{}

func (e SearchClickEvent) Type() EventType { return EventSearchClick }
func (SearchClickEvent) landingEvent()     {}

// SearchDismissEvent is emitted when the search bar is closed
type SearchDismissEvent struct{}

func (e SearchDismissEvent) Type() EventType { return EventSearchDismiss }
func (SearchDismissEvent) landingEvent()     {}

// SearchQueryUpdateEvent is emitted whenever the search text changes
type SearchQueryUpdateEvent struct {
	Query string
}

func (e SearchQueryUpdateEvent) Type() EventType { return EventSearchQueryUpdate }
func (SearchQueryUpdateEvent) landingEvent()     {}

// ToggleSearchBarActiveEvent is emitted when the search input gains or loses focus
type ToggleSearchBarActiveEvent struct {
	Active bool
}

func (e ToggleSearchBarActiveEvent) Type() EventType { return EventToggleSearchBarActive }
func (ToggleSearchBarActiveEvent) landingEvent()     {}

// ClearSearchEvents is the sequence the search bar's close control submits:
// empty the query, drop focus, then hide the bar.
func ClearSearchEvents() []Event {
	return []Event{
		SearchQueryUpdateEvent{Query: ""},
		ToggleSearchBarActiveEvent{Active: false},
		SearchDismissEvent{},
	}
}
