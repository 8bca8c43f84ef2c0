package domain

// Reduce applies an event to a snapshot and returns the next snapshot.
// Fields the event does not name are carried over unchanged.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case SelectTabEvent:
		s.SelectedTab = e.Tab
	case SearchClickEvent:
		s.SearchBarVisible = true
	case SearchDismissEvent:
		s.SearchBarVisible = false
		s.SearchBarActive = false
	case SearchQueryUpdateEvent:
		s.SearchQuery = e.Query
	case ToggleSearchBarActiveEvent:
		s.SearchBarActive = e.Active
	}
	return s
}

// ReduceAll folds a sequence of events over a snapshot
func ReduceAll(s State, events ...Event) State {
	for _, e := range events {
		s = Reduce(s, e)
	}
	return s
}
