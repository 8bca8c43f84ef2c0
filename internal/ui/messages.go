package ui

import (
	"time"

	"m3search/internal/domain"
)

// SnapshotMsg carries a snapshot published by the landing store
type SnapshotMsg struct {
	State domain.State
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// statusTimeout is how long a status message stays on screen
const statusTimeout = 3 * time.Second
