package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"m3search/internal/ui/input/modes"
	"m3search/internal/ui/input/types"
)

// Handler routes key presses to the mode matching the current snapshot
type Handler struct {
	keys  types.KeyMap
	modes map[types.Mode]types.ModeHandler
}

func New() *Handler {
	keys := types.DefaultKeyMap()

	h := &Handler{
		keys:  keys,
		modes: make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeTitleBar] = modes.NewTitleBarMode(keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode(keys)
	h.modes[types.ModeSearchActive] = modes.NewSearchActiveMode(keys)

	return h
}

// HandleKey returns the actions for a key and whether the key was consumed.
// Unconsumed keys in the active search mode belong to the text field.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.Mode(ctx)
	if handler == nil {
		return nil, false
	}
	return handler.HandleKey(msg, ctx)
}

// Mode returns the handler for the context's current snapshot
func (h *Handler) Mode(ctx types.Context) types.ModeHandler {
	return h.modes[types.ModeFor(ctx.State())]
}

// IsTextMode reports whether unconsumed keys should edit the search field
func (h *Handler) IsTextMode(ctx types.Context) bool {
	return types.ModeFor(ctx.State()) == types.ModeSearchActive
}

// Keys returns the key bindings shared by all modes
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}
