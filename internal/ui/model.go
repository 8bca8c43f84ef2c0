package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"m3search/internal/config"
	"m3search/internal/domain"
	"m3search/internal/landing"
	"m3search/internal/ui/input"
	inputtypes "m3search/internal/ui/input/types"
	"m3search/internal/ui/viewmodels"
	"m3search/internal/ui/views"
)

// Model is the presentation layer of the landing screen. Key handling reads
// the store's current snapshot; rendering follows the snapshots delivered
// through SnapshotMsg.
type Model struct {
	store  *landing.Store
	config *config.Config

	textInput   textinput.Model
	syncedQuery string // last query copied from the store into textInput
	inPagerMode bool   // tracks if we're currently in pager mode

	inputHandler *input.Handler
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model bound to a landing store
func NewModel(store *landing.Store, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the view
	ti.Placeholder = views.PlaceholderActive

	m := &Model{
		store:        store,
		config:       cfg,
		textInput:    ti,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(cfg),
	}
	m.helpRenderer = NewHelpRenderer(m.inputHandler.Keys())
	m.viewModel.SetSnapshot(store.Current())
	m.syncInput()

	return m
}

// SetProgram sets the Bubble Tea program reference used by the help pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// State implements the input context with the store's latest snapshot
func (m *Model) State() domain.State {
	return m.store.Current()
}

// Tabs implements the input context
func (m *Model) Tabs() []string {
	return m.config.Tabs
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		// Leave room for the border, padding and icons of the search field
		if w := msg.Width - 12; w > 0 {
			m.textInput.Width = w
		}
		return m, nil

	case SnapshotMsg:
		m.viewModel.SetSnapshot(msg.State)
		m.syncInput()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the inline full help
			log.Printf("Help pager failed: %v", msg.err)
			m.viewModel.ToggleFullHelp()
			return m, m.SetStatus("Help pager unavailable: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.viewModel.SetStatusMessage("")
		return m, nil
	}

	// Cursor blink and other text input messages
	if m.textInput.Focused() {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key through the input modes, then to the text field
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, consumed := m.inputHandler.HandleKey(msg, m)

	var cmds []tea.Cmd
	if !consumed && m.inputHandler.IsTextMode(m) {
		if !m.textInput.Focused() {
			cmds = append(cmds, m.textInput.Focus())
		}

		before := m.textInput.Value()
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)

		// Only edits reach the store; the field may hold a sanitized copy
		if value := m.textInput.Value(); value != before {
			m.syncedQuery = value
			m.store.Submit(domain.SearchQueryUpdateEvent{Query: value})
		}
	}

	cmds = append(cmds, m.applyActions(actions)...)
	m.syncInput()

	return tea.Batch(cmds...)
}

// applyActions executes the actions produced by an input mode
func (m *Model) applyActions(actions []inputtypes.Action) []tea.Cmd {
	var cmds []tea.Cmd

	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.SubmitAction:
			m.store.SubmitAll(a.Events...)

		case inputtypes.ResetInputAction:
			m.textInput.Reset()

		case inputtypes.MoveCursorAction:
			m.viewModel.MoveCursor(a.Delta)

		case inputtypes.ShowHelpAction:
			if m.helpOps == nil {
				m.viewModel.ToggleFullHelp()
				continue
			}
			cmds = append(cmds, m.fetchHelpPager(m.helpRenderer.RenderHelpContent(m.config.Title)))

		case inputtypes.QuitAction:
			cmds = append(cmds, tea.Quit)

		default:
			log.Printf("Unhandled input action: %s", action.Type())
		}
	}

	return cmds
}

// syncInput keeps the text field's value and focus in line with the store
func (m *Model) syncInput() {
	current := m.store.Current()

	if current.SearchQuery != m.syncedQuery {
		m.syncedQuery = current.SearchQuery
		m.textInput.SetValue(current.SearchQuery)
	}

	if current.SearchBarVisible && current.SearchBarActive {
		if !m.textInput.Focused() {
			m.textInput.Focus()
		}
	} else if m.textInput.Focused() {
		m.textInput.Blur()
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// SetStatus shows a transient status message
func (m *Model) SetStatus(format string, args ...interface{}) tea.Cmd {
	m.viewModel.SetStatusMessage(fmt.Sprintf(format, args...))
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View implements tea.Model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetKeys(m.inputHandler.Mode(m))
	return m.renderer.Render(m.viewModel.BuildViewState(m.textInput))
}
