package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default terminal size used before the first WindowSizeMsg arrives
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Placeholder text of the search field
const (
	PlaceholderActive   = "Search"
	PlaceholderInactive = "Press enter to begin search"
)

// illustration stands in for the people artwork above the prompt
var illustration = []string{
	"  o   o  ",
	" /|\\ /|\\ ",
	" / \\ / \\ ",
}

// Result is one placeholder search result
type Result struct {
	Title       string
	Description string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title  string
	Prompt string

	Tabs        []string
	SelectedTab string

	SearchVisible bool
	SearchActive  bool
	SearchQuery   string
	SearchInput   string // rendered text input, used while active

	ShowResults bool
	ShowTabs    bool
	Results     []Result
	Cursor      int

	ShowHelpBar   bool
	HelpView      string
	StatusMessage string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 {
		state.Width = DefaultWidth
	}
	if state.Height <= 0 {
		state.Height = DefaultHeight
	}

	header := []string{r.renderTopBar(state)}
	if state.ShowTabs {
		header = append(header, r.renderTabs(state))
	}

	var footer []string
	if state.StatusMessage != "" {
		footer = append(footer, r.styles.Status.Render(state.StatusMessage))
	}
	if state.ShowHelpBar && state.HelpView != "" {
		footer = append(footer, r.styles.Help.Render(state.HelpView))
	}

	top := lipgloss.JoinVertical(lipgloss.Left, header...)
	bottom := strings.Join(footer, "\n")

	bodyHeight := state.Height - lipgloss.Height(top)
	if bottom != "" {
		bodyHeight -= lipgloss.Height(bottom)
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	if state.ShowResults {
		body = r.renderResults(state, bodyHeight)
	} else {
		body = r.renderPrompt(state, bodyHeight)
	}

	parts := []string{top, body}
	if bottom != "" {
		parts = append(parts, bottom)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderTopBar renders either the title bar or the search field
func (r *Renderer) renderTopBar(state ViewState) string {
	if !state.SearchVisible {
		return r.renderTitleBar(state)
	}

	text := state.SearchQuery
	switch {
	case state.SearchActive:
		text = state.SearchInput
		if state.SearchQuery == "" && text == "" {
			text = r.styles.SearchPlaceholder.Render(PlaceholderActive)
		}
	case text == "":
		text = r.styles.SearchPlaceholder.Render(PlaceholderInactive)
	}

	icon := r.styles.SearchIcon.Render("⌕")
	closeIcon := r.styles.SearchIcon.Render("✕")

	// Border and padding take four columns
	inner := state.Width - 4
	gap := inner - lipgloss.Width(icon) - lipgloss.Width(text) - lipgloss.Width(closeIcon) - 2
	if gap < 1 {
		gap = 1
	}
	line := icon + " " + text + strings.Repeat(" ", gap) + " " + closeIcon

	return r.styles.SearchField.Width(state.Width - 2).Render(line)
}

func (r *Renderer) renderTitleBar(state ViewState) string {
	back := r.styles.TopBarIcon.Render("←")
	search := r.styles.TopBarIcon.Render("⌕ /")
	title := r.styles.TopBarTitle.Render(state.Title)

	middle := state.Width - lipgloss.Width(back) - lipgloss.Width(search)
	if middle < lipgloss.Width(title) {
		middle = lipgloss.Width(title)
	}
	centered := lipgloss.PlaceHorizontal(middle, lipgloss.Center, title,
		lipgloss.WithWhitespaceBackground(colorPrimary))

	return r.styles.TopBar.Render(back + centered + search)
}

// renderTabs renders the toggle button row
func (r *Renderer) renderTabs(state ViewState) string {
	buttons := make([]string, 0, len(state.Tabs)*2)
	for i, tab := range state.Tabs {
		if i > 0 {
			buttons = append(buttons, " ")
		}
		if tab == state.SelectedTab {
			buttons = append(buttons, r.styles.TabSelected.Render(tab))
		} else {
			buttons = append(buttons, r.styles.Tab.Render(tab))
		}
	}
	return r.styles.TabRow.Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
}

// renderPrompt renders the illustration and the call to action
func (r *Renderer) renderPrompt(state ViewState, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		r.styles.Illustration.Render(strings.Join(illustration, "\n")),
		"",
		r.styles.Prompt.Render(state.Prompt),
	)
	return lipgloss.Place(state.Width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderResults renders the window of results around the cursor
func (r *Renderer) renderResults(state ViewState, height int) string {
	if len(state.Results) == 0 {
		return lipgloss.Place(state.Width, height, lipgloss.Center, lipgloss.Center,
			r.styles.Scroll.Render("No results"))
	}

	// One line is reserved for the scroll indicator, each result takes two
	visible := (height - 1) / 2
	if visible < 1 {
		visible = 1
	}
	offset, end := ResultWindow(len(state.Results), state.Cursor, visible)

	var b strings.Builder
	for i := offset; i < end; i++ {
		res := state.Results[i]
		marker := "  "
		title := r.styles.ResultTitle.Render(res.Title)
		if i == state.Cursor {
			marker = r.styles.ResultCursor.Render("▸ ")
			title = r.styles.ResultCursor.Render(res.Title)
		}
		b.WriteString(marker + title + "\n")
		b.WriteString("  " + r.styles.ResultDesc.Render(res.Description) + "\n")
	}
	b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("%d-%d of %d", offset+1, end, len(state.Results))))

	return lipgloss.NewStyle().Height(height).Padding(0, 1).Render(b.String())
}

// ResultWindow returns the [start, end) range of results to show so the
// cursor stays visible.
func ResultWindow(total, cursor, visible int) (int, int) {
	if visible <= 0 || total <= 0 {
		return 0, 0
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > total {
		end = total
	}
	return start, end
}
