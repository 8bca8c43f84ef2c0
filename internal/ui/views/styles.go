package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Brand colors of the landing screen
const (
	colorPrimary   = lipgloss.Color("#0D3B66")
	colorOnPrimary = lipgloss.Color("#FFFFFF")
	colorOutline   = lipgloss.Color("241")
)

// Styles contains all the style definitions for the UI
type Styles struct {
	TopBar            lipgloss.Style
	TopBarTitle       lipgloss.Style
	TopBarIcon        lipgloss.Style
	SearchField       lipgloss.Style
	SearchPlaceholder lipgloss.Style
	SearchIcon        lipgloss.Style
	TabRow            lipgloss.Style
	Tab               lipgloss.Style
	TabSelected       lipgloss.Style
	ResultTitle       lipgloss.Style
	ResultDesc        lipgloss.Style
	ResultCursor      lipgloss.Style
	Illustration      lipgloss.Style
	Prompt            lipgloss.Style
	Scroll            lipgloss.Style
	Help              lipgloss.Style
	Status            lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		TopBar: lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorOnPrimary),
		TopBarTitle: lipgloss.NewStyle().
			Bold(true).
			Background(colorPrimary).
			Foreground(colorOnPrimary),
		TopBarIcon: lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorOnPrimary).
			Padding(0, 1),
		SearchField: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOutline).
			Padding(0, 1),
		SearchPlaceholder: lipgloss.NewStyle().Faint(true),
		SearchIcon:        lipgloss.NewStyle().Foreground(colorOutline),
		TabRow: lipgloss.NewStyle().
			Padding(1, 2, 0, 2),
		Tab: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOutline),
		TabSelected: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOutline).
			Background(colorPrimary).
			Foreground(colorOnPrimary),
		ResultTitle:  lipgloss.NewStyle(),
		ResultDesc:   lipgloss.NewStyle().Faint(true),
		ResultCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Illustration: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Prompt:       lipgloss.NewStyle().Bold(true),
		Scroll:       lipgloss.NewStyle().Foreground(colorOutline).Italic(true),
		Help:         lipgloss.NewStyle().Faint(true).Padding(0, 1),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1),
	}
}
