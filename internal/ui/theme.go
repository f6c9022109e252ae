package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the page.
type Theme struct {
	Name string

	Background string
	Surface    string

	Border      string
	BorderFocus string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string
}

var themes = []Theme{
	{
		Name:        "Dracula",
		Background:  "#282a36",
		Surface:     "#343746",
		Border:      "#44475a",
		BorderFocus: "#bd93f9",
		Text:        "#f8f8f2",
		Muted:       "#9ea8c7",
		Faint:       "#6272a4",
		Accent:      "#bd93f9",
		Success:     "#50fa7b",
		Warning:     "#f1fa8c",
		Danger:      "#ff5555",
	},
	{
		Name:        "Slate",
		Background:  "#1c1f26",
		Surface:     "#262a33",
		Border:      "#3b4252",
		BorderFocus: "#88c0d0",
		Text:        "#eceff4",
		Muted:       "#aab2c0",
		Faint:       "#616e88",
		Accent:      "#88c0d0",
		Success:     "#a3be8c",
		Warning:     "#ebcb8b",
		Danger:      "#bf616a",
	},
	{
		Name:        "Paper",
		Background:  "#fafafa",
		Surface:     "#f0f0f0",
		Border:      "#d0d0d0",
		BorderFocus: "#6f42c1",
		Text:        "#24292e",
		Muted:       "#586069",
		Faint:       "#959da5",
		Accent:      "#6f42c1",
		Success:     "#22863a",
		Warning:     "#b08800",
		Danger:      "#cb2431",
	},
}

// GetTheme returns the named theme, defaulting to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme name after the given one, wrapping.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles contains pre-built Lipgloss styles for a theme.
type Styles struct {
	Text      lipgloss.Style
	MutedText lipgloss.Style
	FaintText lipgloss.Style
	Accent    lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style

	Logo        lipgloss.Style
	NavItem     lipgloss.Style
	NavActive   lipgloss.Style
	Heading     lipgloss.Style
	Card        lipgloss.Style
	CardFocus   lipgloss.Style
	Button      lipgloss.Style
	ButtonGhost lipgloss.Style
	Indicator   lipgloss.Style
	IndicatorOn lipgloss.Style
	Footer      lipgloss.Style
	Toast       lipgloss.Style
}

// Styles builds the style set for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		NavItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		CardFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 2),

		ButtonGhost: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 1),

		Indicator:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		IndicatorOn: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Warning)).
			Padding(0, 1),
	}
}
