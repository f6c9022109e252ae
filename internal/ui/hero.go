package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHero renders the hero section: title, tagline, and the two
// call-to-action buttons.
func (m Model) renderHero() string {
	st := m.styles

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true).
		Render(m.tr.T("hero.title"))

	tagline := st.Text.Render(m.tr.T("hero.tagline"))

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		st.Button.Render(m.tr.T("hero.cta")),
		"  ",
		st.ButtonGhost.Render(m.tr.T("hero.cta_secondary")),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", tagline, "", buttons)

	width := m.width - 4
	if width < 30 {
		width = 30
	}
	return st.Card.Width(width).Padding(1, 2).Render(body)
}
