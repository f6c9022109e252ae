package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atelierkast/vitrine/internal/carousel"
)

// renderServices renders the services grid. Column count follows the
// same width step function the carousel uses, so the two sections
// reflow together.
func (m Model) renderServices() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.Heading.Render(m.tr.T("services.heading")))
	b.WriteString("\n")

	cols := carousel.VisibleCountFor(viewportUnits(m.width))
	cardWidth := (m.width-4)/cols - 4
	if cardWidth < 18 {
		cardWidth = 18
	}

	var rows []string
	var row []string
	for _, svc := range m.catalog.Services {
		title := st.Accent.Render(svc.Icon + " " + m.tr.T(svc.TitleID))
		body := st.MutedText.Width(cardWidth).Render(m.tr.T(svc.BodyID))
		card := st.Card.Width(cardWidth + 2).Render(title + "\n" + body)
		row = append(row, card)
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}
