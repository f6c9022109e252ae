package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderFooter renders the bottom line: an active toast takes
// precedence, otherwise the key help from bubbles/help.
func (m Model) renderFooter() string {
	if m.toast.visible {
		return m.styles.Toast.Render(m.toast.text)
	}
	return m.styles.Footer.Render(m.help.View(m.keys))
}

// place pads the page into the full terminal height so the footer
// stays pinned to the bottom row.
func (m Model) place(header, body, footer string) string {
	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}
	content := lipgloss.NewStyle().
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
