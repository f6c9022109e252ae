package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atelierkast/vitrine/internal/content"
)

// faqState is the accordion: a cursor over the entries and at most one
// open entry. Opening an entry collapses the previously open one.
type faqState struct {
	cursor int
	open   int // index of the expanded entry, -1 when all collapsed
}

func newFAQState() faqState {
	return faqState{open: -1}
}

func (f *faqState) moveCursor(delta, count int) {
	if count == 0 {
		return
	}
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor > count-1 {
		f.cursor = count - 1
	}
}

// toggle opens the entry under the cursor, or closes it if it is
// already open.
func (f *faqState) toggle() {
	if f.open == f.cursor {
		f.open = -1
		return
	}
	f.open = f.cursor
}

// faqViewportSize sizes the scrollable FAQ body: full width minus the
// card gutter, full height minus the header, heading, and footer rows.
func faqViewportSize(cols, rows int) (width, height int) {
	width = cols - 2
	if width < 24 {
		width = 24
	}
	height = rows - 6
	if height < 3 {
		height = 3
	}
	return width, height
}

// faqBody renders the accordion entries that feed the viewport.
func (m Model) faqBody() string {
	inner := m.faqViewport.Width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	for i, entry := range m.catalog.FAQ {
		b.WriteString(m.renderFAQEntry(i, entry, inner))
		b.WriteString("\n")
	}
	return b.String()
}

// syncFAQViewport refreshes the viewport content. Called whenever the
// accordion, the viewport size, or the language changes, so scrolling
// bounds always match what is on screen.
func (m *Model) syncFAQViewport() {
	m.faqViewport.SetContent(m.faqBody())
}

// renderFAQ renders the accordion section inside its viewport, so the
// body scrolls instead of clipping when answers outgrow the terminal.
func (m Model) renderFAQ() string {
	return m.styles.Heading.Render(m.tr.T("faq.heading")) + "\n" + m.faqViewport.View()
}

func (m Model) renderFAQEntry(i int, entry content.FAQEntry, width int) string {
	st := m.styles
	marker := "▸"
	if m.faq.open == i {
		marker = "▾"
	}

	question := m.tr.T(entry.QuestionID)
	line := marker + " " + question
	if i == m.faq.cursor {
		line = st.Accent.Render(line)
	} else {
		line = st.Text.Render(line)
	}

	card := st.Card
	if i == m.faq.cursor {
		card = st.CardFocus
	}

	if m.faq.open != i {
		return card.Width(width).Render(line)
	}

	answer := st.MutedText.Width(width - 2).Render(m.tr.T(entry.AnswerID))
	return card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, line, "", answer))
}
