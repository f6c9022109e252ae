package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atelierkast/vitrine/internal/carousel"
)

// renderTestimonials renders the carousel section: the visible window
// of slides, the position indicators, the navigation controls, and the
// status announcement. When the carousel never mounted it degrades to
// a static, non-interactive list.
func (m Model) renderTestimonials() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.Heading.Render(m.tr.T("testimonials.heading")))
	b.WriteString("\n")

	if m.car == nil {
		if !m.carInert {
			b.WriteString(st.FaintText.Render("…"))
			return b.String()
		}
		// Inert fallback: all slides stacked, no controls.
		for _, tm := range m.catalog.Testimonials {
			b.WriteString(m.renderSlide(tm.QuoteID, m.width-8) + "\n")
		}
		return b.String()
	}

	first := m.car.CurrentIndex()
	count := m.car.VisibleCount()
	cardWidth := (m.width-6)/count - 4
	if cardWidth < 22 {
		cardWidth = 22
	}

	var cards []string
	for i := first; i < first+count && i < len(m.catalog.Testimonials); i++ {
		cards = append(cards, m.renderSlide(m.catalog.Testimonials[i].QuoteID, cardWidth))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")

	if m.car.ControlsEnabled() {
		b.WriteString(m.renderCarouselControls())
		b.WriteString("\n")
	}

	firstShown, lastShown, total := m.car.Window()
	announcement := m.tr.TData("carousel.status", map[string]any{
		"First": firstShown, "Last": lastShown, "Total": total,
	})
	b.WriteString(st.FaintText.Render(announcement))
	return b.String()
}

// renderSlide renders one testimonial card by its quote ID.
func (m Model) renderSlide(quoteID string, width int) string {
	st := m.styles
	for _, tm := range m.catalog.Testimonials {
		if tm.QuoteID != quoteID {
			continue
		}
		quote := st.Text.Width(width).Italic(true).Render("“" + m.tr.T(tm.QuoteID) + "”")
		author := st.Accent.Render("(" + tm.Avatar + ") " + tm.Author)
		role := st.MutedText.Render(m.tr.T(tm.RoleID))
		return st.Card.Width(width + 2).Render(
			lipgloss.JoinVertical(lipgloss.Left, quote, "", author, role))
	}
	return ""
}

// renderCarouselControls renders prev/next hints, the indicator dots,
// and the autoplay phase marker.
func (m Model) renderCarouselControls() string {
	st := m.styles

	var dots []string
	for i := 0; i < m.car.IndicatorCount(); i++ {
		if i == m.car.CurrentIndex() {
			dots = append(dots, st.IndicatorOn.Render("●"))
		} else {
			dots = append(dots, st.Indicator.Render("○"))
		}
	}

	phase := " "
	switch m.car.Phase() {
	case carousel.PhaseAutoPlaying:
		phase = st.FaintText.Render("▶")
	case carousel.PhasePaused:
		phase = st.FaintText.Render("⏸")
	}

	prev := st.MutedText.Render("‹ " + m.tr.T("carousel.prev"))
	next := st.MutedText.Render(m.tr.T("carousel.next") + " ›")

	return lipgloss.JoinHorizontal(lipgloss.Center,
		prev, "  ", strings.Join(dots, " "), "  ", next, "  ", phase)
}
