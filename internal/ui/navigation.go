package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Section identifies one page section.
type Section int

const (
	SectionHero Section = iota
	SectionServices
	SectionTestimonials
	SectionFAQ
)

var sectionOrder = []Section{SectionHero, SectionServices, SectionTestimonials, SectionFAQ}

// labelID returns the i18n message ID for a section's nav label.
func (s Section) labelID() string {
	switch s {
	case SectionServices:
		return "nav.services"
	case SectionTestimonials:
		return "nav.testimonials"
	case SectionFAQ:
		return "nav.faq"
	default:
		return "nav.hero"
	}
}

// nextSection cycles the active section forward or backward.
func (m *Model) nextSection(delta int) tea.Cmd {
	n := len(sectionOrder)
	idx := (int(m.section) + delta + n) % n
	return m.setSection(sectionOrder[idx])
}

// setSection switches sections. Entering the testimonials section
// counts as interaction start and pauses autoplay; leaving it ends the
// interaction, so the returned command schedules the resume.
func (m *Model) setSection(s Section) tea.Cmd {
	if m.section == s {
		return nil
	}
	leaving := m.section
	m.section = s
	m.menuOpen = false
	if s == SectionFAQ {
		m.syncFAQViewport()
	}

	if m.car == nil {
		return nil
	}
	if s == SectionTestimonials {
		m.car.PauseForInteraction()
		return nil
	}
	if leaving == SectionTestimonials {
		return m.scheduleResume()
	}
	return nil
}

// renderNav renders the header: logo plus either the inline nav bar or
// the collapsed menu hint, depending on width.
func (m Model) renderNav() string {
	st := m.styles

	logo := st.Logo.Render("◣ " + m.tr.T("hero.title"))

	if isCompact(m.width) {
		hint := st.NavItem.Render("☰ " + m.tr.T("nav.menu") + " (m)")
		lang := st.FaintText.Render(m.tr.T("lang." + m.tr.Language()))
		return lipgloss.JoinHorizontal(lipgloss.Center, logo, hint, " ", lang)
	}

	var items []string
	for _, s := range sectionOrder {
		label := m.tr.T(s.labelID())
		if s == m.section {
			items = append(items, st.NavActive.Render(label))
		} else {
			items = append(items, st.NavItem.Render(label))
		}
	}
	lang := st.FaintText.Render("⌨ " + m.tr.T("lang."+m.tr.Language()))
	return lipgloss.JoinHorizontal(lipgloss.Center,
		logo, strings.Join(items, ""), "  ", lang)
}

// renderMenu renders the compact-mode menu overlay.
func (m Model) renderMenu() string {
	st := m.styles
	var b strings.Builder
	b.WriteString(st.Heading.Render(m.tr.T("nav.menu")))
	b.WriteString("\n")
	for i, s := range sectionOrder {
		label := m.tr.T(s.labelID())
		cursor := "  "
		if i == m.menuCursor {
			cursor = st.Accent.Render("▸ ")
			label = st.Accent.Render(label)
		} else {
			label = st.Text.Render(label)
		}
		b.WriteString(cursor + label + "\n")
	}
	return st.CardFocus.Render(b.String())
}

// handleMenuKey processes keys while the menu overlay is open.
func (m *Model) handleMenuKey(keyName string) (tea.Cmd, bool) {
	switch keyName {
	case "j", "down":
		if m.menuCursor < len(sectionOrder)-1 {
			m.menuCursor++
		}
	case "k", "up":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "enter", " ":
		cmd := m.setSection(sectionOrder[m.menuCursor])
		m.menuOpen = false
		return cmd, true
	case "1", "2", "3", "4":
		n := int(keyName[0] - '0')
		if n >= 1 && n <= len(sectionOrder) {
			cmd := m.setSection(sectionOrder[n-1])
			m.menuOpen = false
			return cmd, true
		}
	case "esc", "m":
		m.menuOpen = false
	default:
		return nil, false
	}
	return nil, true
}
