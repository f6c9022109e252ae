// Package content holds the structural page catalog: which sections,
// services, testimonials, and FAQ entries exist. Display text lives in
// the i18n message files; the catalog only carries message IDs plus the
// few literals (author names, icons) that never translate.
package content

// Service is one card in the services grid.
type Service struct {
	Icon    string
	TitleID string
	BodyID  string
}

// Testimonial is one carousel slide.
type Testimonial struct {
	QuoteID string
	Author  string
	RoleID  string
	Avatar  string // initials shown next to the author
}

// FAQEntry is one accordion row.
type FAQEntry struct {
	QuestionID string
	AnswerID   string
}

// Catalog is the full page structure, fixed at startup.
type Catalog struct {
	Services     []Service
	Testimonials []Testimonial
	FAQ          []FAQEntry
}

// Default returns the Northlight Studio page catalog.
func Default() Catalog {
	return Catalog{
		Services: []Service{
			{Icon: "◆", TitleID: "service.design.title", BodyID: "service.design.body"},
			{Icon: "⚙", TitleID: "service.engineering.title", BodyID: "service.engineering.body"},
			{Icon: "✦", TitleID: "service.branding.title", BodyID: "service.branding.body"},
			{Icon: "☁", TitleID: "service.hosting.title", BodyID: "service.hosting.body"},
			{Icon: "◔", TitleID: "service.analytics.title", BodyID: "service.analytics.body"},
			{Icon: "☎", TitleID: "service.support.title", BodyID: "service.support.body"},
		},
		Testimonials: []Testimonial{
			{QuoteID: "testimonial.1.quote", Author: "Greta Fern", RoleID: "testimonial.1.role", Avatar: "GF"},
			{QuoteID: "testimonial.2.quote", Author: "Omar Haddad", RoleID: "testimonial.2.role", Avatar: "OH"},
			{QuoteID: "testimonial.3.quote", Author: "Priya Raman", RoleID: "testimonial.3.role", Avatar: "PR"},
			{QuoteID: "testimonial.4.quote", Author: "Tom Arden", RoleID: "testimonial.4.role", Avatar: "TA"},
			{QuoteID: "testimonial.5.quote", Author: "Mina Kovács", RoleID: "testimonial.5.role", Avatar: "MK"},
		},
		FAQ: []FAQEntry{
			{QuestionID: "faq.1.question", AnswerID: "faq.1.answer"},
			{QuestionID: "faq.2.question", AnswerID: "faq.2.answer"},
			{QuestionID: "faq.3.question", AnswerID: "faq.3.answer"},
			{QuestionID: "faq.4.question", AnswerID: "faq.4.answer"},
			{QuestionID: "faq.5.question", AnswerID: "faq.5.answer"},
		},
	}
}

// SlideIDs returns the opaque slide identifiers the carousel runs over.
func (c Catalog) SlideIDs() []string {
	ids := make([]string, len(c.Testimonials))
	for i, tm := range c.Testimonials {
		ids[i] = tm.QuoteID
	}
	return ids
}
