// Package i18n wraps the go-i18n message bundle behind a small
// translator used by every labelled element in the UI. Message files
// are TOML, embedded at build time, one per supported language.
package i18n

import (
	"embed"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// DefaultLanguage is the fallback when a preference is missing or
// names an unsupported locale.
const DefaultLanguage = "en"

var supported = []string{"en", "es", "fr"}

// Translator resolves message IDs against the active language, falling
// back to English and finally to the ID itself. Not safe for
// concurrent use; the UI owns a single instance on its event loop.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	lang      string
}

// New loads the embedded message files and activates lang.
func New(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, code := range supported {
		path := fmt.Sprintf("locales/active.%s.toml", code)
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("load messages %s: %w", path, err)
		}
	}

	t := &Translator{bundle: bundle}
	t.SetLanguage(lang)
	return t, nil
}

// Languages returns the supported language codes in switcher order.
func (t *Translator) Languages() []string {
	return append([]string(nil), supported...)
}

// Language returns the active language code.
func (t *Translator) Language() string { return t.lang }

// SetLanguage activates code. Unsupported codes fall back to the
// default language rather than failing.
func (t *Translator) SetLanguage(code string) {
	if !Supported(code) {
		code = DefaultLanguage
	}
	t.lang = code
	t.localizer = goi18n.NewLocalizer(t.bundle, code, DefaultLanguage)
}

// NextLanguage returns the code after the active one, wrapping around.
func (t *Translator) NextLanguage() string {
	for i, code := range supported {
		if code == t.lang {
			return supported[(i+1)%len(supported)]
		}
	}
	return DefaultLanguage
}

// Supported reports whether code names a bundled locale.
func Supported(code string) bool {
	for _, c := range supported {
		if c == code {
			return true
		}
	}
	return false
}

// T resolves a message ID. Unknown IDs come back verbatim so a missing
// translation shows up on screen instead of crashing the page.
func (t *Translator) T(id string) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// TData resolves a message ID with template data.
func (t *Translator) TData(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
