// Package app is the composition root: it loads configuration and
// preferences, sets up logging and translations, and starts the UI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"

	"github.com/atelierkast/vitrine/internal/carousel"
	"github.com/atelierkast/vitrine/internal/config"
	"github.com/atelierkast/vitrine/internal/content"
	"github.com/atelierkast/vitrine/internal/i18n"
	"github.com/atelierkast/vitrine/internal/prefs"
	"github.com/atelierkast/vitrine/internal/ui"
)

// Options configure the Vitrine application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/vitrine/prefs.toml
	Language   string // overrides the persisted language preference
}

// Run boots the Vitrine TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.LogPath)

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	if userPrefs.Theme != "" {
		cfg.Theme = userPrefs.Theme
	}

	lang := cfg.Language
	if userPrefs.Language != "" {
		lang = userPrefs.Language
	}
	if opts.Language != "" {
		lang = opts.Language
	}

	translator, err := i18n.New(lang)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	catalog := content.Default()

	return ui.Run(ui.Options{
		Context:    ctx,
		Config:     cfg,
		Catalog:    catalog,
		Translator: translator,
		Lookup:     lookupFor(catalog),
		Logger:     logger,
		PrefsPath:  opts.PrefsPath,
	})
}

// lookupFor locates the carousel's backing elements in the catalog.
// An empty catalog is the missing-element case the mount retry covers.
func lookupFor(catalog content.Catalog) carousel.Lookup {
	return func() (carousel.Elements, error) {
		if len(catalog.Testimonials) == 0 {
			return carousel.Elements{}, fmt.Errorf("no testimonial slides in catalog")
		}
		return carousel.Elements{
			Slides:   catalog.SlideIDs(),
			HasTrack: true,
			HasPrev:  true,
			HasNext:  true,
		}, nil
	}
}

// newLogger writes diagnostics to the configured log file. The TUI
// owns the terminal, so when the file cannot be opened diagnostics are
// dropped rather than scribbled over the screen.
func newLogger(path string) *slog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			return slog.New(tint.NewHandler(f, &tint.Options{NoColor: true}))
		}
	}
	return slog.New(slog.DiscardHandler)
}
