package ui

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelierkast/vitrine/internal/carousel"
	"github.com/atelierkast/vitrine/internal/config"
	"github.com/atelierkast/vitrine/internal/content"
	"github.com/atelierkast/vitrine/internal/i18n"
	"github.com/atelierkast/vitrine/internal/prefs"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	tr, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	catalog := content.Default()
	return Options{
		Config:     testConfig(),
		Catalog:    catalog,
		Translator: tr,
		Lookup:     workingLookup(catalog),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	}
}

func testConfig() config.Config {
	return config.Config{
		Theme:    "Dracula",
		Language: "en",
		Carousel: config.CarouselConfig{
			AutoplayInterval: 10 * time.Millisecond,
			ResumeDelay:      10 * time.Millisecond,
			ResizeQuiet:      10 * time.Millisecond,
			MountAttempts:    3,
			MountRetryDelay:  time.Millisecond,
		},
	}
}

func workingLookup(catalog content.Catalog) carousel.Lookup {
	return func() (carousel.Elements, error) {
		return carousel.Elements{
			Slides:   catalog.SlideIDs(),
			HasTrack: true,
			HasPrev:  true,
			HasNext:  true,
		}, nil
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func mounted(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, mountAttemptMsg{})
	if m.car == nil {
		t.Fatal("carousel did not mount")
	}
	return m
}

func TestMountArmsAutoplay(t *testing.T) {
	m := mounted(t, testOptions(t))
	if m.car.Phase() != carousel.PhaseAutoPlaying {
		t.Fatalf("phase = %v, want autoplaying", m.car.Phase())
	}
	// 100 cols → 800 units → 2 visible of 5 slides.
	if m.car.VisibleCount() != 2 {
		t.Fatalf("VisibleCount = %d, want 2", m.car.VisibleCount())
	}
}

func TestMountExhaustsRetriesThenGoesInert(t *testing.T) {
	opts := testOptions(t)
	opts.Lookup = func() (carousel.Elements, error) {
		return carousel.Elements{}, errors.New("backing elements missing")
	}
	m := New(opts)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		if m.carInert {
			t.Fatalf("went inert after %d attempts, want 3", i)
		}
		m, cmd = update(t, m, mountAttemptMsg{})
	}
	if !m.carInert {
		t.Fatal("carousel should be inert after exhausting attempts")
	}
	if cmd != nil {
		t.Fatal("no retry should be scheduled once exhausted")
	}
	if m.car != nil {
		t.Fatal("carousel mounted despite failing lookup")
	}
	// The page still renders.
	if m.View() == "" {
		t.Fatal("inert page rendered empty")
	}
}

func TestStaleAutoplayTickIsIgnored(t *testing.T) {
	m := mounted(t, testOptions(t))
	before := m.car.CurrentIndex()

	m, cmd := update(t, m, autoplayTickMsg{gen: 999})
	if m.car.CurrentIndex() != before {
		t.Fatal("stale tick advanced the carousel")
	}
	if cmd != nil {
		t.Fatal("stale tick re-armed the timer")
	}
}

func TestCarouselKeysPauseThenResume(t *testing.T) {
	m := mounted(t, testOptions(t))
	m.section = SectionTestimonials

	m, cmd := update(t, m, keyMsg("l"))
	if m.car.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1 after next", m.car.CurrentIndex())
	}
	if m.car.Phase() != carousel.PhasePaused {
		t.Fatalf("phase = %v, want paused during interaction", m.car.Phase())
	}
	if cmd == nil {
		t.Fatal("no resume scheduled after interaction")
	}

	// Deliver the resume; autoplay re-arms.
	msg := cmd()
	resume, ok := msg.(resumeMsg)
	if !ok {
		t.Fatalf("scheduled msg = %T, want resumeMsg", msg)
	}
	m, cmd = update(t, m, resume)
	if m.car.Phase() != carousel.PhaseAutoPlaying {
		t.Fatalf("phase = %v, want autoplaying after resume", m.car.Phase())
	}
	if cmd == nil {
		t.Fatal("resume did not arm the autoplay timer")
	}
}

func TestResizeDebounceOnlyLatestGenerationApplies(t *testing.T) {
	m := mounted(t, testOptions(t))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 150, Height: 40})
	staleGen := m.resizeGen
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})

	before := m.car.VisibleCount()
	m, _ = update(t, m, resizeSettledMsg{gen: staleGen})
	if m.car.VisibleCount() != before {
		t.Fatal("stale resize message recomputed the carousel")
	}

	m, _ = update(t, m, resizeSettledMsg{gen: m.resizeGen})
	// 60 cols → 480 units → 1 visible.
	if m.car.VisibleCount() != 1 {
		t.Fatalf("VisibleCount = %d, want 1 after settle", m.car.VisibleCount())
	}
	if !m.car.Jumped() {
		t.Fatal("resize reposition should be a jump")
	}
}

func TestSwipeGestureNavigates(t *testing.T) {
	m := mounted(t, testOptions(t))
	m.section = SectionTestimonials

	press := tea.MouseMsg{X: 40, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 30, Action: tea.MouseActionRelease} // -80 units

	m, _ = update(t, m, press)
	if m.car.Phase() != carousel.PhasePaused {
		t.Fatalf("phase = %v, want paused on press", m.car.Phase())
	}
	m, _ = update(t, m, release)
	if m.car.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1 after swipe left", m.car.CurrentIndex())
	}

	// Sub-threshold drag: 5 cells → 40 units, below 50.
	m, _ = update(t, m, tea.MouseMsg{X: 40, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 35, Action: tea.MouseActionRelease})
	if m.car.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want unchanged after sub-threshold drag", m.car.CurrentIndex())
	}
}

func TestLanguageSwitchPersistsAndToasts(t *testing.T) {
	opts := testOptions(t)
	m := mounted(t, opts)

	m, cmd := update(t, m, keyMsg("L"))
	if m.tr.Language() != "es" {
		t.Fatalf("language = %q, want es", m.tr.Language())
	}
	if !m.toast.visible {
		t.Fatal("no toast after language switch")
	}
	if cmd == nil {
		t.Fatal("no hide task scheduled for the toast")
	}

	saved, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Language != "es" {
		t.Fatalf("persisted language = %q, want es", saved.Language)
	}
}

func TestLanguageSwitchSaveFailureDegrades(t *testing.T) {
	opts := testOptions(t)
	// A directory path makes the save fail while loads still degrade.
	opts.PrefsPath = t.TempDir()
	m := mounted(t, opts)

	m, _ = update(t, m, keyMsg("L"))
	if m.tr.Language() != "es" {
		t.Fatal("in-memory language should switch even when the save fails")
	}
	if !m.toast.visible {
		t.Fatal("save failure should raise a toast")
	}
}

func TestSectionCycleLeavingTestimonialsSchedulesResume(t *testing.T) {
	m := mounted(t, testOptions(t))

	var cmd tea.Cmd
	m, cmd = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	if m.section != SectionServices || cmd != nil {
		t.Fatalf("section = %v cmd = %v, want services and no cmd", m.section, cmd)
	}
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	if m.section != SectionTestimonials {
		t.Fatalf("section = %v, want testimonials", m.section)
	}
	if m.car.Phase() != carousel.PhasePaused {
		t.Fatal("entering testimonials should pause autoplay")
	}

	m, cmd = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	if m.section != SectionFAQ {
		t.Fatalf("section = %v, want faq", m.section)
	}
	if cmd == nil {
		t.Fatal("leaving testimonials should schedule the autoplay resume")
	}
}

func TestDigitKeysSwitchSections(t *testing.T) {
	m := mounted(t, testOptions(t))

	m, _ = update(t, m, keyMsg("2"))
	if m.section != SectionServices {
		t.Fatalf("section = %v, want services after pressing 2", m.section)
	}
	m, _ = update(t, m, keyMsg("4"))
	if m.section != SectionFAQ {
		t.Fatalf("section = %v, want faq after pressing 4", m.section)
	}
	m, _ = update(t, m, keyMsg("3"))
	if m.section != SectionTestimonials {
		t.Fatalf("section = %v, want testimonials after pressing 3", m.section)
	}
	if m.car.Phase() != carousel.PhasePaused {
		t.Fatal("entering testimonials should pause autoplay")
	}

	// Inside testimonials a digit addresses a slide, not a section.
	m, _ = update(t, m, keyMsg("2"))
	if m.section != SectionTestimonials {
		t.Fatalf("section = %v, digit inside testimonials should not leave it", m.section)
	}
	if m.car.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1 after jumping to slide 2", m.car.CurrentIndex())
	}
}

func TestFAQBodyScrollsOnShortTerminals(t *testing.T) {
	opts := testOptions(t)
	m := New(opts)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 12})
	m, _ = update(t, m, mountAttemptMsg{})
	m.section = SectionFAQ

	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	if m.faq.open != 0 {
		t.Fatalf("open = %d, want first entry expanded", m.faq.open)
	}
	if m.faqViewport.TotalLineCount() <= m.faqViewport.Height {
		t.Fatalf("body has %d lines in a %d-line viewport, expected overflow",
			m.faqViewport.TotalLineCount(), m.faqViewport.Height)
	}

	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyPgDown}))
	if m.faqViewport.YOffset == 0 {
		t.Fatal("page down did not scroll the body")
	}
}

func TestMenuOverlaySelection(t *testing.T) {
	m := mounted(t, testOptions(t))
	m, _ = update(t, m, keyMsg("m"))
	if !m.menuOpen {
		t.Fatal("menu did not open")
	}
	m, _ = update(t, m, keyMsg("j"))
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	if m.menuOpen {
		t.Fatal("menu should close after selection")
	}
	if m.section != SectionServices {
		t.Fatalf("section = %v, want services", m.section)
	}
}

func TestMenuDigitSelection(t *testing.T) {
	m := mounted(t, testOptions(t))
	m, _ = update(t, m, keyMsg("m"))
	if !m.menuOpen {
		t.Fatal("menu did not open")
	}
	m, _ = update(t, m, keyMsg("3"))
	if m.menuOpen {
		t.Fatal("menu should close after a digit selection")
	}
	if m.section != SectionTestimonials {
		t.Fatalf("section = %v, want testimonials", m.section)
	}
}
