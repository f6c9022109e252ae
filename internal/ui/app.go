package ui

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelierkast/vitrine/internal/carousel"
	"github.com/atelierkast/vitrine/internal/config"
	"github.com/atelierkast/vitrine/internal/content"
	"github.com/atelierkast/vitrine/internal/i18n"
	"github.com/atelierkast/vitrine/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Config     config.Config
	Catalog    content.Catalog
	Translator *i18n.Translator
	Lookup     carousel.Lookup
	Logger     *slog.Logger
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	cfg       config.Config
	logger    *slog.Logger
	tr        *i18n.Translator
	catalog   content.Catalog
	prefsPath string

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	styles Styles
	width  int
	height int
	ready  bool

	// Sections
	section     Section
	menuOpen    bool
	menuCursor  int
	faq         faqState
	faqViewport viewport.Model

	// Carousel
	car      *carousel.State
	mounter  *carousel.Mounter
	carInert bool
	swipe    carousel.Swipe

	// resizeGen stamps the pending resize-debounce task; only the
	// latest settle message triggers a recompute.
	resizeGen int

	toast toastState
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.Config.Theme)

	return Model{
		ctx:       ctx,
		cfg:       opts.Config,
		logger:    logger,
		tr:        opts.Translator,
		catalog:   opts.Catalog,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		styles:    theme.Styles(),
		section:   SectionHero,
		faq:       newFAQState(),
		mounter:   carousel.NewMounter(opts.Lookup, opts.Config.Carousel.RetryPolicy()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		mountAttemptCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		vpWidth, vpHeight := faqViewportSize(msg.Width, msg.Height)
		if !m.ready {
			m.faqViewport = viewport.New(vpWidth, vpHeight)
		} else {
			m.faqViewport.Width = vpWidth
			m.faqViewport.Height = vpHeight
		}
		m.syncFAQViewport()
		m.ready = true
		if m.car != nil {
			m.resizeGen++
			return m, resizeSettledCmd(m.cfg.Carousel.ResizeQuiet, m.resizeGen)
		}
		return m, nil

	case mountAttemptMsg:
		return m.handleMountAttempt()

	case autoplayTickMsg:
		// A stale generation means the timer was cancelled; the chain
		// ends here. An accepted tick re-arms the same generation.
		if m.car != nil && m.car.Tick(msg.gen) {
			return m, autoplayTickCmd(m.cfg.Carousel.AutoplayInterval, msg.gen)
		}
		return m, nil

	case resumeMsg:
		if m.car != nil {
			if gen, ok := m.car.CompleteResume(msg.gen); ok {
				return m, autoplayTickCmd(m.cfg.Carousel.AutoplayInterval, gen)
			}
		}
		return m, nil

	case resizeSettledMsg:
		if m.car != nil && msg.gen == m.resizeGen {
			m.car.Resize(viewportUnits(m.width))
		}
		return m, nil

	case toastHideMsg:
		m.toast.Hide(msg.gen)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.renderNav()
	var body string
	if m.menuOpen {
		body = m.renderMenu()
	} else {
		switch m.section {
		case SectionServices:
			body = m.renderServices()
		case SectionTestimonials:
			body = m.renderTestimonials()
		case SectionFAQ:
			body = m.renderFAQ()
		default:
			body = m.renderHero()
		}
	}
	return m.place(header, body, m.renderFooter())
}

// handleMountAttempt runs one lookup of the carousel's backing
// elements. Failures retry on a fixed delay until the attempt budget
// is spent; then the section stays inert and we log a diagnostic.
func (m Model) handleMountAttempt() (tea.Model, tea.Cmd) {
	els, err := m.mounter.Attempt()
	if err != nil {
		if m.mounter.Exhausted() {
			m.logger.Error("testimonials carousel failed to mount, leaving section inert", "error", err)
			m.carInert = true
			return m, nil
		}
		m.logger.Warn("carousel mount attempt failed, retrying", "error", err)
		return m, mountRetryCmd(m.mounter.Delay())
	}

	m.car = carousel.New(els.Slides, viewportUnits(m.width))
	if gen := m.car.StartAutoplay(); gen >= 0 {
		return m, autoplayTickCmd(m.cfg.Carousel.AutoplayInterval, gen)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menuOpen {
		if cmd, handled := m.handleMenuKey(msg.String()); handled {
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.Language):
		return m.switchLanguage()

	case key.Matches(msg, m.keys.Menu):
		m.menuOpen = true
		m.menuCursor = int(m.section)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.menuOpen = false
		return m, nil

	case key.Matches(msg, m.keys.NextSection):
		return m, m.nextSection(1)

	case key.Matches(msg, m.keys.PrevSection):
		return m, m.nextSection(-1)
	}

	// Number keys address sections everywhere except inside the
	// testimonials section, where they address slides.
	if m.section != SectionTestimonials && key.Matches(msg, m.keys.Sections) {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(sectionOrder) {
			return m, m.setSection(sectionOrder[n-1])
		}
	}

	switch m.section {
	case SectionTestimonials:
		return m.handleCarouselKey(msg)
	case SectionFAQ:
		return m.handleFAQKey(msg)
	}
	return m, nil
}

// handleCarouselKey navigates the carousel. Every keystroke counts as
// interaction start (pause) followed by interaction end (scheduled
// resume after the settle delay).
func (m Model) handleCarouselKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.car == nil || !m.car.ControlsEnabled() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.car.PauseForInteraction()
		m.car.Prev()
		return m, m.scheduleResume()

	case key.Matches(msg, m.keys.Right):
		m.car.PauseForInteraction()
		m.car.Next()
		return m, m.scheduleResume()

	case key.Matches(msg, m.keys.Digits):
		target, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		m.car.PauseForInteraction()
		m.car.Goto(target - 1) // out-of-range is a silent no-op
		return m, m.scheduleResume()
	}
	return m, nil
}

// handleFAQKey drives the accordion. Keys the accordion doesn't claim
// fall through to the body viewport so long answers stay scrollable on
// short terminals.
func (m Model) handleFAQKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.faq.moveCursor(1, len(m.catalog.FAQ))
	case key.Matches(msg, m.keys.Up):
		m.faq.moveCursor(-1, len(m.catalog.FAQ))
	case key.Matches(msg, m.keys.Toggle):
		m.faq.toggle()
	default:
		var cmd tea.Cmd
		m.faqViewport, cmd = m.faqViewport.Update(msg)
		return m, cmd
	}
	m.syncFAQViewport()
	return m, nil
}

// handleMouse interprets horizontal drags over the testimonials
// section as swipes. Press pauses autoplay; release resolves the
// gesture and schedules the resume.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.section != SectionTestimonials || m.car == nil || !m.car.ControlsEnabled() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.Begin(msg.X * CellUnits)
			m.car.PauseForInteraction()
		}

	case tea.MouseActionRelease:
		if !m.swipe.Active() {
			return m, nil
		}
		switch m.swipe.End(msg.X * CellUnits) {
		case carousel.SwipeNext:
			m.car.Next()
		case carousel.SwipePrev:
			m.car.Prev()
		}
		return m, m.scheduleResume()
	}
	return m, nil
}

// scheduleResume registers the end of a user interaction and returns
// the command that completes the resume after the settle delay.
func (m *Model) scheduleResume() tea.Cmd {
	gen := m.car.ScheduleResume()
	if gen < 0 {
		return nil
	}
	return resumeCmd(m.cfg.Carousel.ResumeDelay, gen)
}

// switchLanguage cycles to the next language, persists the choice, and
// raises a toast. A failed save degrades to the in-memory preference.
func (m Model) switchLanguage() (tea.Model, tea.Cmd) {
	code := m.tr.NextLanguage()
	m.tr.SetLanguage(code)
	m.syncFAQViewport()

	text := m.tr.TData("toast.language", map[string]any{
		"Language": m.tr.T("lang." + code),
	})
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Language: code, Theme: m.theme.Name}); err != nil {
		m.logger.Error("save language preference", "error", err)
		text = m.tr.T("toast.prefs_error")
	}

	gen := m.toast.Show(text)
	return m, toastHideCmd(gen)
}

// cycleTheme switches to the next theme and persists it.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.styles = m.theme.Styles()
	m.syncFAQViewport()
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Language: m.tr.Language(), Theme: m.theme.Name}); err != nil {
		m.logger.Error("save theme preference", "error", err)
	}
	return m, nil
}

// Messages

type autoplayTickMsg struct{ gen int }

type resumeMsg struct{ gen int }

type resizeSettledMsg struct{ gen int }

type mountAttemptMsg struct{}

type toastHideMsg struct{ gen int }

// Commands

func autoplayTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return autoplayTickMsg{gen: gen}
	})
}

func resumeCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return resumeMsg{gen: gen}
	})
}

func resizeSettledCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return resizeSettledMsg{gen: gen}
	})
}

func mountAttemptCmd() tea.Cmd {
	return func() tea.Msg { return mountAttemptMsg{} }
}

func mountRetryCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return mountAttemptMsg{}
	})
}

func toastHideCmd(gen int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastHideMsg{gen: gen}
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or
// the context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
