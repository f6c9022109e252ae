// Package carousel implements the testimonials carousel state machine:
// a sliding window over a fixed list of slides, advanced by navigation
// actions, autoplay ticks, and viewport resizes.
//
// The package is UI-agnostic. It owns index arithmetic, the
// autoplay/pause/resume lifecycle, and timer-ownership bookkeeping; the
// caller schedules the actual timers and feeds ticks back in. Because
// scheduled ticks cannot be revoked once issued, cancellation works by
// generation: arming bumps a counter, and a tick carrying a stale
// generation is discarded. At most one generation is ever live.
package carousel

// Phase describes the autoplay lifecycle.
type Phase int

const (
	// PhaseIdle means autoplay is off (disabled or never armed).
	PhaseIdle Phase = iota
	// PhaseAutoPlaying means an autoplay timer is armed.
	PhaseAutoPlaying
	// PhasePaused means autoplay is suspended by user interaction,
	// pending resume after a settle delay.
	PhasePaused
)

// Breakpoints for the visible-window step function, in viewport units.
const (
	narrowMaxWidth = 768
	mediumMaxWidth = 1024
)

// VisibleCountFor returns how many slides fit at the given viewport width.
func VisibleCountFor(width int) int {
	switch {
	case width <= narrowMaxWidth:
		return 1
	case width <= mediumMaxWidth:
		return 2
	default:
		return 3
	}
}

// State is the carousel's complete mutable state. Construct with New;
// the zero value is inert.
type State struct {
	items           []string
	visibleCount    int
	currentIndex    int
	maxIndex        int
	autoplayEnabled bool
	phase           Phase

	// tickGen identifies the currently armed autoplay timer; ticks from
	// older generations are stale and ignored.
	tickGen int
	// resumeGen identifies the pending resume task after an interaction.
	resumeGen int

	// jumped records whether the last reposition came from a resize
	// (reposition without transition) rather than navigation (slide).
	jumped bool
}

// New builds carousel state for the given slides at the given viewport
// width. Autoplay is enabled only when not all slides fit at once.
func New(items []string, viewportWidth int) *State {
	s := &State{items: append([]string(nil), items...)}
	s.visibleCount = VisibleCountFor(viewportWidth)
	s.recompute()
	s.autoplayEnabled = len(s.items) > s.visibleCount
	return s
}

// recompute refreshes maxIndex from the current visibleCount and clamps
// currentIndex back into range.
func (s *State) recompute() {
	s.maxIndex = len(s.items) - s.visibleCount
	if s.maxIndex < 0 {
		s.maxIndex = 0
	}
	if s.currentIndex > s.maxIndex {
		s.currentIndex = s.maxIndex
	}
	if s.currentIndex < 0 {
		s.currentIndex = 0
	}
}

// Next advances the window by one slide, wrapping to the start.
func (s *State) Next() {
	if !s.ControlsEnabled() {
		return
	}
	if s.currentIndex+1 > s.maxIndex {
		s.currentIndex = 0
	} else {
		s.currentIndex++
	}
	s.jumped = false
}

// Prev moves the window back by one slide, wrapping to the end.
func (s *State) Prev() {
	if !s.ControlsEnabled() {
		return
	}
	if s.currentIndex-1 < 0 {
		s.currentIndex = s.maxIndex
	} else {
		s.currentIndex--
	}
	s.jumped = false
}

// Goto jumps directly to index i. Out-of-range targets are ignored.
func (s *State) Goto(i int) {
	if i < 0 || i > s.maxIndex {
		return
	}
	s.currentIndex = i
	s.jumped = false
}

// Resize recomputes the visible window for a new viewport width. The
// reposition, if any, is a jump: callers should skip the slide
// transition when rendering it.
func (s *State) Resize(viewportWidth int) {
	s.visibleCount = VisibleCountFor(viewportWidth)
	s.recompute()
	s.jumped = true
}

// StartAutoplay arms a fresh autoplay timer and returns its generation.
// Any previously armed timer is implicitly cancelled: its ticks no
// longer match. Returns -1 when autoplay is disabled.
func (s *State) StartAutoplay() int {
	if !s.autoplayEnabled {
		s.phase = PhaseIdle
		return -1
	}
	s.tickGen++
	s.phase = PhaseAutoPlaying
	return s.tickGen
}

// Tick handles one autoplay timer firing. It reports whether the tick
// was accepted; stale generations and ticks outside PhaseAutoPlaying
// are dropped. An accepted tick advances the window like Next.
func (s *State) Tick(gen int) bool {
	if s.phase != PhaseAutoPlaying || gen != s.tickGen {
		return false
	}
	s.Next()
	return true
}

// PauseForInteraction suspends autoplay when the user starts
// interacting (hover, focus, touch). The armed timer is cancelled by
// invalidating its generation. Safe to call repeatedly.
func (s *State) PauseForInteraction() {
	if !s.autoplayEnabled {
		return
	}
	s.tickGen++ // orphan any armed timer
	s.phase = PhasePaused
}

// ScheduleResume registers intent to resume autoplay once interaction
// has settled, returning the generation the caller must pass back to
// CompleteResume after the settle delay. A newer interaction supersedes
// the pending resume. Returns -1 when autoplay is disabled.
func (s *State) ScheduleResume() int {
	if !s.autoplayEnabled {
		return -1
	}
	s.resumeGen++
	return s.resumeGen
}

// CompleteResume finishes a scheduled resume. It re-arms autoplay and
// returns the new timer generation, or ok=false when the resume was
// superseded or autoplay never applied.
func (s *State) CompleteResume(gen int) (tickGen int, ok bool) {
	if !s.autoplayEnabled || gen != s.resumeGen || s.phase == PhaseAutoPlaying {
		return 0, false
	}
	return s.StartAutoplay(), true
}

// CurrentIndex returns the index of the leftmost visible slide.
func (s *State) CurrentIndex() int { return s.currentIndex }

// MaxIndex returns the largest reachable index.
func (s *State) MaxIndex() int { return s.maxIndex }

// VisibleCount returns the size of the visible window.
func (s *State) VisibleCount() int { return s.visibleCount }

// Phase returns the autoplay lifecycle phase.
func (s *State) Phase() Phase { return s.phase }

// AutoplayEnabled reports whether autoplay applies to this carousel.
func (s *State) AutoplayEnabled() bool { return s.autoplayEnabled }

// Jumped reports whether the last reposition should render without a
// transition.
func (s *State) Jumped() bool { return s.jumped }

// ControlsEnabled reports whether navigation is meaningful: false when
// every slide is already visible.
func (s *State) ControlsEnabled() bool {
	return len(s.items) > s.visibleCount
}

// IndicatorCount returns how many position markers to render, one per
// reachable index.
func (s *State) IndicatorCount() int { return s.maxIndex + 1 }

// Visible returns the slides inside the current window, in order.
func (s *State) Visible() []string {
	end := s.currentIndex + s.visibleCount
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[s.currentIndex:end]
}

// Window returns the 1-based bounds of the visible window and the total
// slide count, for status announcements.
func (s *State) Window() (first, last, total int) {
	total = len(s.items)
	if total == 0 {
		return 0, 0, 0
	}
	first = s.currentIndex + 1
	last = s.currentIndex + s.visibleCount
	if last > total {
		last = total
	}
	return first, last, total
}
