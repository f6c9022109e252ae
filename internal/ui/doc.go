// Package ui renders the Northlight Studio page as a terminal
// application built on Bubble Tea.
//
// # Architecture Overview
//
// The page is a single Model in the Elm style: every user gesture
// (key, mouse drag, terminal resize) and every timer arrives as a
// message, Update applies it synchronously, and View re-renders the
// whole screen. Nothing blocks mid-transition.
//
// # Package Structure
//
//   - app.go: root Model, message/command plumbing, and the Run function
//   - navigation.go: section switching, nav bar, compact menu overlay
//   - hero.go, services.go, testimonials.go, faq.go: one renderer per section
//   - keys.go: key bindings (bubbles/key) and help text
//   - theme.go: color palettes and lipgloss styles
//   - layout.go: cell-to-viewport-unit scaling and breakpoints
//   - toast.go, status.go: transient notifications and the footer
//
// # Timers
//
// Bubble Tea ticks cannot be revoked once scheduled, so every repeating
// or delayed task (carousel autoplay, interaction resume, resize
// debounce, toast hide, mount retry) carries a generation number.
// Arming a task bumps the generation; a message carrying an older one
// is dropped on arrival. That keeps at most one logical timer alive per
// concern without tracking timer handles.
//
// # Degradation
//
// The testimonials carousel mounts through a bounded retry of its
// element lookup. If the lookup never succeeds the section renders a
// static list with no controls, a diagnostic goes to the log file, and
// the rest of the page is unaffected.
package ui
