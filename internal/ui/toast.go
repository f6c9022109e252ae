package ui

import "time"

// toastDuration is how long a notification stays on screen.
const toastDuration = 3 * time.Second

// toastState is a transient notification with an explicit cancellation
// token. Showing a new toast bumps the generation, so the hide task
// scheduled for a superseded toast expires harmlessly instead of
// hiding its successor.
type toastState struct {
	text    string
	visible bool
	gen     int
}

// Show displays text and returns the generation token the hide task
// must present.
func (t *toastState) Show(text string) int {
	t.text = text
	t.visible = true
	t.gen++
	return t.gen
}

// Hide clears the toast if gen is still current. Stale tokens are
// ignored.
func (t *toastState) Hide(gen int) bool {
	if gen != t.gen || !t.visible {
		return false
	}
	t.visible = false
	t.text = ""
	return true
}
