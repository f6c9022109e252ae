package ui

import "testing"

func TestFAQCursorClamps(t *testing.T) {
	f := newFAQState()
	f.moveCursor(-1, 5)
	if f.cursor != 0 {
		t.Fatalf("cursor = %d, want clamp at 0", f.cursor)
	}
	f.moveCursor(10, 5)
	if f.cursor != 4 {
		t.Fatalf("cursor = %d, want clamp at 4", f.cursor)
	}
}

func TestFAQToggleCollapsesPreviousEntry(t *testing.T) {
	f := newFAQState()
	if f.open != -1 {
		t.Fatalf("open = %d, want -1 initially", f.open)
	}

	f.toggle()
	if f.open != 0 {
		t.Fatalf("open = %d, want 0", f.open)
	}

	f.moveCursor(2, 5)
	f.toggle()
	if f.open != 2 {
		t.Fatalf("open = %d, want 2 (previous entry collapsed)", f.open)
	}

	f.toggle()
	if f.open != -1 {
		t.Fatalf("open = %d, want -1 after closing", f.open)
	}
}
