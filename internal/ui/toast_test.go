package ui

import "testing"

func TestToastHideRequiresCurrentGeneration(t *testing.T) {
	var ts toastState

	first := ts.Show("one")
	second := ts.Show("two")

	if ts.Hide(first) {
		t.Fatal("stale hide token cleared a newer toast")
	}
	if !ts.visible || ts.text != "two" {
		t.Fatalf("toast = %+v, want visible 'two'", ts)
	}

	if !ts.Hide(second) {
		t.Fatal("current hide token rejected")
	}
	if ts.visible {
		t.Fatal("toast still visible after hide")
	}
	if ts.Hide(second) {
		t.Fatal("second hide of same generation should be a no-op")
	}
}
