package ui

import "testing"

func TestViewportUnits(t *testing.T) {
	cases := []struct {
		name string
		cols int
		want int
	}{
		{"phone_sized", 60, 480},
		{"laptop_sized", 100, 800},
		{"wide", 160, 1280},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := viewportUnits(tc.cols); got != tc.want {
				t.Fatalf("viewportUnits(%d) = %d, want %d", tc.cols, got, tc.want)
			}
		})
	}
}

func TestIsCompact(t *testing.T) {
	if !isCompact(CompactCols - 1) {
		t.Fatal("width just under the breakpoint should be compact")
	}
	if isCompact(CompactCols) {
		t.Fatal("width at the breakpoint should not be compact")
	}
}
