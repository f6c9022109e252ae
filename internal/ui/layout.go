package ui

// The carousel and the services grid think in abstract viewport units
// so the same breakpoints work regardless of the rendering surface.
// Terminal columns are scaled up: one cell is CellUnits wide.
const CellUnits = 8

// CompactCols is the terminal width, in cells, below which the inline
// navigation bar collapses into the menu overlay.
const CompactCols = 72

// viewportUnits converts a terminal width in cells to viewport units.
func viewportUnits(cols int) int {
	return cols * CellUnits
}

// isCompact reports whether the collapsed navigation applies.
func isCompact(cols int) bool {
	return cols < CompactCols
}
