package carousel

// SwipeThreshold is the minimum horizontal displacement, in viewport
// units, for a drag to count as a swipe.
const SwipeThreshold = 50

// SwipeAction is the navigation a completed gesture maps to.
type SwipeAction int

const (
	// SwipeNone means the displacement stayed below the threshold.
	SwipeNone SwipeAction = iota
	// SwipeNext is a drag toward negative x (content pulled left).
	SwipeNext
	// SwipePrev is a drag toward positive x.
	SwipePrev
)

// Swipe tracks one horizontal drag gesture from press to release.
type Swipe struct {
	startX int
	active bool
}

// Begin records the press position and starts tracking.
func (g *Swipe) Begin(x int) {
	g.startX = x
	g.active = true
}

// Active reports whether a gesture is in progress.
func (g *Swipe) Active() bool { return g.active }

// End finishes the gesture at the release position and interprets it.
// Without a matching Begin it returns SwipeNone.
func (g *Swipe) End(x int) SwipeAction {
	if !g.active {
		return SwipeNone
	}
	g.active = false
	delta := x - g.startX
	switch {
	case delta <= -SwipeThreshold:
		return SwipeNext
	case delta >= SwipeThreshold:
		return SwipePrev
	default:
		return SwipeNone
	}
}
