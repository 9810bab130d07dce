package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// inputPriority is the order in which simultaneously pressed direction
// keys are considered. The first one held wins.
var inputPriority = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, Up},
	{core.ActionDown, Down},
	{core.ActionRight, Right},
	{core.ActionLeft, Left},
}

// ApplyInput returns the head direction after the keys held this frame.
// A request for the opposite of the current direction is ignored.
func ApplyInput(current Direction, in core.InputFrame) Direction {
	want, ok := requestedDirection(in)
	if !ok || want == current.Opposite() {
		return current
	}
	return want
}

func requestedDirection(in core.InputFrame) (Direction, bool) {
	for _, p := range inputPriority {
		if in.Has(p.action) {
			return p.dir, true
		}
	}
	return Up, false
}
