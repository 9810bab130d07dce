package snake

import "slices"

// Tick runs one movement tick: movement, then eating, then growth.
func (w *World) Tick() {
	w.Move()
	w.Eat()
	w.Grow()
}

// Move advances the head one cell along its heading and trails the body.
//
// Collisions are tested against the positions held before the move, tail
// included, so following your own tail into the cell it is leaving loses.
// A game-over event may be sent twice in one tick; the body is moved
// regardless and the lifecycle rebuilds the world afterwards.
func (w *World) Move() {
	if len(w.body) == 0 {
		return
	}

	old := slices.Clone(w.body)
	head := old[0].Step(w.dir)

	if !w.board.Contains(head) {
		w.gameOver.send(GameOverEvent{Cause: CauseWall, At: head})
	}
	if slices.Contains(old, head) {
		w.gameOver.send(GameOverEvent{Cause: CauseSelf, At: head})
	}

	w.body[0] = head
	for i := 1; i < len(w.body); i++ {
		w.body[i] = old[i-1]
	}

	w.lastTail = old[len(old)-1]
	w.hasLastTail = true
	w.moved = w.dir
}

// Eat removes every food under the head and sends one growth event per item.
// It returns the number of items eaten.
func (w *World) Eat() int {
	head, ok := w.Head()
	if !ok {
		return 0
	}

	eaten := 0
	w.food = slices.DeleteFunc(w.food, func(p Position) bool {
		if p != head {
			return false
		}
		w.growth.send(GrowthEvent{At: p})
		eaten++
		return true
	})
	return eaten
}

// Grow appends one segment at the last tail position when any growth event
// is pending. All pending growth events are consumed.
func (w *World) Grow() bool {
	if len(w.growth.drain()) == 0 || !w.hasLastTail {
		return false
	}
	w.body = append(w.body, w.lastTail)
	return true
}
