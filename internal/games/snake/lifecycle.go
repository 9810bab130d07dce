package snake

// ResolveGameOver consumes pending game-over events. If there were any, it
// removes all food and the body, then re-seeds the snake at its spawn.
// It returns the first event of the frame.
func (w *World) ResolveGameOver() (GameOverEvent, bool) {
	events := w.gameOver.drain()
	if len(events) == 0 {
		return GameOverEvent{}, false
	}

	w.food = nil
	w.body = nil
	w.growth.drain()
	w.respawn()

	return events[0], true
}
