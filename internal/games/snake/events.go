package snake

// GameOverCause classifies why a run ended.
type GameOverCause string

const (
	CauseWall GameOverCause = "wall" // Head left the board
	CauseSelf GameOverCause = "self" // Head entered a cell the body occupied before the move
)

// GameOverEvent is emitted by the movement step when the run is lost.
type GameOverEvent struct {
	Cause GameOverCause
	At    Position // Where the head tried to go
}

// GrowthEvent is emitted by the eating step when the head reaches food.
type GrowthEvent struct {
	At Position
}

// eventQueue is a single-producer single-consumer buffer drained at a fixed
// point of the frame.
type eventQueue[T any] struct {
	items []T
}

func (q *eventQueue[T]) send(ev T) {
	q.items = append(q.items, ev)
}

func (q *eventQueue[T]) pending() int {
	return len(q.items)
}

// drain returns every queued event and empties the queue.
func (q *eventQueue[T]) drain() []T {
	out := q.items
	q.items = nil
	return out
}
