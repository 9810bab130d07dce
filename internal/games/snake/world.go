package snake

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Spawn is the body and heading a run starts with.
type Spawn struct {
	Body      []Position // Head first
	Direction Direction
}

// DefaultSpawn returns the startup snake: head at (3, 3) facing up, one
// segment at (3, 2).
func DefaultSpawn() Spawn {
	return Spawn{
		Body:      []Position{{X: 3, Y: 3}, {X: 3, Y: 2}},
		Direction: Up,
	}
}

// SpawnFromConfig converts the configured start body.
func SpawnFromConfig(cfg config.SpawnConfig) (Spawn, error) {
	dir, err := ParseDirection(cfg.Direction)
	if err != nil {
		return Spawn{}, err
	}
	if len(cfg.Body) == 0 {
		return Spawn{}, fmt.Errorf("snake: spawn body is empty")
	}
	body := make([]Position, len(cfg.Body))
	for i, c := range cfg.Body {
		body[i] = Position{X: c.X, Y: c.Y}
	}
	return Spawn{Body: body, Direction: dir}, nil
}

// World is the complete simulation state: the body, the head's heading,
// the food set and the pending events. It is owned by a single goroutine.
type World struct {
	board   Board
	spawn   Spawn
	maxFood int

	body  []Position // Head first
	dir   Direction  // Heading applied on the next move
	moved Direction  // Heading of the last completed move
	food  []Position

	lastTail    Position
	hasLastTail bool

	growth   eventQueue[GrowthEvent]
	gameOver eventQueue[GameOverEvent]
}

// NewWorld creates a world with the snake at its spawn.
// maxFood caps the number of food items on the board; 0 means no cap.
func NewWorld(board Board, spawn Spawn, maxFood int) *World {
	w := &World{
		board:   board,
		spawn:   Spawn{Body: slices.Clone(spawn.Body), Direction: spawn.Direction},
		maxFood: max(0, maxFood),
	}
	w.respawn()
	return w
}

// respawn places a fresh snake and forgets the previous tail.
func (w *World) respawn() {
	w.body = slices.Clone(w.spawn.Body)
	w.dir = w.spawn.Direction
	w.moved = w.spawn.Direction
	if len(w.body) > 1 {
		if d, ok := directionBetween(w.body[1], w.body[0]); ok {
			w.moved = d
		}
	}
	w.hasLastTail = false
	w.lastTail = Position{}
}

// Board returns the board dimensions.
func (w *World) Board() Board {
	return w.board
}

// Body returns a copy of the body, head first.
func (w *World) Body() []Position {
	return slices.Clone(w.body)
}

// Len returns the number of body segments, head included.
func (w *World) Len() int {
	return len(w.body)
}

// Head returns the head position. ok is false when no snake exists.
func (w *World) Head() (pos Position, ok bool) {
	if len(w.body) == 0 {
		return Position{}, false
	}
	return w.body[0], true
}

// Direction returns the heading the next move will use.
func (w *World) Direction() Direction {
	return w.dir
}

// Food returns a copy of the food positions.
func (w *World) Food() []Position {
	return slices.Clone(w.food)
}

// LastTail returns the cell vacated by the tail on the most recent move.
func (w *World) LastTail() (Position, bool) {
	return w.lastTail, w.hasLastTail
}

// PendingGameOver returns how many game-over events wait for the lifecycle.
func (w *World) PendingGameOver() int {
	return w.gameOver.pending()
}

// Steer applies the frame's input to the head direction. Besides the
// current heading, the heading of the last completed move is also protected,
// so two quick turns between moves cannot fold the head back onto the neck.
func (w *World) Steer(in core.InputFrame) {
	if len(w.body) == 0 {
		return
	}
	next := ApplyInput(w.dir, in)
	if next == w.moved.Opposite() {
		return
	}
	w.dir = next
}

// Score is the number of body segments, head included.
func (w *World) Score() int {
	return len(w.body)
}
