// Package snake implements the classic grid Snake: a tick-driven simulation
// of a snake moving across a finite board, eating food and growing, and a
// frame driver that multiplexes the movement and food schedules.
package snake

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Event names reported in core.StepResult.
const (
	EventGameOver    = core.EventGameOver
	EventFoodSkipped = core.EventFoodSkipped
)

// Game drives a World from platform frames.
//
// Each frame runs, in order: input, the movement tick (move, eat, grow) if
// due, the food tick if due, then the game-over lifecycle.
type Game struct {
	cfg   config.SnakeConfig
	board Board
	spawn Spawn

	world *World
	rng   *rand.Rand
	move  FixedStep
	food  FixedStep

	tick      uint64 // Movement ticks since the last reset
	frames    uint64
	lastDelta time.Duration

	run    string
	resets int
}

// New creates a game from configuration. Call Reset before stepping.
func New(cfg config.SnakeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: invalid config: %w", err)
	}
	spawn, err := SpawnFromConfig(cfg.Snake)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		board: Board{Width: cfg.Board.Width, Height: cfg.Board.Height},
		spawn: spawn,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// NewDefault creates a game with the default configuration.
func NewDefault() *Game {
	g, err := New(config.DefaultSnakeConfig())
	if err != nil {
		panic(err) // defaults always validate
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.cfg.Display.Title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Reset initializes/restarts the game from scratch.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewPCG(uint64(rc.Seed), uint64(rc.Seed)^0x9e3779b97f4a7c15))
	g.world = NewWorld(g.board, g.spawn, g.cfg.Food.MaxOnBoard)
	g.move = NewFixedStep(g.cfg.Timing.MoveInterval)
	g.food = NewFixedStep(g.cfg.Timing.FoodInterval)
	g.tick = 0
	g.frames = 0
	g.lastDelta = 0
	g.resets = 0
	g.run = uuid.NewString()
}

// World exposes the simulation state for read access.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one frame that lasted dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.frames++
	g.lastDelta = dt

	var events []core.Event

	g.world.Steer(in)

	if g.move.Advance(dt) {
		g.tick++
		g.world.Tick()
	}

	if g.food.Advance(dt) {
		if _, ok := g.world.SpawnFood(g.rng); !ok {
			events = append(events, core.Event{
				Name:   EventFoodSkipped,
				Fields: []any{"run", g.run, "food", len(g.world.food), "free", len(g.world.FreeCells())},
			})
		}
	}

	length := g.world.Len()
	if ev, ok := g.world.ResolveGameOver(); ok {
		events = append(events, core.Event{
			Name:   EventGameOver,
			Fields: []any{"run", g.run, "cause", string(ev.Cause), "at", ev.At.String(), "length", length, "ticks", g.tick},
		})
		g.resets++
		g.tick = 0
		g.run = uuid.NewString()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.world.Score(),
		Run:    g.run,
		Resets: g.resets,
	}
}

// FPS returns the reciprocal of the last frame delta, or 0 before any frame.
func (g *Game) FPS() float64 {
	if g.lastDelta <= 0 {
		return 0
	}
	return 1 / g.lastDelta.Seconds()
}

// Drawable is a read-only view of something to draw on a cell.
type Drawable struct {
	Pos  Position
	Size float64 // Fraction of a cell, square
	Role core.Color
}

// Drawables lists food first, then the body from tail to head so the head
// is drawn last.
func (g *Game) Drawables() []Drawable {
	size := g.cfg.Display.TileSize
	out := make([]Drawable, 0, len(g.world.food)+len(g.world.body))
	for _, p := range g.world.food {
		out = append(out, Drawable{Pos: p, Size: size, Role: core.ColorFood})
	}
	for i := len(g.world.body) - 1; i >= 0; i-- {
		role := core.ColorSegment
		if i == 0 {
			role = core.ColorHead
		}
		out = append(out, Drawable{Pos: g.world.body[i], Size: size, Role: role})
	}
	return out
}

// HUDText returns the FPS and score strings.
func (g *Game) HUDText() (fps, score string) {
	return fmt.Sprintf("FPS: %.2f", g.FPS()), fmt.Sprintf("Score: %d", g.world.Score())
}
