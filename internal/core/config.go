package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window frontend)
	ScreenH  int   // Screen height in characters (or pixels for the window frontend)
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the nominal duration of one frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score  int    // Current score
	Run    string // Identifier of the current run, changes on every reset
	Resets int    // Number of resets since startup
}

// Event names shared by the simulation and the frontends.
const (
	EventGameOver    = "game over"
	EventFoodSkipped = "food skipped"
)

// Event is something the simulation wants the platform to know about,
// typically for logging. Fields holds alternating key/value pairs.
type Event struct {
	Name   string
	Fields []any
}

// StepResult is returned by Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
