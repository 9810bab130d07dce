package snake

import "slices"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Frames      uint64
	Resets      int
	Score       int
	Body        []Position
	Dir         Direction
	Food        []Position
	LastTail    Position
	HasLastTail bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	tail, hasTail := g.world.LastTail()
	return Snapshot{
		Tick:        g.tick,
		Frames:      g.frames,
		Resets:      g.resets,
		Score:       g.world.Score(),
		Body:        g.world.Body(),
		Dir:         g.world.Direction(),
		Food:        g.world.Food(),
		LastTail:    tail,
		HasLastTail: hasTail,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Tick == o.Tick &&
		s.Frames == o.Frames &&
		s.Resets == o.Resets &&
		s.Score == o.Score &&
		s.Dir == o.Dir &&
		s.LastTail == o.LastTail &&
		s.HasLastTail == o.HasLastTail &&
		slices.Equal(s.Body, o.Body) &&
		slices.Equal(s.Food, o.Food)
}
