package snake

// IntSource is a uniform random source over non-negative integers.
// *math/rand/v2.Rand satisfies it.
type IntSource interface {
	Uint64() uint64
}

// IntFunc adapts a function to IntSource.
type IntFunc func() uint64

// Uint64 calls f.
func (f IntFunc) Uint64() uint64 {
	return f()
}

// FreeCells returns the cells occupied by neither the body nor food,
// ordered by x then y.
func (w *World) FreeCells() []Position {
	return w.board.FreeCells(w.body, w.food)
}

// SpawnFood places one food on a uniformly chosen free cell. It does
// nothing and returns false when the board is full or the food cap is
// reached.
func (w *World) SpawnFood(src IntSource) (Position, bool) {
	if w.maxFood > 0 && len(w.food) >= w.maxFood {
		return Position{}, false
	}

	free := w.FreeCells()
	if len(free) == 0 {
		return Position{}, false
	}

	p := free[src.Uint64()%uint64(len(free))]
	w.food = append(w.food, p)
	return p, true
}
