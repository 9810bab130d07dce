package snake

import (
	"math/rand/v2"
	"testing"
)

func TestSpawnFoodPicksIndexModFree(t *testing.T) {
	w := NewWorld(Board{Width: 2, Height: 2}, Spawn{Body: []Position{{0, 0}}, Direction: Up}, 0)
	// Free cells in x-major order: (0,1), (1,0), (1,1)
	p, ok := w.SpawnFood(IntFunc(func() uint64 { return 4 }))
	if !ok {
		t.Fatal("SpawnFood() should succeed on a board with free cells")
	}
	if p != (Position{1, 0}) {
		t.Errorf("SpawnFood() = %v, expected (1, 0)", p)
	}

	// The new food is now occupied; index 4 mod 2 = 0 -> (0, 1)
	p, _ = w.SpawnFood(IntFunc(func() uint64 { return 4 }))
	if p != (Position{0, 1}) {
		t.Errorf("second SpawnFood() = %v, expected (0, 1)", p)
	}
}

func TestSpawnFoodFullBoard(t *testing.T) {
	w := NewWorld(Board{Width: 1, Height: 2}, Spawn{Body: []Position{{0, 1}, {0, 0}}, Direction: Up}, 0)
	if _, ok := w.SpawnFood(IntFunc(func() uint64 { return 0 })); ok {
		t.Error("SpawnFood() on a full board should be skipped")
	}
	if len(w.Food()) != 0 {
		t.Errorf("no food expected, got %v", w.Food())
	}

	w = NewWorld(Board{Width: 1, Height: 3}, Spawn{Body: []Position{{0, 1}, {0, 0}}, Direction: Up}, 0)
	if _, ok := w.SpawnFood(IntFunc(func() uint64 { return 9 })); !ok {
		t.Fatal("one free cell should be filled")
	}
	if _, ok := w.SpawnFood(IntFunc(func() uint64 { return 9 })); ok {
		t.Error("board filled by food should skip placement")
	}
}

func TestSpawnFoodAccumulatesWithoutCap(t *testing.T) {
	w := newDefaultWorld()
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5; i++ {
		if _, ok := w.SpawnFood(rng); !ok {
			t.Fatalf("spawn %d failed", i)
		}
	}
	if len(w.Food()) != 5 {
		t.Errorf("food count = %d, expected 5", len(w.Food()))
	}
}

func TestSpawnFoodRespectsCap(t *testing.T) {
	w := NewWorld(DefaultBoard(), DefaultSpawn(), 1)
	rng := rand.New(rand.NewPCG(1, 2))
	if _, ok := w.SpawnFood(rng); !ok {
		t.Fatal("first spawn should succeed")
	}
	if _, ok := w.SpawnFood(rng); ok {
		t.Error("second spawn should be capped")
	}
}

func TestSpawnFoodNeverOnOccupiedCell(t *testing.T) {
	w := newDefaultWorld()
	rng := rand.New(rand.NewPCG(99, 100))
	for i := 0; i < 98; i++ {
		p, ok := w.SpawnFood(rng)
		if !ok {
			t.Fatalf("spawn %d failed with %d free cells", i, len(w.FreeCells()))
		}
		for _, b := range w.Body() {
			if b == p {
				t.Fatalf("food placed on the body at %v", p)
			}
		}
	}
	if len(w.FreeCells()) != 0 {
		t.Errorf("board should be full, %d free cells left", len(w.FreeCells()))
	}

	seen := make(map[Position]bool)
	for _, f := range w.Food() {
		if seen[f] {
			t.Fatalf("two food items share %v", f)
		}
		seen[f] = true
	}
}

func TestSpawnFoodUniform(t *testing.T) {
	board := Board{Width: 3, Height: 3}
	spawn := Spawn{Body: []Position{{1, 1}, {1, 0}}, Direction: Up}
	rng := rand.New(rand.NewPCG(2024, 10))

	const draws = 14000
	counts := make(map[Position]int)
	w := NewWorld(board, spawn, 0)
	free := w.FreeCells()
	for i := 0; i < draws; i++ {
		w.food = nil
		p, _ := w.SpawnFood(rng)
		counts[p]++
	}

	if len(counts) != len(free) {
		t.Fatalf("expected draws over %d free cells, got %d distinct cells", len(free), len(counts))
	}
	expected := float64(draws) / float64(len(free))
	for _, p := range free {
		got := float64(counts[p])
		if got < expected*0.9 || got > expected*1.1 {
			t.Errorf("cell %v drawn %v times, expected about %v", p, got, expected)
		}
	}
}
