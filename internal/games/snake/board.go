package snake

import "fmt"

// Position is a cell on the board. (0, 0) is the bottom-left cell and Up is +y.
type Position struct {
	X, Y int
}

// Step returns the neighbouring cell in the given direction.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats the position as (x, y).
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Board is the finite W x H grid the snake lives on.
type Board struct {
	Width  int
	Height int
}

// DefaultBoard returns the 10x10 board.
func DefaultBoard() Board {
	return Board{Width: 10, Height: 10}
}

// Contains reports whether p lies on the board.
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Width && p.Y < b.Height
}

// Area returns the number of cells.
func (b Board) Area() int {
	return max(0, b.Width) * max(0, b.Height)
}

// Cells enumerates every cell, ordered by x then y.
func (b Board) Cells() []Position {
	cells := make([]Position, 0, b.Area())
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}

// FreeCells enumerates the cells not present in any of the occupied sets,
// in the same order as Cells.
func (b Board) FreeCells(occupied ...[]Position) []Position {
	taken := make(map[Position]struct{})
	for _, set := range occupied {
		for _, p := range set {
			taken[p] = struct{}{}
		}
	}

	free := make([]Position, 0, b.Area())
	for _, p := range b.Cells() {
		if _, ok := taken[p]; !ok {
			free = append(free, p)
		}
	}
	return free
}
