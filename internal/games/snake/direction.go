package snake

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the cell offset of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "up" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Up, fmt.Errorf("snake: unknown direction %q", s)
}

// directionBetween returns the direction that leads from one cell to an
// adjacent one.
func directionBetween(from, to Position) (Direction, bool) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if from.Step(d) == to {
			return d, true
		}
	}
	return Up, false
}
