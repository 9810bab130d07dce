package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 10,
		},
		Timing: TimingConfig{
			MoveInterval: 150 * time.Millisecond,
			FoodInterval: time.Second,
		},
		Snake: SpawnConfig{
			Body:      []Cell{{X: 3, Y: 3}, {X: 3, Y: 2}},
			Direction: "up",
		},
		Food: FoodConfig{
			MaxOnBoard: 0,
		},
		Display: DisplayConfig{
			Title:     "Snake!",
			Width:     500,
			Height:    500,
			TargetFPS: 60,
			TileSize:  0.8,
			FontSize:  20,
			Colors: Palette{
				Background: RGB{0.04, 0.04, 0.04},
				Head:       RGB{0.7, 0.7, 0.7},
				Segment:    RGB{0.3, 0.3, 0.3},
				Food:       RGB{1.0, 0.0, 1.0},
				Text:       RGB{1.0, 1.0, 1.0},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
