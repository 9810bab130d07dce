// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"fmt"
	"math"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Snake   SpawnConfig   `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the grid dimensions. Fixed for the lifetime of a process.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the two fixed-period schedules.
type TimingConfig struct {
	MoveInterval time.Duration `yaml:"move_interval"`
	FoodInterval time.Duration `yaml:"food_interval"`
}

// Cell is a board coordinate as written in YAML.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpawnConfig defines the body the snake starts with after startup and every reset.
type SpawnConfig struct {
	Body      []Cell `yaml:"body"`      // Head first
	Direction string `yaml:"direction"` // up, down, left or right
}

// FoodConfig defines food spawning limits.
type FoodConfig struct {
	MaxOnBoard int `yaml:"max_on_board"` // 0 = no cap
}

// DisplayConfig defines how frontends present the board.
type DisplayConfig struct {
	Title     string  `yaml:"title"`
	Width     int     `yaml:"width"`  // Window width in pixels
	Height    int     `yaml:"height"` // Window height in pixels
	TargetFPS int     `yaml:"target_fps"`
	TileSize  float64 `yaml:"tile_size"` // Drawable size as a fraction of a cell
	FontSize  int     `yaml:"font_size"`
	Colors    Palette `yaml:"colors"`
}

// Palette holds the colors of every drawable role.
type Palette struct {
	Background RGB `yaml:"background"`
	Head       RGB `yaml:"head"`
	Segment    RGB `yaml:"segment"`
	Food       RGB `yaml:"food"`
	Text       RGB `yaml:"text"`
}

// RGB is a color with components in [0, 1].
type RGB [3]float64

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Bytes returns the color components scaled to 0-255.
func (c RGB) Bytes() (r, g, b uint8) {
	return channel(c[0]), channel(c[1]), channel(c[2])
}

func channel(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(v * 255))
}
