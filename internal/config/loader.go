package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadSnake when no file was found.
const SourceEmbedded = "embedded"

// LoadSnake loads Snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, customPath, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads one YAML file over the defaults.
func loadFile(path string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Marshal renders the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Timing.MoveInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.move_interval must be positive, got %s", c.Timing.MoveInterval))
	}
	if c.Timing.FoodInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.food_interval must be positive, got %s", c.Timing.FoodInterval))
	}
	if c.Food.MaxOnBoard < 0 {
		errs = append(errs, fmt.Errorf("food.max_on_board must not be negative, got %d", c.Food.MaxOnBoard))
	}
	if c.Display.TileSize <= 0 || c.Display.TileSize > 1 {
		errs = append(errs, fmt.Errorf("display.tile_size must be in (0, 1], got %g", c.Display.TileSize))
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}

	if err := c.validateSpawn(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// validateSpawn checks the start body: on-board, distinct, contiguous, and
// not facing into its own second segment.
func (c SnakeConfig) validateSpawn() error {
	body := c.Snake.Body
	if len(body) == 0 {
		return errors.New("snake.body must have at least one segment")
	}

	seen := make(map[Cell]bool, len(body))
	for i, cell := range body {
		if cell.X < 0 || cell.Y < 0 || cell.X >= c.Board.Width || cell.Y >= c.Board.Height {
			return fmt.Errorf("snake.body[%d] (%d, %d) is off the board", i, cell.X, cell.Y)
		}
		if seen[cell] {
			return fmt.Errorf("snake.body[%d] (%d, %d) repeats a cell", i, cell.X, cell.Y)
		}
		seen[cell] = true
		if i > 0 {
			prev := body[i-1]
			if abs(cell.X-prev.X)+abs(cell.Y-prev.Y) != 1 {
				return fmt.Errorf("snake.body[%d] is not adjacent to snake.body[%d]", i, i-1)
			}
		}
	}

	dx, dy, ok := directionDelta(c.Snake.Direction)
	if !ok {
		return fmt.Errorf("snake.direction %q is not one of up, down, left, right", c.Snake.Direction)
	}
	if len(body) > 1 && body[0].X+dx == body[1].X && body[0].Y+dy == body[1].Y {
		return fmt.Errorf("snake.direction %q points into the second segment", c.Snake.Direction)
	}
	return nil
}

func directionDelta(name string) (dx, dy int, ok bool) {
	switch strings.ToLower(name) {
	case "up":
		return 0, 1, true
	case "down":
		return 0, -1, true
	case "left":
		return -1, 0, true
	case "right":
		return 1, 0, true
	}
	return 0, 0, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
