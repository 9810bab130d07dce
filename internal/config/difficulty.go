package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// MoveIntervalForPreset returns the movement tick period for a difficulty preset.
func MoveIntervalForPreset(preset DifficultyPreset) (time.Duration, error) {
	switch preset {
	case DifficultyEasy:
		return 200 * time.Millisecond, nil
	case DifficultyNormal:
		return 150 * time.Millisecond, nil
	case DifficultyHard:
		return 100 * time.Millisecond, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	interval, err := MoveIntervalForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Timing.MoveInterval = interval
	return nil
}
