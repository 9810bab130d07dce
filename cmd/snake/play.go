package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start playing. A new run begins immediately and restarts on its own
after every loss.

Controls:
  W/Up      - Turn up
  S/Down    - Turn down
  A/Left    - Turn left
  D/Right   - Turn right
  Esc/Q     - Quit

Difficulty options (movement tick):
  easy   - 200ms
  normal - 150ms
  hard   - 100ms

Examples:
  snake play
  snake play --window
  snake play --difficulty easy
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	// The root command plays too, so it takes the same flag.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of the terminal UI")
	}
}

// loadConfig resolves the configuration file and applies the difficulty preset.
func loadConfig() (config.SnakeConfig, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySnakePreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source, "move", cfg.Timing.MoveInterval, "food", cfg.Timing.FoodInterval)
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := snake.New(cfg)
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW:  cfg.Display.Width,
		ScreenH:  cfg.Display.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rc.TickRate <= 0 {
		rc.TickRate = cfg.Display.TargetFPS
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	if flagWindow {
		return window.Run(game, rc, logger)
	}

	rc.ScreenW, rc.ScreenH = 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	opts := tui.Options{
		Config: rc,
		Styles: tui.NewStyles(cfg.Display.Colors),
		Keys:   tui.DefaultKeyMap(),
		Logger: logger,
	}
	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
