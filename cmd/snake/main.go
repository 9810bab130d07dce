// snake is the classic grid Snake, playable in the terminal or in a window.
//
// Usage:
//
//	snake                    - Play in the terminal
//	snake play [--window]    - Play in the terminal, or in a desktop window
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: display.target_fps)
//	--seed <value>        - RNG seed for reproducible food placement
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard (movement speed)
//	--log <path>          - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

// logger is configured by the root command before any subcommand runs.
var (
	logger    = log.New(os.Stderr)
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game",
	Long: `Snake moves one cell per tick across a 10x10 board. Eat food to grow,
and avoid the walls and your own body. Losing starts a new run at once.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  snake
  snake play --window
  snake --difficulty hard --seed 42
  snake config --defaults > my-snake.yaml`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = display.target_fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, env "+config.EnvSeed+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML (env "+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write debug logs to this file (env "+config.EnvLog+")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, fills unset flags from the environment and configures
// the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("seed") {
		flagSeed = config.EnvInt64(config.EnvSeed, flagSeed)
	}
	if !flags.Changed("config") {
		flagConfig = config.EnvString(config.EnvConfig, flagConfig)
	}
	if !flags.Changed("log") {
		flagLog = config.EnvString(config.EnvLog, flagLog)
	}

	l, closer, err := newLogger(flagLog)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	return nil
}

// newLogger returns a warn-level stderr logger, or a debug-level logger
// writing to path when one is given.
func newLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		l := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake",
			Level:           log.WarnLevel,
		})
		return l, nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	return l, f, nil
}
