// breakout is a terminal brick breaker.
//
// Usage:
//
//	breakout play            - Play in the terminal
//	breakout simulate        - Run a headless game steered by the autopilot
//	breakout config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
//	--fps <rate>          - Tick rate (default: from config)
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - clear the bricks in your terminal",
	Long: `Breakout is a brick breaker for the terminal. Keep the ball in play
with the paddle and break every brick to win.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless game steered by the autopilot
  config    - Print the effective configuration

Examples:
  breakout play
  breakout play --difficulty hard
  breakout simulate --ticks 5000 --log-level debug
  breakout config --config ./my-breakout.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config named by --config and applies --difficulty.
func loadConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	return cfg, nil
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens --log-file for appending. Without the flag logs go to
// fallback.
func openLogFile(fallback io.Writer) (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, f.Close, nil
}
