package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  ←/A, →/D   - Move paddle
  P/Esc      - Pause
  R          - Restart (after the game ends)
  Q/Ctrl+C   - Quit

Logs are only written when --log-file is set, since the game owns the screen.

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --log-file breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogFile(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger, err := newLogger(logOut, "breakout")
	if err != nil {
		return err
	}

	game, err := breakout.New(cfg, breakout.WithLogger(logger))
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Loop.TickRate,
	}

	logger.Info("starting game", "width", width, "height", height, "fps", rt.TickRate, "difficulty", flagDifficulty)
	if err := tui.Run(game, rt, logger); err != nil {
		return err
	}
	logger.Info("game finished", "score", game.Score(), "state", game.State())
	return nil
}
