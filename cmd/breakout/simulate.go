package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/loop"
)

var (
	flagTicks    int
	flagRealtime bool
	flagRender   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game steered by the autopilot",
	Long: `Run the simulation without a terminal UI. The autopilot presses the
arrow keys to follow the ball, and the run stops when the game is won or
lost or after --ticks frames.

By default frames are fed as fast as possible with a fixed frame time.
With --realtime a ticker paces them at the configured tick rate.

Examples:
  breakout simulate
  breakout simulate --ticks 10000 --log-level debug
  breakout simulate --realtime --render`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of frames")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with a real-time ticker")
	simulateCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final screen")
}

// simulation couples a game with an autopilot through the loop driver.
type simulation struct {
	game   *breakout.Game
	keys   *core.KeyState
	pilot  *breakout.Autopilot
	driver *loop.Driver
	logger *log.Logger
	last   breakout.StepResult
	limit  uint64 // Stop after this many game ticks, 0 for no limit
	stop   func()
}

func newSimulation(game *breakout.Game, logger *log.Logger) *simulation {
	cfg := game.Config()
	keys := core.NewKeyState()
	s := &simulation{
		game:   game,
		keys:   keys,
		pilot:  breakout.NewAutopilot(keys, cfg.Paddle.Width/4),
		logger: logger,
		last:   breakout.StepResult{Brick: -1},
		stop:   func() {},
	}
	s.driver = loop.NewDriver(s.update, nil,
		loop.WithMaxDelta(cfg.Loop.MaxFrameDelta),
		loop.WithLogger(logger),
	)
	return s
}

func (s *simulation) update(dt float64) {
	// The ticker may still deliver a frame after stop
	if s.limit > 0 && s.game.Tick() >= s.limit {
		return
	}

	s.pilot.Steer(s.game.View())
	s.last = s.game.Update(dt, s.keys)
	if s.last.Collision == breakout.CollisionBrick {
		s.logger.Debug("brick", "index", s.last.Brick, "score", s.last.Score, "tick", s.game.Tick())
	}
	if s.last.State != breakout.StatePlay || (s.limit > 0 && s.game.Tick() >= s.limit) {
		s.stop()
	}
}

// runFixed feeds up to ticks frames spaced frameMS apart.
func (s *simulation) runFixed(ticks int, frameMS float64) {
	for i := 0; i < ticks && s.game.State() == breakout.StatePlay; i++ {
		s.driver.Frame(float64(i) * frameMS)
	}
}

// runRealtime paces frames with a ticker until the game ends, ticks game
// ticks were simulated or ctx is cancelled.
func (s *simulation) runRealtime(ctx context.Context, ticks int, interval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.limit = uint64(ticks) //#nosec G115 -- ticks is validated positive
	s.stop = cancel

	err := s.driver.Run(ctx, interval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogFile(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger, err := newLogger(logOut, "simulate")
	if err != nil {
		return err
	}

	game, err := breakout.New(cfg, breakout.WithLogger(logger))
	if err != nil {
		return err
	}
	sim := newSimulation(game, logger)

	started := time.Now()
	if flagRealtime {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		interval := time.Second / time.Duration(cfg.Loop.TickRate)
		if err := sim.runRealtime(ctx, flagTicks, interval); err != nil {
			return err
		}
	} else {
		sim.runFixed(flagTicks, 1000/float64(cfg.Loop.TickRate))
	}

	logger.Info("simulation finished",
		"state", game.State(),
		"score", game.Score(),
		"ticks", game.Tick(),
		"elapsed", time.Since(started),
	)

	out := cmd.OutOrStdout()
	if flagRender {
		renderFinal(out, game)
	}
	view := game.View()
	_, err = fmt.Fprintf(out, "state=%s score=%d ticks=%d bricks=%d\n",
		view.State, view.Score, game.Tick(), len(view.Bricks))
	return err
}

// renderFinal prints the last frame as plain text.
func renderFinal(w io.Writer, game *breakout.Game) {
	rt := core.DefaultRuntimeConfig()
	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	breakout.NewRenderer(game.Config()).Draw(screen, game.View())
	fmt.Fprintln(w, screen.String())
}
