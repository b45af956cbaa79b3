package breakout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is the simulation state.
type State int

const (
	StatePlay State = iota // Ball in play
	StateLose              // Ball crossed the bottom wall
	StateWin               // Last brick broken
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlay:
		return "play"
	case StateLose:
		return "lose"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// StepResult reports what a single Update did.
type StepResult struct {
	State     State
	Score     int
	Collision CollisionKind
	Brick     int // Flat index of the brick broken this tick, -1 if none
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for state changes and collisions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game owns the ball, paddle, level and score and advances them one tick at
// a time. It is not safe for concurrent use.
type Game struct {
	cfg      config.BreakoutConfig
	template *Level // Pristine level, cloned on Reset

	level  *Level
	paddle Paddle
	ball   Ball

	state State
	score int
	tick  uint64

	logger *log.Logger
}

// New validates cfg, builds the level from its layout and returns a game
// ready to play.
func New(cfg config.BreakoutConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	layout, err := NewPalette(cfg).Resolve(cfg.Layout)
	if err != nil {
		return nil, err
	}
	level, err := NewLevel(cfg, layout)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		template: level,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.logger.Info("level loaded", "bricks", level.Len(), "rows", level.Rows(), "cols", level.Cols())
	g.Reset()
	return g, nil
}

// Reset restores the level, entities, score and state to their start values.
func (g *Game) Reset() {
	g.level = g.template.Clone()

	g.paddle = Paddle{
		Image: g.cfg.Paddle.Image,
		Rect: core.NewRect(
			g.cfg.Screen.Width/2-g.cfg.Paddle.Width/2,
			g.cfg.Screen.Height-g.cfg.Paddle.Height-g.cfg.Paddle.BottomMargin,
			g.cfg.Paddle.Width,
			g.cfg.Paddle.Height,
		),
	}

	g.ball = Ball{
		Image: g.cfg.Ball.Image,
		Rect: core.NewRect(
			g.cfg.Screen.Width/2,
			g.cfg.Screen.Height/2,
			g.cfg.Ball.Width,
			g.cfg.Ball.Height,
		),
		VX: g.cfg.Ball.VelocityX,
		VY: g.cfg.Ball.VelocityY,
	}

	g.score = 0
	g.tick = 0
	g.state = StatePlay
}

// Update advances the simulation by one tick. dt is the frame time in
// milliseconds and only scales paddle movement; the ball moves by its
// velocity once per tick. Nothing happens once the game is won or lost.
func (g *Game) Update(dt float64, keys core.KeyQuery) StepResult {
	if g.state != StatePlay {
		return StepResult{State: g.state, Score: g.score, Brick: -1}
	}
	if keys == nil {
		keys = core.NoInput
	}

	g.tick++
	g.movePaddle(dt, keys)
	g.ball.Move()
	kind, brick := g.resolveCollisions()

	return StepResult{
		State:     g.state,
		Score:     g.score,
		Collision: kind,
		Brick:     brick,
	}
}

// movePaddle applies the most recently pressed arrow key.
func (g *Game) movePaddle(dt float64, keys core.KeyQuery) {
	step := g.cfg.Paddle.Speed * dt
	maxX := g.cfg.Screen.Width - g.cfg.Paddle.Width

	if keys.Pressed(core.KeyArrowLeft) {
		g.paddle.Move(-step, maxX)
	} else if keys.Pressed(core.KeyArrowRight) {
		g.paddle.Move(step, maxX)
	}
}

// resolveCollisions applies at most one resolution: walls in the order left,
// right, bottom, top, then the paddle, then the first unbroken brick hit.
func (g *Game) resolveCollisions() (CollisionKind, int) {
	b := &g.ball
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height

	switch {
	case b.Rect.X < 0:
		b.Rect.X = 0
		b.Reflect(true, false)
		return CollisionLeftWall, -1

	case b.Rect.Right() > w:
		b.Rect.X = w - b.Rect.W
		b.Reflect(true, false)
		return CollisionRightWall, -1

	case b.Rect.Bottom() > h:
		b.Rect.Y = h - b.Rect.H
		b.Reflect(false, true)
		g.logger.Info("ball lost", "x", b.Rect.X, "paddle_x", g.paddle.Rect.X, "tick", g.tick)
		g.setState(StateLose)
		return CollisionBottomWall, -1

	case b.Rect.Y < 0:
		b.Rect.Y = 0
		b.Reflect(false, true)
		return CollisionTopWall, -1

	case b.Rect.Intersects(g.paddle.Rect):
		g.collide(g.paddle.Rect, "paddle")
		return CollisionPaddle, -1
	}

	for i := range g.level.Len() {
		brick := g.level.brickAt(i)
		if brick.Broken() || !b.Rect.Intersects(brick.Rect) {
			continue
		}

		g.collide(brick.Rect, "brick")
		brick.Break()
		g.score += brick.Points()
		g.logger.Debug("brick broken", "index", i, "type", brick.Type.Name, "score", g.score)

		if g.level.IsClear() {
			g.setState(StateWin)
		}
		return CollisionBrick, i
	}

	return CollisionNone, -1
}

// collide resolves the ball against a rect already known to intersect it.
func (g *Game) collide(other core.Rect, what string) {
	if !g.ball.CollideWith(other) {
		g.logger.Error("intersecting rects have no overlap",
			"with", what, "ball", g.ball.Rect, "other", other, "tick", g.tick)
	}
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.logger.Info("state changed", "from", g.state, "to", s, "score", g.score, "tick", g.tick)
	g.state = s
}

// State returns the current simulation state.
func (g *Game) State() State { return g.state }

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Tick returns the number of ticks simulated in play.
func (g *Game) Tick() uint64 { return g.tick }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BreakoutConfig { return g.cfg }
