package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/loop"
)

// PauseText and RestartHint are drawn over the playfield.
const (
	PauseText   = "PAUSED"
	PauseHint   = "Press P to resume"
	RestartHint = "Press R to restart"
)

// Model is the Bubble Tea model running a breakout game.
type Model struct {
	game     *breakout.Game
	renderer *breakout.Renderer
	driver   *loop.Driver
	keys     *core.KeyState
	holds    *HoldTracker

	keymap KeyMap
	help   help.Model
	styles Styles

	screen *core.Screen
	config core.RuntimeConfig
	start  time.Time
	clock  func() time.Time
	last   breakout.StepResult

	logger   *log.Logger
	quitting bool
}

// NewModel creates a Bubble Tea model for game. The last terminal row is
// kept for the help line. A nil logger discards output.
func NewModel(game *breakout.Game, rt core.RuntimeConfig, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := game.Config()

	keys := core.NewKeyState()
	m := &Model{
		game:     game,
		renderer: breakout.NewRenderer(cfg),
		keys:     keys,
		holds: NewHoldTracker(keys,
			time.Duration(cfg.Input.HoldTimeoutMS)*time.Millisecond,
			time.Duration(cfg.Input.RepeatDelayMS)*time.Millisecond),
		keymap: DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(cfg.Screen.Background),
		screen: core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		config: rt,
		clock:  time.Now,
		last:   breakout.StepResult{Brick: -1},
		logger: logger,
	}
	m.start = m.clock()
	m.driver = loop.NewDriver(m.update, m.draw,
		loop.WithMaxDelta(cfg.Loop.MaxFrameDelta),
		loop.WithLogger(logger),
	)
	m.draw()
	return m
}

// update is the driver's update callback.
func (m *Model) update(dt float64) {
	prev := m.last.State
	m.last = m.game.Update(dt, m.keys)
	if m.last.State != prev && m.last.State != breakout.StatePlay {
		m.keymap.Restart.SetEnabled(true)
		m.holds.ReleaseAll()
	}
}

// draw is the driver's draw callback.
func (m *Model) draw() {
	m.renderer.Draw(m.screen, m.game.View())
	if m.game.State() != breakout.StatePlay {
		// Sits below the end-of-game box
		m.screen.DrawTextCentered(m.screen.Height()/2+2, RestartHint, core.ColorGray)
	}
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.togglePause()

	case key.Matches(msg, m.keymap.Restart):
		m.restart()

	case key.Matches(msg, m.keymap.Left):
		if !m.driver.Paused() {
			m.holds.Press(core.KeyArrowLeft, m.clock())
		}

	case key.Matches(msg, m.keymap.Right):
		if !m.driver.Paused() {
			m.holds.Press(core.KeyArrowRight, m.clock())
		}
	}

	return m, nil
}

func (m *Model) togglePause() {
	if m.game.State() != breakout.StatePlay {
		return
	}
	if m.driver.Paused() {
		m.driver.Resume()
		m.logger.Debug("resumed", "tick", m.game.Tick())
		return
	}
	m.driver.Pause()
	m.holds.ReleaseAll()
	m.logger.Debug("paused", "tick", m.game.Tick())
}

func (m *Model) restart() {
	m.logger.Info("restart", "score", m.game.Score(), "state", m.game.State())
	m.game.Reset()
	m.last = breakout.StepResult{State: breakout.StatePlay, Brick: -1}
	m.holds.ReleaseAll()
	m.keymap.Restart.SetEnabled(false)
	m.driver.Resume()
	m.draw()
}

// handleResize processes window resize events. The world is independent of
// the terminal size, so the game keeps running.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.draw()
	return m, nil
}

// handleTick delivers one frame stamped with the tick time.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.holds.Expire(now)
	m.driver.Frame(float64(now.Sub(m.start)) / float64(time.Millisecond))
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.driver.Paused() {
		breakout.DrawMessage(m.screen, PauseText, PauseHint)
	}
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keymap)
}

// Run starts the Bubble Tea program for game and blocks until it quits.
func Run(game *breakout.Game, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
