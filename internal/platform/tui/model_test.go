package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// fakeClock is a settable time source.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T) (*Model, *fakeClock) {
	t.Helper()
	game, err := breakout.New(config.DefaultBreakoutConfig())
	if err != nil {
		t.Fatalf("breakout.New() failed: %v", err)
	}

	clock := &fakeClock{now: t0}
	m := NewModel(game, core.DefaultRuntimeConfig(), nil)
	m.clock = clock.Now
	m.start = t0
	return m, clock
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func tick(m *Model, at time.Duration) {
	m.Update(TickMsg(t0.Add(at)))
}

func paddleX(m *Model) float64 {
	return m.game.View().Paddle.Rect.X
}

func TestModelMovesPaddle(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	tick(m, 16*time.Millisecond)  // first frame, dt = 0
	tick(m, 116*time.Millisecond) // dt = 100

	if got := paddleX(m); got != 233 {
		t.Errorf("paddle x = %v, expected 233", got)
	}
}

func TestModelReleasesKeyAfterTimeout(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	tick(m, 0)
	tick(m, 600*time.Millisecond) // past the repeat delay, key released first
	before := paddleX(m)
	tick(m, 700*time.Millisecond)

	if got := paddleX(m); got != before {
		t.Errorf("paddle moved from %v to %v after key release", before, got)
	}
	if m.keys.IsHeld(core.KeyArrowRight) {
		t.Error("right arrow should have been released")
	}
}

func TestModelPause(t *testing.T) {
	m, _ := newTestModel(t)
	tick(m, 0)

	m.Update(runeKey('p'))
	if !m.driver.Paused() {
		t.Fatal("p should pause")
	}
	if !strings.Contains(m.View(), PauseText) {
		t.Error("paused view should show the pause message")
	}

	ticks := m.game.Tick()
	tick(m, time.Second)
	if m.game.Tick() != ticks {
		t.Error("game advanced while paused")
	}

	m.Update(runeKey('p'))
	if m.driver.Paused() {
		t.Fatal("p should resume")
	}
	tick(m, 2*time.Second)
	tick(m, 2*time.Second+16*time.Millisecond)
	if m.game.Tick() != ticks+2 {
		t.Errorf("Tick() = %d, expected %d after resume", m.game.Tick(), ticks+2)
	}
}

func TestModelRestartAfterLoss(t *testing.T) {
	m, _ := newTestModel(t)

	// r does nothing while playing
	m.Update(runeKey('r'))
	tick(m, 0)
	if m.game.Tick() != 1 {
		t.Fatalf("Tick() = %d, expected 1", m.game.Tick())
	}

	// Without input the ball eventually falls past the paddle
	at := time.Duration(0)
	for i := 0; i < 5000 && m.game.State() == breakout.StatePlay; i++ {
		at += 16 * time.Millisecond
		tick(m, at)
	}
	if m.game.State() == breakout.StatePlay {
		t.Fatal("game never ended")
	}
	if !strings.Contains(m.View(), RestartHint) {
		t.Error("end screen should show the restart hint")
	}

	m.Update(runeKey('r'))
	if m.game.State() != breakout.StatePlay || m.game.Score() != 0 {
		t.Errorf("after restart: state=%v score=%d", m.game.State(), m.game.Score())
	}
	if m.keymap.Restart.Enabled() {
		t.Error("restart binding should be disabled while playing")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.game.State() != breakout.StatePlay {
		t.Error("resize should not end the game")
	}
}

func TestModelViewShowsScoreAndHelp(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()

	if !strings.Contains(out, breakout.ScoreLabel) {
		t.Error("view should contain the score label")
	}
	if !strings.Contains(out, "quit") {
		t.Error("view should contain the help line")
	}
}
