package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Autopilot steers the paddle toward the ball by pressing and releasing
// arrow keys, the same way a player would.
type Autopilot struct {
	keys     *core.KeyState
	deadZone float64 // Paddle stays put while the ball center is this close
}

// NewAutopilot returns an autopilot driving keys. A deadZone <= 0 means the
// paddle chases the ball center exactly.
func NewAutopilot(keys *core.KeyState, deadZone float64) *Autopilot {
	return &Autopilot{keys: keys, deadZone: max(deadZone, 0)}
}

// Steer updates the held keys from the latest view.
func (a *Autopilot) Steer(v View) {
	ballX, _ := v.Ball.Rect.Center()
	paddleX, _ := v.Paddle.Rect.Center()
	diff := ballX - paddleX

	switch {
	case diff > a.deadZone:
		a.keys.Release(core.KeyArrowLeft)
		a.keys.Press(core.KeyArrowRight)
	case diff < -a.deadZone:
		a.keys.Release(core.KeyArrowRight)
		a.keys.Press(core.KeyArrowLeft)
	default:
		a.keys.Release(core.KeyArrowLeft)
		a.keys.Release(core.KeyArrowRight)
	}
}
