package breakout

// View is a read-only copy of the game after an update. Renderers draw from
// it and never see the Game itself; changing a View does not affect play.
type View struct {
	Background string
	Width      float64
	Height     float64

	Bricks []Brick // Unbroken bricks in flat order
	Ball   Ball
	Paddle Paddle

	Score int
	State State
}

// View returns a snapshot of the current state for drawing.
func (g *Game) View() View {
	bricks := make([]Brick, 0, g.level.Remaining())
	for i := range g.level.Len() {
		if b := g.level.brickAt(i); !b.Broken() {
			bricks = append(bricks, *b)
		}
	}

	return View{
		Background: g.cfg.Screen.Background,
		Width:      g.cfg.Screen.Width,
		Height:     g.cfg.Screen.Height,
		Bricks:     bricks,
		Ball:       g.ball,
		Paddle:     g.paddle,
		Score:      g.score,
		State:      g.state,
	}
}

// Drawables returns everything to draw, back to front: bricks, ball, paddle.
func (v View) Drawables() []Renderable {
	out := make([]Renderable, 0, len(v.Bricks)+2)
	for _, b := range v.Bricks {
		out = append(out, b)
	}
	return append(out, v.Ball, v.Paddle)
}
