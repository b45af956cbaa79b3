package breakout

import "math"

// Snapshot contains the complete simulation state.
// Uses primitive types only for stable comparison across runs.
type Snapshot struct {
	Tick  uint64
	State State
	Score int

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	// Broken flags in flat brick order
	Broken []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	broken := make([]bool, g.level.Len())
	for i := range broken {
		broken[i] = g.level.brickAt(i).Broken()
	}

	return Snapshot{
		Tick:    g.tick,
		State:   g.state,
		Score:   g.score,
		PaddleX: g.paddle.Rect.X,
		BallX:   g.ball.Rect.X,
		BallY:   g.ball.Rect.Y,
		BallVX:  g.ball.VX,
		BallVY:  g.ball.VY,
		Broken:  broken,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)

	for _, b := range snap.Broken {
		if b {
			h = h*31 + 1
		} else {
			h *= 31
		}
	}

	return h
}
