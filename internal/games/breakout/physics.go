package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Renderable is the capability the draw pass needs from an entity:
// where it is and which image represents it.
type Renderable interface {
	Bounds() core.Rect
	ImageRef() string
}

// Ball represents the ball state in world pixels.
type Ball struct {
	Image  string
	Rect   core.Rect
	VX, VY float64 // Velocity in pixels per tick
}

// Bounds implements Renderable.
func (b Ball) Bounds() core.Rect { return b.Rect }

// ImageRef implements Renderable.
func (b Ball) ImageRef() string { return b.Image }

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.Rect = b.Rect.Translate(b.VX, b.VY)
}

// Reflect negates the horizontal and/or vertical velocity.
// Position is left untouched.
func (b *Ball) Reflect(flipX, flipY bool) {
	if flipX {
		b.VX = -b.VX
	}
	if flipY {
		b.VY = -b.VY
	}
}

// CollideWith resolves an overlap between the ball and other.
//
// The collision normal is taken from the shallower penetration axis: a
// narrow, tall overlap is a hit on a vertical face, so X is reflected and the
// ball is pushed out horizontally; anything else (including a square overlap)
// reflects Y and pushes vertically. The push direction depends on which side
// of the overlap the ball's edge lies.
//
// Callers must have checked Intersects first. If the rects turn out to be
// disjoint nothing changes and false is returned.
func (b *Ball) CollideWith(other core.Rect) bool {
	overlap, ok := b.Rect.Clip(other)
	if !ok {
		return false
	}

	if overlap.W < overlap.H {
		b.Reflect(true, false)
		if b.Rect.X == overlap.X {
			b.Rect.X += overlap.W
		} else {
			b.Rect.X -= overlap.W
		}
	} else {
		b.Reflect(false, true)
		if b.Rect.Y == overlap.Y {
			b.Rect.Y += overlap.H
		} else {
			b.Rect.Y -= overlap.H
		}
	}

	return true
}

// Paddle represents the player's paddle. Only X changes during play.
type Paddle struct {
	Image string
	Rect  core.Rect
}

// Bounds implements Renderable.
func (p Paddle) Bounds() core.Rect { return p.Rect }

// ImageRef implements Renderable.
func (p Paddle) ImageRef() string { return p.Image }

// Move shifts the paddle horizontally by dx and keeps it within [0, maxX].
func (p *Paddle) Move(dx, maxX float64) {
	p.Rect.X = core.ClampF(p.Rect.X+dx, 0, maxX)
}

// CollisionKind identifies which resolution fired during a tick.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionLeftWall
	CollisionRightWall
	CollisionBottomWall
	CollisionTopWall
	CollisionPaddle
	CollisionBrick
)

// String returns a human-readable name for the collision kind.
func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionLeftWall:
		return "left_wall"
	case CollisionRightWall:
		return "right_wall"
	case CollisionBottomWall:
		return "bottom_wall"
	case CollisionTopWall:
		return "top_wall"
	case CollisionPaddle:
		return "paddle"
	case CollisionBrick:
		return "brick"
	default:
		return "unknown"
	}
}
