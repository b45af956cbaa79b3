package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestBallReflect(t *testing.T) {
	b := Ball{Rect: core.NewRect(10, 20, 22, 22), VX: 2, VY: 6}

	b.Reflect(true, false)
	if b.VX != -2 || b.VY != 6 {
		t.Errorf("Reflect(true, false) = (%v, %v), expected (-2, 6)", b.VX, b.VY)
	}

	b.Reflect(true, false)
	if b.VX != 2 || b.VY != 6 {
		t.Errorf("second Reflect(true, false) = (%v, %v), expected (2, 6)", b.VX, b.VY)
	}

	b.Reflect(true, true)
	if b.VX != -2 || b.VY != -6 {
		t.Errorf("Reflect(true, true) = (%v, %v), expected (-2, -6)", b.VX, b.VY)
	}

	b.Reflect(false, false)
	if b.VX != -2 || b.VY != -6 {
		t.Errorf("Reflect(false, false) changed velocity to (%v, %v)", b.VX, b.VY)
	}

	if b.Rect != core.NewRect(10, 20, 22, 22) {
		t.Errorf("Reflect should not move the ball, got %+v", b.Rect)
	}
}

func TestBallMove(t *testing.T) {
	b := Ball{Rect: core.NewRect(10, 20, 22, 22), VX: 2, VY: -6}
	b.Move()
	if b.Rect.X != 12 || b.Rect.Y != 14 {
		t.Errorf("Move() position = (%v, %v), expected (12, 14)", b.Rect.X, b.Rect.Y)
	}
}

func TestBallCollideWith(t *testing.T) {
	wall := core.NewRect(100, 0, 50, 200)
	floor := core.NewRect(0, 100, 200, 50)

	tests := []struct {
		name           string
		ball           core.Rect
		other          core.Rect
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{
			name:  "hits left face of a tall rect",
			ball:  core.NewRect(90, 50, 22, 22),
			other: wall,
			wantX: 78, wantY: 50,
			wantVX: -2, wantVY: 6,
		},
		{
			name:  "hits right face of a tall rect",
			ball:  core.NewRect(140, 50, 22, 22),
			other: wall,
			wantX: 150, wantY: 50,
			wantVX: -2, wantVY: 6,
		},
		{
			name:  "hits top face of a wide rect",
			ball:  core.NewRect(50, 90, 22, 22),
			other: floor,
			wantX: 50, wantY: 78,
			wantVX: 2, wantVY: -6,
		},
		{
			name:  "hits bottom face of a wide rect",
			ball:  core.NewRect(50, 140, 22, 22),
			other: floor,
			wantX: 50, wantY: 150,
			wantVX: 2, wantVY: -6,
		},
		{
			name:  "square overlap resolves vertically",
			ball:  core.NewRect(0, 0, 10, 10),
			other: core.NewRect(5, 5, 10, 10),
			wantX: 0, wantY: -5,
			wantVX: 2, wantVY: -6,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Rect: tc.ball, VX: 2, VY: 6}
			if !b.CollideWith(tc.other) {
				t.Fatal("CollideWith() = false, expected true")
			}
			if b.Rect.X != tc.wantX || b.Rect.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", b.Rect.X, b.Rect.Y, tc.wantX, tc.wantY)
			}
			if b.VX != tc.wantVX || b.VY != tc.wantVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.VX, b.VY, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestBallCollideWithDisjoint(t *testing.T) {
	b := Ball{Rect: core.NewRect(0, 0, 5, 5), VX: 2, VY: 6}
	if b.CollideWith(core.NewRect(10, 10, 5, 5)) {
		t.Error("CollideWith() on disjoint rects should return false")
	}
	if b.Rect != core.NewRect(0, 0, 5, 5) || b.VX != 2 || b.VY != 6 {
		t.Errorf("disjoint CollideWith() changed the ball: %+v", b)
	}
}

func TestPaddleMoveClamps(t *testing.T) {
	p := Paddle{Rect: core.NewRect(100, 448, 104, 24)}

	p.Move(-50, 536)
	if p.Rect.X != 50 {
		t.Errorf("X = %v, expected 50", p.Rect.X)
	}

	p.Move(-500, 536)
	if p.Rect.X != 0 {
		t.Errorf("X = %v, expected clamp to 0", p.Rect.X)
	}

	p.Move(1000, 536)
	if p.Rect.X != 536 {
		t.Errorf("X = %v, expected clamp to 536", p.Rect.X)
	}

	if p.Rect.Y != 448 {
		t.Errorf("Move should not change Y, got %v", p.Rect.Y)
	}
}

func TestCollisionKindString(t *testing.T) {
	kinds := map[CollisionKind]string{
		CollisionNone:       "none",
		CollisionLeftWall:   "left_wall",
		CollisionRightWall:  "right_wall",
		CollisionBottomWall: "bottom_wall",
		CollisionTopWall:    "top_wall",
		CollisionPaddle:     "paddle",
		CollisionBrick:      "brick",
		CollisionKind(99):   "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("CollisionKind(%d).String() = %q, expected %q", int(k), got, want)
		}
	}
}
