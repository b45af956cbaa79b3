package breakout

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func defaultLevel(t *testing.T) *Level {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	layout, err := NewPalette(cfg).Resolve(cfg.Layout)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	level, err := NewLevel(cfg, layout)
	if err != nil {
		t.Fatalf("NewLevel() failed: %v", err)
	}
	return level
}

func TestPalette(t *testing.T) {
	p := NewPalette(config.DefaultBreakoutConfig())

	want := map[string]int{"red": 10, "green": 20, "blue": 30}
	if len(p) != len(want) {
		t.Fatalf("palette has %d types, expected %d", len(p), len(want))
	}
	for name, points := range want {
		bt, ok := p[name]
		if !ok {
			t.Errorf("palette missing %q", name)
			continue
		}
		if bt.Points != points {
			t.Errorf("%s points = %d, expected %d", name, bt.Points, points)
		}
		if bt.Name != name {
			t.Errorf("%s name = %q", name, bt.Name)
		}
	}
}

func TestPaletteResolveSharesTypes(t *testing.T) {
	p := NewPalette(config.DefaultBreakoutConfig())
	layout, err := p.Resolve([][]string{{"red", "blue"}, {"blue", "red"}})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if layout[0][0] != layout[1][1] || layout[0][0] != p["red"] {
		t.Error("bricks of one type should share the same BrickType")
	}
}

func TestPaletteResolveUnknown(t *testing.T) {
	p := NewPalette(config.DefaultBreakoutConfig())
	_, err := p.Resolve([][]string{{"red", "purple"}})
	if !errors.Is(err, ErrUnknownBrickType) {
		t.Errorf("Resolve() = %v, expected ErrUnknownBrickType", err)
	}
}

func TestNewLevelLayout(t *testing.T) {
	level := defaultLevel(t)

	if level.Len() != 48 {
		t.Fatalf("Len() = %d, expected 48", level.Len())
	}
	if level.Rows() != 6 || level.Cols() != 8 {
		t.Errorf("grid = %dx%d, expected 6x8", level.Rows(), level.Cols())
	}

	first, ok := level.Brick(0, 0)
	if !ok {
		t.Fatal("Brick(0, 0) not found")
	}
	if first.Rect != core.NewRect(64, 48, 64, 32) {
		t.Errorf("Brick(0, 0) rect = %+v, expected {64 48 64 32}", first.Rect)
	}

	red, _ := level.Brick(5, 1)
	if red.Rect != core.NewRect(128, 208, 64, 32) {
		t.Errorf("Brick(5, 1) rect = %+v, expected {128 208 64 32}", red.Rect)
	}
	if red.Type.Name != "red" || red.Points() != 10 {
		t.Errorf("Brick(5, 1) = %s/%d, expected red/10", red.Type.Name, red.Points())
	}

	// Flat order is row-major
	bricks := level.Bricks()
	for row := range level.Rows() {
		for col := range level.Cols() {
			b, _ := level.Brick(row, col)
			if bricks[row*level.Cols()+col] != b {
				t.Errorf("Bricks()[%d] does not match Brick(%d, %d)", row*level.Cols()+col, row, col)
			}
		}
	}

	if _, ok := level.Brick(6, 0); ok {
		t.Error("Brick(6, 0) should be out of range")
	}
	if _, ok := level.Brick(0, -1); ok {
		t.Error("Brick(0, -1) should be out of range")
	}
}

func TestLevelIsClear(t *testing.T) {
	level := defaultLevel(t)

	if level.IsClear() {
		t.Error("new level should not be clear")
	}
	if level.Remaining() != 48 {
		t.Errorf("Remaining() = %d, expected 48", level.Remaining())
	}

	for i := range level.Len() - 1 {
		level.brickAt(i).Break()
	}
	if level.IsClear() {
		t.Error("level with one brick left should not be clear")
	}
	if level.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", level.Remaining())
	}

	level.brickAt(level.Len() - 1).Break()
	if !level.IsClear() {
		t.Error("level with every brick broken should be clear")
	}
}

func TestLevelCloneIsIndependent(t *testing.T) {
	level := defaultLevel(t)
	clone := level.Clone()

	clone.brickAt(0).Break()
	if level.brickAt(0).Broken() {
		t.Error("breaking a brick in the clone should not affect the original")
	}
	if clone.Remaining() != 47 {
		t.Errorf("clone Remaining() = %d, expected 47", clone.Remaining())
	}
}

func TestBricksReturnsCopy(t *testing.T) {
	level := defaultLevel(t)
	bricks := level.Bricks()
	bricks[0].Break()
	bricks[1].Rect.X = -100

	if level.brickAt(0).Broken() {
		t.Error("Bricks() should return a copy")
	}
	if level.brickAt(1).Rect.X == -100 {
		t.Error("Bricks() should not alias brick rects")
	}
}

func TestNewLevelErrors(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	red := &BrickType{Name: "red", Points: 10}

	badDims := config.DefaultBreakoutConfig()
	badDims.Bricks.Width = 0

	tests := []struct {
		name   string
		cfg    config.BreakoutConfig
		layout [][]*BrickType
		want   error
	}{
		{"nil layout", cfg, nil, ErrEmptyLayout},
		{"empty row", cfg, [][]*BrickType{{}}, ErrEmptyLayout},
		{"ragged rows", cfg, [][]*BrickType{{red, red}, {red}}, ErrRaggedLayout},
		{"nil brick type", cfg, [][]*BrickType{{red, nil}}, ErrUnknownBrickType},
		{"zero brick width", badDims, [][]*BrickType{{red}}, ErrInvalidDimension},
		{"wider than screen", cfg, [][]*BrickType{{red, red, red, red, red, red, red, red, red, red, red}}, ErrInvalidDimension},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLevel(tc.cfg, tc.layout)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewLevel() = %v, expected %v", err, tc.want)
			}
		})
	}
}
