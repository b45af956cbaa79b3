// Package breakout implements the brick breaker engine: entities, collision
// response, the level grid and the per-tick simulation.
package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Layout errors.
var (
	ErrEmptyLayout      = errors.New("layout has no bricks")
	ErrRaggedLayout     = errors.New("layout rows differ in length")
	ErrUnknownBrickType = errors.New("unknown brick type")
	ErrInvalidDimension = errors.New("invalid brick dimension")
)

// BrickType describes a kind of brick. Values are shared by every brick of
// that kind and never modified after the palette is built.
type BrickType struct {
	Name   string
	Image  string
	Points int
}

// Palette maps type names to brick types.
type Palette map[string]*BrickType

// NewPalette builds one BrickType per configured type name.
func NewPalette(cfg config.BreakoutConfig) Palette {
	p := make(Palette, len(cfg.BrickTypes))
	for _, name := range cfg.BrickTypeNames() {
		bt := cfg.BrickTypes[name]
		p[name] = &BrickType{Name: name, Image: bt.Image, Points: bt.Points}
	}
	return p
}

// Resolve turns a matrix of type names into a matrix of brick types.
func (p Palette) Resolve(names [][]string) ([][]*BrickType, error) {
	layout := make([][]*BrickType, len(names))
	for row, line := range names {
		layout[row] = make([]*BrickType, len(line))
		for col, name := range line {
			bt, ok := p[name]
			if !ok {
				return nil, fmt.Errorf("breakout: row %d col %d: %w %q", row, col, ErrUnknownBrickType, name)
			}
			layout[row][col] = bt
		}
	}
	return layout, nil
}

// Brick is a single breakable brick.
type Brick struct {
	Rect   core.Rect
	Type   *BrickType
	broken bool
}

// Bounds implements Renderable.
func (b Brick) Bounds() core.Rect { return b.Rect }

// ImageRef implements Renderable.
func (b Brick) ImageRef() string { return b.Type.Image }

// Points returns the score awarded for breaking the brick.
func (b Brick) Points() int { return b.Type.Points }

// Broken reports whether the brick has been hit.
func (b Brick) Broken() bool { return b.broken }

// Break marks the brick as broken. There is no way back.
func (b *Brick) Break() { b.broken = true }

// Level is a grid of bricks stored in row-major order.
type Level struct {
	bricks []Brick
	rows   int
	cols   int
}

// NewLevel lays out bricks from a rows x cols matrix of brick types.
// The grid is centered horizontally and starts Bricks.OffsetY below the top wall;
// brick (row, col) lands at flat index row*cols+col.
func NewLevel(cfg config.BreakoutConfig, layout [][]*BrickType) (*Level, error) {
	if cfg.Bricks.Width <= 0 || cfg.Bricks.Height <= 0 {
		return nil, fmt.Errorf("breakout: %w: %vx%v", ErrInvalidDimension, cfg.Bricks.Width, cfg.Bricks.Height)
	}
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("breakout: %w", ErrEmptyLayout)
	}

	rows := len(layout)
	cols := len(layout[0])
	offsetX := (cfg.Screen.Width - cfg.Bricks.Width*float64(cols)) / 2
	offsetY := cfg.Bricks.OffsetY
	if offsetX < 0 {
		return nil, fmt.Errorf("breakout: %w: %d columns of %v do not fit width %v",
			ErrInvalidDimension, cols, cfg.Bricks.Width, cfg.Screen.Width)
	}

	bricks := make([]Brick, rows*cols)
	for row, line := range layout {
		if len(line) != cols {
			return nil, fmt.Errorf("breakout: row %d has %d bricks, want %d: %w", row, len(line), cols, ErrRaggedLayout)
		}
		for col, bt := range line {
			if bt == nil {
				return nil, fmt.Errorf("breakout: row %d col %d: %w", row, col, ErrUnknownBrickType)
			}
			bricks[row*cols+col] = Brick{
				Rect: core.NewRect(
					float64(col)*cfg.Bricks.Width+offsetX,
					float64(row)*cfg.Bricks.Height+offsetY,
					cfg.Bricks.Width,
					cfg.Bricks.Height,
				),
				Type: bt,
			}
		}
	}

	return &Level{bricks: bricks, rows: rows, cols: cols}, nil
}

// Clone creates a copy of the level with independent broken flags.
func (l *Level) Clone() *Level {
	clone := &Level{
		bricks: make([]Brick, len(l.bricks)),
		rows:   l.rows,
		cols:   l.cols,
	}
	copy(clone.bricks, l.bricks)
	return clone
}

// IsClear reports whether every brick is broken.
func (l *Level) IsClear() bool {
	for i := range l.bricks {
		if !l.bricks[i].broken {
			return false
		}
	}
	return true
}

// Bricks returns a copy of all bricks in flat order, broken ones included.
func (l *Level) Bricks() []Brick {
	out := make([]Brick, len(l.bricks))
	copy(out, l.bricks)
	return out
}

// Len returns the total number of bricks.
func (l *Level) Len() int { return len(l.bricks) }

// Remaining returns the number of unbroken bricks.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.bricks {
		if !l.bricks[i].broken {
			n++
		}
	}
	return n
}

// Rows returns the number of grid rows.
func (l *Level) Rows() int { return l.rows }

// Cols returns the number of grid columns.
func (l *Level) Cols() int { return l.cols }

// Brick returns the brick at (row, col). ok is false outside the grid.
func (l *Level) Brick(row, col int) (Brick, bool) {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return Brick{}, false
	}
	return l.bricks[row*l.cols+col], true
}

// brickAt gives the simulation mutable access by flat index.
func (l *Level) brickAt(i int) *Brick { return &l.bricks[i] }
