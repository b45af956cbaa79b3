// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout engine.
package config

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrInvalidConfig is returned (wrapped) by Validate for any rejected value.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the game.
// It replaces the ambient screen, brick, paddle and ball constants: the game,
// its level and the renderer all receive it explicitly.
type BreakoutConfig struct {
	Screen     ScreenConfig               `yaml:"screen"`
	Bricks     BricksConfig               `yaml:"bricks"`
	Paddle     PaddleConfig               `yaml:"paddle"`
	Ball       BallConfig                 `yaml:"ball"`
	Loop       LoopConfig                 `yaml:"loop"`
	Input      InputConfig                `yaml:"input"`
	BrickTypes map[string]BrickTypeConfig `yaml:"brick_types"`
	Layout     [][]string                 `yaml:"layout"`
	Sprites    map[string]SpriteConfig    `yaml:"sprites"`
}

// ScreenConfig defines the playfield in world pixels.
type ScreenConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"` // Hex color of the background fill
}

// BricksConfig defines brick dimensions and grid placement.
type BricksConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetY float64 `yaml:"offset_y"` // Distance from the top wall to the first row
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels per millisecond
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between paddle and bottom wall
	Image        string  `yaml:"image"`
}

// BallConfig defines the ball and its launch velocity.
type BallConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	VelocityX float64 `yaml:"velocity_x"` // Pixels per tick
	VelocityY float64 `yaml:"velocity_y"` // Pixels per tick
	Image     string  `yaml:"image"`
}

// LoopConfig defines the frame source.
type LoopConfig struct {
	TickRate      int     `yaml:"tick_rate"`          // Frames per second
	MaxFrameDelta float64 `yaml:"max_frame_delta_ms"` // Cap for dt, 0 disables the cap
}

// InputConfig defines how terminal key events become held keys.
type InputConfig struct {
	// HoldTimeoutMS is how long a key counts as held after its last key event.
	// Terminals report no key-up, so releases are inferred from silence.
	HoldTimeoutMS int `yaml:"hold_timeout_ms"`
	// RepeatDelayMS is the hold time granted to a key seen only once, covering
	// the pause before the terminal starts auto-repeating it.
	RepeatDelayMS int `yaml:"repeat_delay_ms"`
}

// BrickTypeConfig defines one entry of the brick palette.
type BrickTypeConfig struct {
	Image  string `yaml:"image"`
	Points int    `yaml:"points"`
}

// SpriteConfig maps an image reference to a terminal glyph.
type SpriteConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Validate checks the configuration for values the engine cannot run with.
func (c BreakoutConfig) Validate() error {
	dims := []struct {
		name string
		val  float64
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"ball.width", c.Ball.Width},
		{"ball.height", c.Ball.Height},
	}
	for _, d := range dims {
		if d.val <= 0 {
			return fmt.Errorf("config: %w: %s must be > 0, got %v", ErrInvalidConfig, d.name, d.val)
		}
	}

	if c.Paddle.Width > c.Screen.Width {
		return fmt.Errorf("config: %w: paddle.width %v exceeds screen.width %v", ErrInvalidConfig, c.Paddle.Width, c.Screen.Width)
	}
	if c.Ball.Width > c.Screen.Width || c.Ball.Height > c.Screen.Height {
		return fmt.Errorf("config: %w: ball does not fit the screen", ErrInvalidConfig)
	}
	if c.Paddle.Speed < 0 {
		return fmt.Errorf("config: %w: paddle.speed must be >= 0, got %v", ErrInvalidConfig, c.Paddle.Speed)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("config: %w: loop.tick_rate must be > 0, got %d", ErrInvalidConfig, c.Loop.TickRate)
	}
	if c.Loop.MaxFrameDelta < 0 {
		return fmt.Errorf("config: %w: loop.max_frame_delta_ms must be >= 0", ErrInvalidConfig)
	}
	if c.Input.HoldTimeoutMS < 0 {
		return fmt.Errorf("config: %w: input.hold_timeout_ms must be >= 0", ErrInvalidConfig)
	}
	if c.Input.RepeatDelayMS < 0 {
		return fmt.Errorf("config: %w: input.repeat_delay_ms must be >= 0", ErrInvalidConfig)
	}

	if len(c.Layout) > 0 {
		if w := float64(len(c.Layout[0])) * c.Bricks.Width; w > c.Screen.Width {
			return fmt.Errorf("config: %w: layout is %v wide, screen.width is %v", ErrInvalidConfig, w, c.Screen.Width)
		}
		if h := c.Bricks.OffsetY + float64(len(c.Layout))*c.Bricks.Height; c.Bricks.OffsetY < 0 || h > c.Screen.Height {
			return fmt.Errorf("config: %w: layout rows end at %v, screen.height is %v", ErrInvalidConfig, h, c.Screen.Height)
		}
	}

	for _, name := range c.BrickTypeNames() {
		if c.BrickTypes[name].Points < 0 {
			return fmt.Errorf("config: %w: brick type %q has negative points", ErrInvalidConfig, name)
		}
	}

	for image, s := range c.Sprites {
		if utf8.RuneCountInString(s.Glyph) != 1 || !utf8.ValidString(s.Glyph) {
			return fmt.Errorf("config: %w: sprite %q glyph must be a single character, got %q", ErrInvalidConfig, image, s.Glyph)
		}
		if _, ok := core.ParseColor(s.Color); !ok {
			return fmt.Errorf("config: %w: sprite %q has unknown color %q", ErrInvalidConfig, image, s.Color)
		}
	}

	return nil
}

// BrickTypeNames returns the palette names in sorted order.
func (c BreakoutConfig) BrickTypeNames() []string {
	names := make([]string, 0, len(c.BrickTypes))
	for name := range c.BrickTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.VelocityX *= 0.75
		cfg.Ball.VelocityY *= 0.75
		cfg.Paddle.Speed *= 1.25
	case DifficultyHard:
		cfg.Ball.VelocityX *= 1.5
		cfg.Ball.VelocityY *= 1.5
	}
}
