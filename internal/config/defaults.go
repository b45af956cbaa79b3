package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
// Values mirror defaults/breakout.yaml and are used when the embedded file
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen: ScreenConfig{
			Width:      640,
			Height:     480,
			Background: "#140c1c",
		},
		Bricks: BricksConfig{
			Width:   64,
			Height:  32,
			OffsetY: 48,
		},
		Paddle: PaddleConfig{
			Width:        104,
			Height:       24,
			Speed:        0.35,
			BottomMargin: 8,
			Image:        "assets/images/paddle.png",
		},
		Ball: BallConfig{
			Width:     22,
			Height:    22,
			VelocityX: 2.0,
			VelocityY: 6.0,
			Image:     "assets/images/ball.png",
		},
		Loop: LoopConfig{
			TickRate:      60,
			MaxFrameDelta: 0,
		},
		Input: InputConfig{
			HoldTimeoutMS: 150,
			RepeatDelayMS: 500,
		},
		BrickTypes: map[string]BrickTypeConfig{
			"red":   {Image: "assets/images/brick-red.png", Points: 10},
			"green": {Image: "assets/images/brick-green.png", Points: 20},
			"blue":  {Image: "assets/images/brick-blue.png", Points: 30},
		},
		Layout: [][]string{
			{"red", "green", "blue", "red", "green", "blue", "red", "green"},
			{"green", "blue", "red", "green", "blue", "red", "green", "blue"},
			{"blue", "red", "green", "blue", "red", "green", "blue", "red"},
			{"red", "green", "blue", "red", "green", "blue", "red", "green"},
			{"green", "blue", "red", "green", "blue", "red", "green", "blue"},
			{"blue", "red", "green", "blue", "red", "green", "blue", "red"},
		},
		Sprites: map[string]SpriteConfig{
			"assets/images/brick-red.png":   {Glyph: "█", Color: "red"},
			"assets/images/brick-green.png": {Glyph: "█", Color: "green"},
			"assets/images/brick-blue.png":  {Glyph: "█", Color: "blue"},
			"assets/images/paddle.png":      {Glyph: "=", Color: "bright_cyan"},
			"assets/images/ball.png":        {Glyph: "●", Color: "bright_white"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
