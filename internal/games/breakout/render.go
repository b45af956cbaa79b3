package breakout

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	FallbackChar = '#'
	BorderVert   = '│'
	BorderHoriz  = '─'
	BorderTL     = '┌'
	BorderTR     = '┐'
	BorderBL     = '└'
	BorderBR     = '┘'
)

// HUD and overlay texts.
const (
	ScoreLabel = "SCORE:"
	WinText    = "YAY, YOU DID IT!!!"
	LoseText   = "OH NO, GAME OVER :("
)

// Sprite is the terminal stand-in for an image.
type Sprite struct {
	Glyph rune
	Color core.Color
}

// Renderer rasterises a View into a character screen. World pixels are
// scaled to whatever cell grid the screen has.
type Renderer struct {
	sprites map[string]Sprite
}

// NewRenderer builds the sprite table from the config. Image references
// without a sprite are drawn with FallbackChar.
func NewRenderer(cfg config.BreakoutConfig) *Renderer {
	sprites := make(map[string]Sprite, len(cfg.Sprites))
	for image, sc := range cfg.Sprites {
		glyph, _ := utf8.DecodeRuneInString(sc.Glyph)
		if glyph == utf8.RuneError {
			glyph = FallbackChar
		}
		color, _ := core.ParseColor(sc.Color) // Validate rejects unknown names
		sprites[image] = Sprite{Glyph: glyph, Color: color}
	}
	return &Renderer{sprites: sprites}
}

// Sprite returns the sprite for an image reference.
func (r *Renderer) Sprite(image string) Sprite {
	if s, ok := r.sprites[image]; ok {
		return s
	}
	return Sprite{Glyph: FallbackChar, Color: core.ColorDefault}
}

// Draw clears dst and draws the view: bricks, ball, paddle, the score line
// and the end-of-game message.
func (r *Renderer) Draw(dst *core.Screen, v View) {
	dst.Clear()
	if v.Width <= 0 || v.Height <= 0 {
		return
	}

	sx := float64(dst.Width()) / v.Width
	sy := float64(dst.Height()) / v.Height

	for _, d := range v.Drawables() {
		s := r.Sprite(d.ImageRef())
		x0, y0, x1, y1 := toCells(d.Bounds(), sx, sy)
		dst.FillCells(x0, y0, x1, y1, s.Glyph, s.Color)
	}

	dst.DrawText(1, 0, fmt.Sprintf("%s %d", ScoreLabel, v.Score), core.ColorBrightWhite)

	switch v.State {
	case StateWin:
		DrawMessage(dst, WinText, "")
	case StateLose:
		DrawMessage(dst, LoseText, "")
	}
}

// toCells maps a world rect onto a half-open cell range. Every rect covers
// at least one cell so small entities stay visible.
func toCells(r core.Rect, sx, sy float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.X * sx))
	y0 = int(math.Round(r.Y * sy))
	x1 = int(math.Round(r.Right() * sx))
	y1 = int(math.Round(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// DrawMessage draws a bordered message box in the center of the screen.
// An empty subtitle gives a three-row box.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	titleLen := utf8.RuneCountInString(title)
	subLen := utf8.RuneCountInString(subtitle)

	boxW := max(titleLen, subLen) + 4
	boxH := 3
	if subtitle != "" {
		boxH = 5
	}
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillCells(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	for x := boxX + 1; x < boxX+boxW-1; x++ {
		dst.SetCell(x, boxY, BorderHoriz, core.ColorWhite)
		dst.SetCell(x, boxY+boxH-1, BorderHoriz, core.ColorWhite)
	}
	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.SetCell(boxX, y, BorderVert, core.ColorWhite)
		dst.SetCell(boxX+boxW-1, y, BorderVert, core.ColorWhite)
	}
	dst.SetCell(boxX, boxY, BorderTL, core.ColorWhite)
	dst.SetCell(boxX+boxW-1, boxY, BorderTR, core.ColorWhite)
	dst.SetCell(boxX, boxY+boxH-1, BorderBL, core.ColorWhite)
	dst.SetCell(boxX+boxW-1, boxY+boxH-1, BorderBR, core.ColorWhite)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	if subtitle != "" {
		dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle, core.ColorGray)
	}
}
