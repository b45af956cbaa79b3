package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	got := s.GetCell(5, 5)
	if got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected {X red}", got)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillCells(0, 0, 10, 10, 'X', ColorBlue)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenFillCells(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillCells(1, 1, 3, 3, '#', ColorGreen)

	expected := []string{
		"      ",
		" ##   ",
		" ##   ",
		"      ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(2, 2).Color != ColorGreen {
		t.Error("FillCells should apply the color")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(2, 0, "SCORE:", ColorWhite)
	if got := s.Row(0); !strings.HasPrefix(got, "  SCORE:") {
		t.Errorf("Row(0) = %q, expected prefix %q", got, "  SCORE:")
	}

	s.DrawTextCentered(1, "WIN", ColorYellow)
	if got := s.Row(1); got[8:11] != "WIN" {
		t.Errorf("Centered text at wrong position: %q", got)
	}

	// Clipped at the right edge without panicking
	s.DrawText(18, 2, "abcdef", ColorDefault)
	if got := s.Row(2); got[18:] != "ab" {
		t.Errorf("Clipped text = %q, expected %q", got[18:], "ab")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, 'Z', ColorRed)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("Resize() = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'Z' || c.Color != ColorRed {
		t.Errorf("Resize should keep content, got %+v", c)
	}

	s.Resize(1, 1)
	if s.Get(1, 1) != ' ' {
		t.Error("Content outside the new bounds should be gone")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetCell(0, 0, 'a', ColorRed)
	s.SetCell(2, 1, 'b', ColorDefault)

	if got, want := s.String(), "a  \n  b"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
