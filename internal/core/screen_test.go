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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawTextColor(1, 0, "64", ColorBrightRed)
	for i, want := range "64" {
		cell := s.GetCell(1+i, 0)
		if cell.Rune != want || cell.Color != ColorBrightRed {
			t.Errorf("GetCell(%d, 0) = %+v, expected %q in bright red", 1+i, cell, want)
		}
	}

	// Plain Set resets the color.
	s.Set(1, 0, 'x')
	if c := s.GetCell(1, 0).Color; c != ColorDefault {
		t.Errorf("Set should use default color, got %d", c)
	}

	s.Clear()
	if c := s.GetCell(2, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear should reset cell, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); got != "  Hello             " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(18, 2, "World")
	if got := s.Row(2)[18:]; got != "Wo" {
		t.Errorf("clipped text = %q, expected \"Wo\"", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "─│x")

	if s.Get(0, 0) != '─' || s.Get(1, 0) != '│' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte runes should occupy one cell each, got %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, expected %q", y, got, line)
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawRect(NewRect(1, 1, 3, 1), '#')

	if got := s.Row(1); got != " ### " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(0); got != "     " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	expected := "A  \n  B"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawTextColor(0, 0, "Hello", ColorCyan)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Hel" {
		t.Errorf("Row(0) after shrink = %q, expected \"Hel\"", got)
	}
	if c := s.GetCell(0, 0).Color; c != ColorCyan {
		t.Errorf("Resize should preserve colors, got %d", c)
	}

	s.Resize(6, 3)
	if got := s.Row(0); !strings.HasPrefix(got, "Hel") || len(got) != 6 {
		t.Errorf("Row(0) after grow = %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 1)
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(7, 3)
	if got := s.Bounds(); got != NewRect(0, 0, 7, 3) {
		t.Errorf("Bounds() = %+v", got)
	}

	s.Resize(4, 2)
	s.Set(5, 1, 'X')
	if s.Get(5, 1) != ' ' || s.Bounds().Contains(5, 1) {
		t.Error("writes outside the resized bounds should be dropped")
	}
}
