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
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorCyan)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected cyan X", c)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.Clear()
	if s.Row(0) != "    " {
		t.Errorf("Row(0) after Clear = %q", s.Row(0))
	}

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("Resize() gave %dx%d", s.Width(), s.Height())
	}
	if s.Row(2) != "      " {
		t.Errorf("Row(2) after Resize = %q", s.Row(2))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(8, 0, "xyz") // clipped
	if s.Row(0) != "        xy" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}

	s.DrawTextColored(0, 0, "é!", ColorRed)
	if c := s.GetCell(1, 0); c.Rune != '!' || c.Color != ColorRed {
		t.Errorf("multi-byte text should advance one cell per rune, got %+v", c)
	}
}

func TestScreenDrawBoxAndString(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3))

	lines := strings.Split(s.String(), "\n")
	expected := []string{"┌──┐", "│  │", "└──┘"}
	if len(lines) != len(expected) {
		t.Fatalf("String() produced %d lines, expected %d", len(lines), len(expected))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestScreenDrawRectClearsColor(t *testing.T) {
	s := NewScreen(5, 3)
	s.SetColored(2, 1, '█', ColorCyan)
	s.DrawRect(NewRect(1, 0, 3, 2), ' ')

	if c := s.GetCell(2, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("filled cell = %+v", c)
	}
	if c := s.GetCell(2, 2); c.Rune != ' ' {
		t.Errorf("cell below the rect changed: %+v", c)
	}
}
