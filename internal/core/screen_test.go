package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	s.SetCell(4, 2, 'O', ColorBrightRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'O' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(4,2) = %+v", cell)
	}

	// Out of bounds is silently ignored on write, space on read.
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, 'X', ColorBrightGreen)

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if got := s.Row(1); got != "  hi      " {
		t.Errorf("Row(1) = %q", got)
	}

	// Text past the right edge is clipped, not wrapped.
	s.DrawText(8, 0, "abcd")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("clipped Row(0) = %q", got)
	}
	if got := s.Row(1); got != "  hi      " {
		t.Errorf("clip leaked into next row: %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")
	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 1, 4, '=')
	if got := s.Row(1); got != " ==== " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(8, 6)
	r := NewRect(1, 1, 5, 4)

	s.DrawRect(r, '.', ColorGray)
	s.DrawBox(r)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("top corners missing")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("bottom corners missing")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges missing")
	}
	if s.Get(3, 2) != '.' {
		t.Error("interior fill missing")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 0, "keep")
	s.Set(5, 3, 'X')

	s.Resize(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "keep" {
		t.Errorf("Row(0) = %q after shrink", got)
	}

	s.Resize(8, 3)
	if got := s.Row(0); got != "keep    " {
		t.Errorf("Row(0) = %q after grow", got)
	}
	if got := s.Get(6, 2); got != ' ' {
		t.Errorf("new cells should be blank, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if n := strings.Count(s.String(), "\n"); n != 1 {
		t.Errorf("newline count = %d, want 1", n)
	}
}
