package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '█', ColorRed)
	got := s.GetCell(3, 4)
	if got.Rune != '█' || got.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red block", got)
	}

	s.Set(3, 4, 'x')
	if got := s.GetCell(3, 4); got.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", got.Color)
	}

	// Out of bounds writes are dropped
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(10, 0, 'A', ColorRed)
	s.SetCell(0, 10, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.GetCell(0, 10) != blank {
		t.Error("out of bounds reads should return blank")
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColor(5, 1, "score", ColorYellow)

	if s.Row(1) != "     sco" {
		t.Errorf("Row(1) = %q, expected clipped text", s.Row(1))
	}
	if s.GetCell(6, 1).Color != ColorYellow {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "WIN", ColorGreen)

	x := (20 - 3) / 2
	if s.Get(x, 1) != 'W' || s.Get(x+2, 1) != 'N' {
		t.Errorf("centered text misplaced: %q", s.Row(1))
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "▲▲", ColorDefault)

	if s.Get(4, 0) != '▲' || s.Get(5, 0) != '▲' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	expected := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("box =\n%s\nexpected\n%s", s.String(), expected)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 1, 3), ColorGray)

	if s.String() != "   \n   \n   " {
		t.Errorf("degenerate box should draw nothing, got %q", s.String())
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(1, 1, 2, 3), '#', ColorBlue)

	count := 0
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) == '#' {
				count++
			}
		}
	}
	if count != 6 {
		t.Errorf("DrawRect filled %d cells, expected 6", count)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')

	s.Resize(4, 4)
	if s.Get(1, 1) != 'X' {
		t.Error("same-size resize should keep content")
	}

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("resize should clear the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(s.Bounds(), '*', ColorRed)
	s.Clear()

	if s.String() != "   \n   " {
		t.Errorf("after Clear got %q", s.String())
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if s.Row(5) != "   " {
		t.Errorf("Row(5) = %q, expected spaces", s.Row(5))
	}
}
