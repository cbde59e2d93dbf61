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
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorYellow)
	if c := s.Cell(5, 5); c.Rune != 'X' || c.Color != ColorYellow {
		t.Errorf("Cell(5, 5) = %+v, expected yellow X", c)
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextCentered(1, "SCORE", ColorWhite)

	if got := s.Row(1); got != "   SCORE    " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.Cell(3, 1).Color != ColorWhite {
		t.Error("centred text should carry its colour")
	}

	s.DrawText(9, 0, "clipped", ColorDefault)
	if got := s.Row(0); got != "         cli" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 4)
	s.FillRect(NewRect(1, 1, 2, 2), '#', ColorGreen)

	expected := "     \n ##  \n ##  \n     "
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}

	s.Clear()
	if strings.ContainsRune(s.String(), '#') {
		t.Error("Clear should remove all content")
	}
}

func TestScreenDropsWritesOutsideBounds(t *testing.T) {
	s := NewScreen(3, 2)
	if b := s.Bounds(); b != NewRect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %+v", b)
	}
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		s.Set(p[0], p[1], 'X')
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Errorf("out-of-bounds writes leaked: %q", s.String())
	}
	if s.Get(5, 5) != ' ' {
		t.Error("Get outside the buffer should read blank")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Resize gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

func TestIntentString(t *testing.T) {
	tests := []struct {
		in       Intent
		expected string
	}{
		{Confirm(), "Confirm"},
		{Back(), "Back"},
		{Flap(), "Flap"},
		{SelectDigit(2), "SelectDigit(2)"},
		{DeleteSlot(3), "DeleteSlot(3)"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}

	if !HasFlap([]Intent{Confirm(), Flap()}) {
		t.Error("HasFlap should find a flap anywhere in the batch")
	}
	if HasFlap([]Intent{Confirm(), SelectDigit(1)}) {
		t.Error("HasFlap should be false without a flap")
	}
}
