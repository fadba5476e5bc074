package core

import (
	"strings"
	"testing"
)

func TestScreenSetAndClear(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Fatalf("new screen = %q, expected blank rows", got)
	}

	s.Set(1, 1, 'X')
	s.SetColored(2, 1, 'Y', ColorRed)
	// Out of range writes are dropped.
	s.Set(-1, 0, 'A')
	s.Set(6, 0, 'A')
	s.SetColored(0, 3, 'A', ColorRed)

	if got := s.Row(1); got != " XY   " {
		t.Errorf("Row(1) = %q, expected %q", got, " XY   ")
	}
	if got := s.Row(0) + s.Row(2); strings.ContainsRune(got, 'A') {
		t.Errorf("out of range write landed: %q", got)
	}

	s.Clear()
	if c := s.GetCell(2, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear() GetCell(2, 1) = %+v, expected blank default cell", c)
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 0, "Score")
	s.DrawTextCentered(1, "HP")
	s.DrawTextColored(-1, 2, "Wave", ColorCyan)

	tests := []struct {
		y    int
		want string
	}{
		{0, "       Sco"},
		{1, "    HP    "},
		{2, "ave       "},
	}
	for _, tt := range tests {
		if got := s.Row(tt.y); got != tt.want {
			t.Errorf("Row(%d) = %q, expected %q", tt.y, got, tt.want)
		}
	}
	if c := s.GetCell(0, 2); c.Color != ColorCyan {
		t.Errorf("GetCell(0, 2).Color = %v, expected cyan", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(0, 0, 6, 4), '#')
	r := NewRect(1, 0, 4, 3)
	s.DrawRect(r, ' ')
	s.DrawBox(r)

	want := []string{
		"#┌──┐#",
		"#│  │#",
		"#└──┘#",
		"######",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, expected %q", y, got, line)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.SetColored(3, 1, '*', ColorOrange)

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "ab\n  \n  " {
		t.Errorf("after shrink = %q, expected %q", got, "ab\n  \n  ")
	}

	s.Resize(5, 1)
	if got := s.Row(0); got != "ab   " {
		t.Errorf("after grow Row(0) = %q, expected %q", got, "ab   ")
	}
	if got := s.Row(4); got != "     " {
		t.Errorf("Row(out of range) = %q, expected blanks", got)
	}
}

func TestScreenGetCellOutOfRange(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetColored(1, 1, '*', ColorOrange)

	if c := s.GetCell(1, 1); c.Rune != '*' || c.Color != ColorOrange {
		t.Errorf("GetCell(1, 1) = %+v, expected orange '*'", c)
	}
	// Plain Set resets the color.
	s.Set(1, 1, '#')
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Set() kept color %v", c.Color)
	}
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		if c := s.GetCell(p[0], p[1]); c.Rune != ' ' {
			t.Errorf("GetCell(%d, %d) = %q, expected blank", p[0], p[1], c.Rune)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor(" Orange ")
	if !ok || c != ColorOrange {
		t.Errorf("ParseColor(Orange) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("unknown color should not parse")
	}
	if ColorBrightRed.String() != "bright_red" {
		t.Errorf("String() = %q, expected bright_red", ColorBrightRed.String())
	}
}
