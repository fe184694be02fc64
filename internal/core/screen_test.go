package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestScreenColoredDrawing(t *testing.T) {
	tests := []struct {
		name  string
		draw  func(s *Screen)
		cells map[[2]int]Cell
	}{
		{
			name: "rect",
			draw: func(s *Screen) { s.DrawRect(1, 1, 2, 2, '▓', ColorBlue) },
			cells: map[[2]int]Cell{
				{1, 1}: {'▓', ColorBlue},
				{2, 2}: {'▓', ColorBlue},
				{3, 3}: blankCell,
			},
		},
		{
			name: "hline",
			draw: func(s *Screen) { s.DrawHLine(0, 4, 3, '═', ColorGray) },
			cells: map[[2]int]Cell{
				{0, 4}: {'═', ColorGray},
				{2, 4}: {'═', ColorGray},
				{3, 4}: blankCell,
			},
		},
		{
			name: "text",
			draw: func(s *Screen) { s.DrawTextColored(2, 0, "♥♥", ColorRed) },
			cells: map[[2]int]Cell{
				{2, 0}: {'♥', ColorRed},
				{3, 0}: {'♥', ColorRed},
			},
		},
		{
			name: "plain set resets color",
			draw: func(s *Screen) {
				s.SetColored(0, 0, '●', ColorSkin)
				s.Set(0, 0, 'x')
			},
			cells: map[[2]int]Cell{
				{0, 0}: {'x', ColorDefault},
			},
		},
		{
			name: "fill",
			draw: func(s *Screen) { s.Fill('.', ColorBrown) },
			cells: map[[2]int]Cell{
				{0, 0}: {'.', ColorBrown},
				{7, 5}: {'.', ColorBrown},
			},
		},
		{
			name: "clipped",
			draw: func(s *Screen) {
				s.DrawRect(6, 4, 5, 5, '#', ColorGreen)
				s.SetColored(-1, 0, '#', ColorGreen)
			},
			cells: map[[2]int]Cell{
				{7, 5}: {'#', ColorGreen},
				{8, 5}: blankCell,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 6)
			tt.draw(s)
			for pos, want := range tt.cells {
				if got := s.GetCell(pos[0], pos[1]); got != want {
					t.Errorf("cell %v = %+v, want %+v", pos, got, want)
				}
			}
		})
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "HP", ColorRed)
	s.Clear()
	if c := s.GetCell(0, 0); c != blankCell {
		t.Errorf("cell after Clear = %+v, want blank", c)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("box:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
}

func TestScreenTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "GAME")
	if got := s.Row(0); got != "   GAME   " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(5); got != strings.Repeat(" ", 10) {
		t.Errorf("out of range Row = %q, want blanks", got)
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextColored(0, 0, "Lv", ColorYellow)
	s.DrawTextColored(4, 2, "!!", ColorRed)

	s.Resize(3, 2)
	if c := s.GetCell(1, 0); c != (Cell{'v', ColorYellow}) {
		t.Errorf("shrunk cell = %+v, want yellow 'v'", c)
	}

	s.Resize(8, 4)
	if c := s.GetCell(0, 0); c != (Cell{'L', ColorYellow}) {
		t.Errorf("kept cell = %+v, want yellow 'L'", c)
	}
	if c := s.GetCell(4, 2); c != blankCell {
		t.Errorf("cell cut by the shrink came back: %+v", c)
	}
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
}
