package core

import (
	"strings"
)

// Cell is one character of a Screen. Style is an opaque key the renderer
// maps to a terminal style; the empty key is unstyled.
type Cell struct {
	Rune  rune
	Style string
}

var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer. Drawing code writes cells, and the
// renderer decides how styles reach the terminal.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a Rect at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	s.Fill(blank)
}

// Fill fills the entire screen with the given cell.
func (s *Screen) Fill(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns an unstyled space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.Bounds().Contains(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyledText(x, y, text, "")
}

// DrawStyledText writes a string horizontally with one style for every rune.
func (s *Screen) DrawStyledText(x, y int, text, style string) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Style: style})
		i++
	}
}

// String converts the screen buffer to plain text, dropping styles.
// Rows are joined with newlines and trailing spaces are trimmed.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text without trailing spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var sb strings.Builder
	for x := range s.width {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Runs calls fn for each maximal run of same-style cells in row y, left to
// right. The text of a run keeps its spaces.
func (s *Screen) Runs(y int, fn func(style, text string)) {
	if y < 0 || y >= s.height {
		return
	}
	row := s.cells[y]
	for x := 0; x < len(row); {
		style := row[x].Style
		var run strings.Builder
		for x < len(row) && row[x].Style == style {
			run.WriteRune(row[x].Rune)
			x++
		}
		fn(style, run.String())
	}
}
