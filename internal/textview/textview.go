// Package textview renders tile maps as text.
//
// Each tile is two characters wide and every row shifts right by half a
// tile, which keeps axial neighbours visually adjacent. On maps that wrap
// along q the shift wraps too, so a planet map stays rectangular.
package textview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/hexgrid/internal/core"
	"github.com/vovakirdan/hexgrid/internal/hex"
	"github.com/vovakirdan/hexgrid/internal/tilemap"
)

// HighlightStyle is the style key of highlighted tiles.
const HighlightStyle = "highlight"

// MissingGlyph stands in for tiles whose type has no glyph.
const MissingGlyph = '?'

// Options control a Dump.
type Options struct {
	// Highlight marks coordinates to draw in HighlightStyle. The zero set
	// highlights nothing.
	Highlight mapset.Set[hex.Coord]
	// MaxWidth clips every row to this many characters. Zero disables clipping.
	MaxWidth int
	// Plain disables lipgloss styling.
	Plain bool
}

// Highlight collects coordinates into a highlight set.
func Highlight(coords ...hex.Coord) mapset.Set[hex.Coord] {
	set := mapset.New[hex.Coord]()
	for _, c := range coords {
		set.Put(c)
	}
	return set
}

// Size returns the character dimensions of the full dump of m.
func Size(m *tilemap.TileMap) (width, height int) {
	cols := int(m.Width) + 1
	rows := int(m.Height) + 1
	if m.WrapsX {
		return 2 * cols, rows
	}
	return 2*cols + rows - 1, rows
}

// Position returns the column and row where c is drawn.
func Position(m *tilemap.TileMap, c hex.Coord) (x, y int) {
	x = 2*int(c.Q()) + int(c.R())
	if m.WrapsX {
		x %= 2 * (int(m.Width) + 1)
	}
	return x, int(c.R())
}

// Draw lays out m onto a new screen, clipped to maxWidth when it is positive.
func Draw(m *tilemap.TileMap, types *tilemap.TileTypes, highlight mapset.Set[hex.Coord], maxWidth int) *core.Screen {
	w, h := Size(m)
	area := core.NewRect(0, 0, w, h)
	if maxWidth > 0 {
		area = area.Intersect(core.NewRect(0, 0, maxWidth, h))
	}
	screen := core.NewScreen(area.W, area.H)

	glyphs := glyphTable(types)
	for c := range m.Coords() {
		tile, _ := m.Tile(c)
		cell := core.Cell{Rune: MissingGlyph}
		if int(tile.Type) < len(glyphs) {
			cell = glyphs[tile.Type]
		}
		if highlight.Has(c) {
			cell.Style = HighlightStyle
		}
		x, y := Position(m, c)
		screen.SetCell(x, y, cell)
	}
	return screen
}

// Dump renders m as text. Styled output colours each tile type with its
// configured colour; the terminal profile decides how much of that survives.
func Dump(m *tilemap.TileMap, types *tilemap.TileTypes, opts Options) string {
	screen := Draw(m, types, opts.Highlight, opts.MaxWidth)
	if opts.Plain {
		return screen.String()
	}
	return Render(screen, Styles(types))
}

// Styles builds the lipgloss style of every tile type, keyed by name.
func Styles(types *tilemap.TileTypes) map[string]lipgloss.Style {
	styles := map[string]lipgloss.Style{
		"":             lipgloss.NewStyle(),
		HighlightStyle: lipgloss.NewStyle().Reverse(true).Bold(true),
	}
	for _, tt := range types.All() {
		style := lipgloss.NewStyle()
		if tt.Color != "" {
			style = style.Foreground(lipgloss.Color(tt.Color))
		}
		styles[tt.Name] = style
	}
	return styles
}

// Render converts a screen to a styled string. Adjacent cells with the same
// style share one escape sequence.
func Render(s *core.Screen, styles map[string]lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		s.Runs(y, func(key, text string) {
			style, ok := styles[key]
			if !ok {
				style = styles[""]
			}
			sb.WriteString(style.Render(text))
		})
	}
	return sb.String()
}

// Legend lists the glyph and name of every tile type, one per line.
func Legend(types *tilemap.TileTypes, plain bool) string {
	all := types.All()
	width := 0
	for _, tt := range all {
		width = max(width, len(tt.Name))
	}

	screen := core.NewScreen(width+2, len(all))
	for y, cell := range glyphTable(types) {
		screen.DrawStyledText(0, y, string(cell.Rune), cell.Style)
		screen.DrawText(2, y, all[y].Name)
	}
	if plain {
		return screen.String()
	}
	return Render(screen, Styles(types))
}

func glyphTable(types *tilemap.TileTypes) []core.Cell {
	all := types.All()
	cells := make([]core.Cell, len(all))
	for i, tt := range all {
		cells[i] = core.Cell{Rune: MissingGlyph, Style: tt.Name}
		for _, r := range tt.Glyph {
			cells[i].Rune = r
			break
		}
	}
	return cells
}
