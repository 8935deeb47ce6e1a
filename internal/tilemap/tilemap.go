package tilemap

import (
	"errors"
	"fmt"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexgrid/internal/hex"
)

// ErrGenerate wraps any failure reported by a Generator.
var ErrGenerate = errors.New("tilemap: error while generating map")

// Tile is a single cell of a TileMap.
type Tile struct {
	Type TileIdx
}

// TileMap is a rhombus of (Width+1) x (Height+1) tiles. Width and Height are
// the largest valid q and r. A map that wraps on x is a planet: walking off
// the right edge comes back on the left.
type TileMap struct {
	Width  uint8
	Height uint8
	WrapsX bool
	Tiles  []Tile
}

// Size returns the number of tiles a map of the given maxima holds.
func Size(width, height uint8) int {
	return (int(width) + 1) * (int(height) + 1)
}

// New creates a map and fills it with gen. A nil logger uses log.Default().
func New(width, height uint8, wrapsX bool, gen Generator, logger *log.Logger) (*TileMap, error) {
	if logger == nil {
		logger = log.Default()
	}

	m := &TileMap{
		Width:  width,
		Height: height,
		WrapsX: wrapsX,
		Tiles:  make([]Tile, Size(width, height)),
	}

	logger.Debug("generating map", "width", width, "height", height, "wraps_x", wrapsX, "generator", fmt.Sprintf("%T", gen))
	if err := gen.Generate(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	logger.Debug("map generated", "tiles", len(m.Tiles))

	return m, nil
}

// Tile returns the tile at c, or false if c is off the map.
func (m *TileMap) Tile(c hex.Coord) (*Tile, bool) {
	idx, ok := c.Idx(m.Width, m.Height, m.WrapsX)
	if !ok {
		return nil, false
	}
	return &m.Tiles[idx], true
}

// Set changes the tile type at c. It reports false if c is off the map.
func (m *TileMap) Set(c hex.Coord, t TileIdx) bool {
	tile, ok := m.Tile(c)
	if !ok {
		return false
	}
	tile.Type = t
	return true
}

// Offset translates c by o within the map's bounds and wrapping.
func (m *TileMap) Offset(c hex.Coord, o hex.Orientation) (hex.Coord, bool) {
	return c.OffsetBy(o, m.Width, m.Height, m.WrapsX)
}

// Coords yields every coord of the map in storage order.
func (m *TileMap) Coords() iter.Seq[hex.Coord] {
	it := hex.NewRangeIter(hex.NewCoord(0, 0), hex.NewCoord(m.Width, m.Height))
	return it.Coords()
}

// Neighbors yields every on-map hex within radius of center together with
// its offset from center. Offsets that fall off the map are skipped. On a
// wrapping map a radius wider than the map reaches some hexes more than once.
func (m *TileMap) Neighbors(center hex.Coord, radius uint8) iter.Seq2[hex.Orientation, hex.Coord] {
	return m.bounded(center, center.Disk(radius).All())
}

// NeighborsRing is Neighbors restricted to exactly radius.
func (m *TileMap) NeighborsRing(center hex.Coord, radius uint8) iter.Seq2[hex.Orientation, hex.Coord] {
	return m.bounded(center, center.Ring(radius).All())
}

func (m *TileMap) bounded(center hex.Coord, offsets iter.Seq2[hex.Orientation, hex.Coord]) iter.Seq2[hex.Orientation, hex.Coord] {
	return func(yield func(hex.Orientation, hex.Coord) bool) {
		for o := range offsets {
			c, ok := m.Offset(center, o)
			if !ok {
				continue
			}
			if !yield(o, c) {
				return
			}
		}
	}
}
