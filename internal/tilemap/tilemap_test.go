package tilemap

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"
	"pgregory.net/rapid"

	"github.com/vovakirdan/hexgrid/internal/hex"
)

var quietLogger = log.New(io.Discard)

type failingGenerator struct{}

func (failingGenerator) Generate(*TileMap) error { return errors.New("boom") }

func TestNewAllocatesAllTiles(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint8
		expected      int
	}{
		{"single tile", 0, 0, 1},
		{"small", 15, 11, 16 * 12},
		{"max", 255, 255, 256 * 256},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.width, tc.height, false, FillGenerator(0), quietLogger)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if len(m.Tiles) != tc.expected {
				t.Errorf("len(Tiles) = %d, expected %d", len(m.Tiles), tc.expected)
			}
		})
	}
}

func TestNewWrapsGeneratorErrors(t *testing.T) {
	_, err := New(3, 3, false, failingGenerator{}, quietLogger)
	if !errors.Is(err, ErrGenerate) {
		t.Errorf("New() error = %v, expected %v", err, ErrGenerate)
	}
}

func TestTileLookup(t *testing.T) {
	m, err := New(9, 4, false, FillGenerator(1), quietLogger)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if !m.Set(hex.NewCoord(9, 4), 7) {
		t.Fatal("Set() on the last tile reported off-map")
	}
	tile, ok := m.Tile(hex.NewCoord(9, 4))
	if !ok || tile.Type != 7 {
		t.Errorf("Tile(9,4) = (%+v, %v), expected type 7", tile, ok)
	}
	if m.Tiles[len(m.Tiles)-1].Type != 7 {
		t.Error("last tile should be stored at the end of the buffer")
	}

	if _, ok := m.Tile(hex.NewCoord(10, 0)); ok {
		t.Error("Tile(10,0) should be off a non-wrapping map")
	}
	if _, ok := m.Tile(hex.NewCoord(0, 5)); ok {
		t.Error("Tile(0,5) should be below the map")
	}
	if m.Set(hex.NewCoord(0, 5), 3) {
		t.Error("Set(0,5) should report off-map")
	}
}

func TestTileLookupWraps(t *testing.T) {
	m, err := New(9, 4, true, FillGenerator(1), quietLogger)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	m.Set(hex.NewCoord(2, 1), 5)
	tile, ok := m.Tile(hex.NewCoord(12, 1))
	if !ok || tile.Type != 5 {
		t.Errorf("Tile(12,1) = (%+v, %v), expected the tile at (2,1)", tile, ok)
	}
}

func TestCoordsInStorageOrder(t *testing.T) {
	m, err := New(4, 3, false, FillGenerator(0), quietLogger)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	i := 0
	for c := range m.Coords() {
		idx, ok := c.Idx(m.Width, m.Height, m.WrapsX)
		if !ok || idx != i {
			t.Fatalf("coord %v at position %d has index (%d, %v)", c, i, idx, ok)
		}
		i++
	}
	if i != len(m.Tiles) {
		t.Errorf("Coords() yielded %d coords, expected %d", i, len(m.Tiles))
	}
}

func TestNeighborsAwayFromEdges(t *testing.T) {
	m, err := New(30, 30, false, FillGenerator(0), quietLogger)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for radius := uint8(0); radius <= 5; radius++ {
		n := 0
		for range m.Neighbors(hex.NewCoord(15, 15), radius) {
			n++
		}
		expected := 3*int(radius)*(int(radius)+1) + 1
		if n != expected {
			t.Errorf("Neighbors(radius %d) yielded %d, expected %d", radius, n, expected)
		}
	}
}

func TestNeighborsAtCorner(t *testing.T) {
	m, err := New(9, 9, false, FillGenerator(0), quietLogger)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := mapset.New[hex.Coord]()
	for _, c := range m.Neighbors(hex.NewCoord(0, 0), 1) {
		got.Put(c)
	}

	// Of the six neighbors only (1,0) and (0,1) lie on the map.
	expected := []hex.Coord{hex.NewCoord(0, 0), hex.NewCoord(1, 0), hex.NewCoord(0, 1)}
	if got.Size() != len(expected) {
		t.Fatalf("Neighbors((0,0), 1) yielded %d hexes, expected %d", got.Size(), len(expected))
	}
	for _, c := range expected {
		if !got.Has(c) {
			t.Errorf("Neighbors((0,0), 1) missing %v", c)
		}
	}
}

func TestNeighborsAtCornerWrapping(t *testing.T) {
	m, err := New(9, 9, true, FillGenerator(0), quietLogger)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := mapset.New[hex.Coord]()
	for o, c := range m.Neighbors(hex.NewCoord(0, 0), 1) {
		if o == hex.NewAxial(-1, 0) && c != hex.NewCoord(9, 0) {
			t.Errorf("offset (-1,0) landed on %v, expected (9,0)", c)
		}
		got.Put(c)
	}
	// Only the two neighbors in row -1 fall off.
	if got.Size() != 5 {
		t.Errorf("Neighbors((0,0), 1) on a planet yielded %d hexes, expected 5", got.Size())
	}
}

func TestNeighborsNeverLeaveTheMap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.Uint8Range(0, 40).Draw(t, "width")
		height := rapid.Uint8Range(0, 40).Draw(t, "height")
		wraps := rapid.Bool().Draw(t, "wraps")
		m, err := New(width, height, wraps, FillGenerator(0), quietLogger)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		center := hex.NewCoord(rapid.Uint8Range(0, width).Draw(t, "q"), rapid.Uint8Range(0, height).Draw(t, "r"))
		radius := rapid.Uint8Range(0, 20).Draw(t, "radius")

		for o, c := range m.Neighbors(center, radius) {
			if _, ok := m.Tile(c); !ok {
				t.Fatalf("Neighbors yielded off-map %v", c)
			}
			if c.Q() > width || c.R() > height {
				t.Fatalf("Neighbors yielded %v outside %dx%d", c, width, height)
			}
			if o.Len() > uint16(radius) {
				t.Fatalf("Neighbors yielded offset %v beyond radius %d", o, radius)
			}
		}
	})
}

func TestNeighborsRing(t *testing.T) {
	m, err := New(20, 20, false, FillGenerator(0), quietLogger)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	n := 0
	for o := range m.NeighborsRing(hex.NewCoord(10, 10), 3) {
		if o.Len() != 3 {
			t.Errorf("ring offset %v has length %d, expected 3", o, o.Len())
		}
		n++
	}
	if n != 18 {
		t.Errorf("NeighborsRing(3) yielded %d, expected 18", n)
	}
}
