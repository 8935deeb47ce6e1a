// Package tilemap stores tiles on a bounded, optionally horizontally wrapping
// hex grid and resolves hex coordinates to tiles.
package tilemap

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"gopkg.in/yaml.v3"
)

// TileIdx indexes into a TileTypes registry.
type TileIdx uint16

// UnknownTile is always registered first, at index 0.
const UnknownTile = "unknown"

var (
	ErrEmptyName     = errors.New("tilemap: tile type name is empty")
	ErrDuplicateName = errors.New("tilemap: duplicate tile type name")
	ErrFull          = errors.New("tilemap: tile types are full")
	ErrAlreadyLoaded = errors.New("tilemap: tile types have already been loaded")
)

// TileType describes one kind of tile.
type TileType struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"` // ANSI color code, e.g. "2" or "#5f8700"
}

// TileTypes is an ordered registry of tile types. Indices are assigned in
// insertion order and never change.
type TileTypes struct {
	types []TileType
	index map[string]TileIdx
}

// NewTileTypes creates a registry holding only the unknown tile type.
func NewTileTypes() *TileTypes {
	tt := &TileTypes{index: make(map[string]TileIdx)}
	tt.mustAdd(TileType{Name: UnknownTile, Glyph: "?"})
	return tt
}

func (tt *TileTypes) mustAdd(t TileType) TileIdx {
	idx, err := tt.Add(t)
	if err != nil {
		panic(err)
	}
	return idx
}

// Add registers a tile type and returns its index.
func (tt *TileTypes) Add(t TileType) (TileIdx, error) {
	if t.Name == "" {
		return 0, ErrEmptyName
	}
	if _, exists := tt.index[t.Name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, t.Name)
	}
	if len(tt.types) > math.MaxUint16 {
		return 0, fmt.Errorf("%w: cannot add %q past %d types", ErrFull, t.Name, math.MaxUint16+1)
	}

	idx := TileIdx(len(tt.types))
	tt.types = append(tt.types, t)
	tt.index[t.Name] = idx
	return idx, nil
}

// Load reads a YAML list of tile types from path inside fsys and registers
// them after the unknown type.
func (tt *TileTypes) Load(fsys fs.FS, path string) error {
	if len(tt.types) > 1 {
		return ErrAlreadyLoaded
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("tilemap: cannot read tile types %s: %w", path, err)
	}

	var types []TileType
	if err := yaml.Unmarshal(data, &types); err != nil {
		return fmt.Errorf("tilemap: cannot parse tile types %s: %w", path, err)
	}

	for _, t := range types {
		if _, err := tt.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// Index returns the index registered for name.
func (tt *TileTypes) Index(name string) (TileIdx, bool) {
	idx, ok := tt.index[name]
	return idx, ok
}

// Get returns the tile type at idx.
func (tt *TileTypes) Get(idx TileIdx) (TileType, bool) {
	if int(idx) >= len(tt.types) {
		return TileType{}, false
	}
	return tt.types[idx], true
}

// Len returns the number of registered tile types, unknown included.
func (tt *TileTypes) Len() int {
	return len(tt.types)
}

// All returns a copy of the registered tile types in index order.
func (tt *TileTypes) All() []TileType {
	out := make([]TileType, len(tt.types))
	copy(out, tt.types)
	return out
}
