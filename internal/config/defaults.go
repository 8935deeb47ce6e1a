package config

import (
	"embed"
	"io/fs"
)

//go:embed defaults/hexgrid.yaml
var defaultHexgridYAML []byte

//go:embed defaults/tiles
var defaultTiles embed.FS

// DefaultTileFile is the tile type file inside the tiles directory.
const DefaultTileFile = "tile_types.yaml"

// Default returns the hardcoded configuration used when no YAML is found.
func Default() Config {
	return Config{
		Map: MapConfig{
			Width:  47,
			Height: 23,
			WrapsX: true,
		},
		Generator: GeneratorConfig{
			Kind:      GeneratorNoise,
			Tiles:     []string{"dirt", "grass"},
			Seed:      1,
			Frequency: 0.12,
			Octaves:   3,
			Bands: []BandConfig{
				{Below: 0.38, Tile: "water"},
				{Below: 0.45, Tile: "sand"},
				{Below: 0.62, Tile: "grass"},
				{Below: 0.75, Tile: "dirt"},
				{Below: 1.01, Tile: "mountain"},
			},
		},
		Tiles: TilesConfig{
			File: DefaultTileFile,
		},
	}
}

// defaultTilesFS returns the embedded tiles directory.
func defaultTilesFS() fs.FS {
	sub, err := fs.Sub(defaultTiles, "defaults/tiles")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return sub
}
