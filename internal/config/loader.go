package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hexgrid/internal/registry"
	"github.com/vovakirdan/hexgrid/internal/tilemap"
)

// Load loads the hexgrid configuration.
// Search order: customPath -> ~/.hexgrid/config.yaml -> ./configs/hexgrid.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Config{}, err
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "hexgrid.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultHexgridYAML, &cfg); err != nil || cfg.Validate() != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readFile parses a YAML config on top of the defaults, so omitted sections
// keep their default values.
func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexgrid", filename)
}

// TilesFS returns the filesystem holding the tile type definitions.
func (cfg Config) TilesFS() fs.FS {
	if cfg.Tiles.Dir == "" {
		return defaultTilesFS()
	}
	return os.DirFS(cfg.Tiles.Dir)
}

// LoadTileTypes builds the tile type registry described by cfg.
func (cfg Config) LoadTileTypes() (*tilemap.TileTypes, error) {
	types := tilemap.NewTileTypes()
	if err := types.Load(cfg.TilesFS(), cfg.Tiles.File); err != nil {
		return nil, err
	}
	return types, nil
}

// NewGenerator builds the generator described by cfg against types.
func (cfg Config) NewGenerator(types *tilemap.TileTypes) (tilemap.Generator, error) {
	g := cfg.Generator
	bands := make([]tilemap.Band, len(g.Bands))
	for i, b := range g.Bands {
		bands[i] = tilemap.Band{Below: b.Below, Tile: b.Tile}
	}
	return registry.Create(g.Kind, types, registry.Params{
		Tiles:     g.Tiles,
		Seed:      g.Seed,
		Frequency: g.Frequency,
		Octaves:   g.Octaves,
		Bands:     bands,
	})
}
