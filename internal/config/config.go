// Package config provides YAML-based configuration for hex maps: grid
// dimensions, wrapping, tile type files and map generators.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hexgrid/internal/registry"
)

// Generator kinds with dedicated validation. Other registered kinds are
// accepted as they are.
const (
	GeneratorFill        = registry.KindFill
	GeneratorAlternation = registry.KindAlternation
	GeneratorNoise       = registry.KindNoise
)

var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level hexgrid configuration.
type Config struct {
	Map       MapConfig       `yaml:"map"`
	Generator GeneratorConfig `yaml:"generator"`
	Tiles     TilesConfig     `yaml:"tiles"`
}

// MapConfig describes the tile grid. Width and Height are the largest valid
// q and r, so a map holds (Width+1) x (Height+1) tiles.
type MapConfig struct {
	Width  uint8 `yaml:"width"`
	Height uint8 `yaml:"height"`
	WrapsX bool  `yaml:"wraps_x"` // planet map
}

// GeneratorConfig selects and tunes the map generator.
type GeneratorConfig struct {
	Kind      string       `yaml:"kind"`  // a registered generator kind
	Tiles     []string     `yaml:"tiles"` // fill uses the first, alternation cycles all
	Seed      int64        `yaml:"seed"`
	Frequency float64      `yaml:"frequency"`
	Octaves   int          `yaml:"octaves"`
	Bands     []BandConfig `yaml:"bands"`
}

// BandConfig maps noise values below Below to a tile type.
type BandConfig struct {
	Below float64 `yaml:"below"`
	Tile  string  `yaml:"tile"`
}

// TilesConfig locates the tile type definitions. An empty Dir uses the
// embedded defaults.
type TilesConfig struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

// Validate reports the first problem found in cfg.
func (cfg Config) Validate() error {
	g := cfg.Generator
	switch g.Kind {
	case GeneratorFill, GeneratorAlternation:
		if len(g.Tiles) == 0 {
			return fmt.Errorf("%w: %s generator needs at least one tile", ErrInvalid, g.Kind)
		}
	case GeneratorNoise:
		if len(g.Bands) == 0 {
			return fmt.Errorf("%w: noise generator needs at least one band", ErrInvalid)
		}
		for i := 1; i < len(g.Bands); i++ {
			if g.Bands[i].Below < g.Bands[i-1].Below {
				return fmt.Errorf("%w: noise band %q is out of order", ErrInvalid, g.Bands[i].Tile)
			}
		}
		if g.Octaves < 0 {
			return fmt.Errorf("%w: octaves must not be negative", ErrInvalid)
		}
	default:
		if !registry.Exists(g.Kind) {
			return fmt.Errorf("%w: unknown generator kind %q", ErrInvalid, g.Kind)
		}
	}
	if cfg.Tiles.File == "" {
		return fmt.Errorf("%w: tiles.file is empty", ErrInvalid)
	}
	return nil
}
