package registry

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hexgrid/internal/tilemap"
)

// Built-in generator kinds.
const (
	KindFill        = "fill"
	KindAlternation = "alternation"
	KindNoise       = "noise"
)

func init() {
	Register(KindFill, "every tile gets the first listed type", newFill)
	Register(KindAlternation, "cycles the listed types in storage order", newAlternation)
	Register(KindNoise, "simplex noise thresholded into bands", newNoise)
}

func newFill(types *tilemap.TileTypes, p Params) (tilemap.Generator, error) {
	if len(p.Tiles) == 0 {
		return nil, errors.New("fill generator needs a tile")
	}
	idx, ok := types.Index(p.Tiles[0])
	if !ok {
		return nil, fmt.Errorf("missing tile type: %s", p.Tiles[0])
	}
	return tilemap.FillGenerator(idx), nil
}

func newAlternation(types *tilemap.TileTypes, p Params) (tilemap.Generator, error) {
	return tilemap.NewAlternationGenerator(types, p.Tiles)
}

func newNoise(types *tilemap.TileTypes, p Params) (tilemap.Generator, error) {
	return tilemap.NewNoiseGenerator(types, tilemap.NoiseConfig{
		Seed:      p.Seed,
		Frequency: p.Frequency,
		Octaves:   p.Octaves,
		Bands:     p.Bands,
	})
}
