package tilemap

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Generator fills the tiles of a freshly allocated map.
type Generator interface {
	Generate(m *TileMap) error
}

// lookupTypes resolves tile type names to indices.
func lookupTypes(types *TileTypes, names []string) ([]TileIdx, error) {
	out := make([]TileIdx, 0, len(names))
	for _, name := range names {
		idx, ok := types.Index(name)
		if !ok {
			return nil, fmt.Errorf("missing tile type: %s", name)
		}
		out = append(out, idx)
	}
	return out, nil
}

// AlternationGenerator cycles through a fixed list of tile types by storage
// index.
type AlternationGenerator struct {
	tiles []TileIdx
}

// NewAlternationGenerator resolves names against types.
func NewAlternationGenerator(types *TileTypes, names []string) (*AlternationGenerator, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("tilemap: alternation generator needs at least one tile type")
	}
	tiles, err := lookupTypes(types, names)
	if err != nil {
		return nil, err
	}
	return &AlternationGenerator{tiles: tiles}, nil
}

// Generate implements Generator.
func (g *AlternationGenerator) Generate(m *TileMap) error {
	for c := range m.Coords() {
		idx, ok := c.Idx(m.Width, m.Height, m.WrapsX)
		if !ok {
			return fmt.Errorf("coord %v outside %dx%d map", c, m.Width, m.Height)
		}
		m.Tiles[idx] = Tile{Type: g.tiles[idx%len(g.tiles)]}
	}
	return nil
}

// Band assigns a tile type to noise values below Below.
type Band struct {
	Below float64
	Tile  string
}

// NoiseConfig tunes a NoiseGenerator.
type NoiseConfig struct {
	Seed      int64
	Frequency float64 // noise cycles per unit hex spacing
	Octaves   int
	Bands     []Band // sorted by Below; the last band catches everything
}

// NoiseGenerator picks tile types from layered simplex noise sampled at each
// tile's linear position.
type NoiseGenerator struct {
	noise     opensimplex.Noise
	frequency float64
	octaves   int
	below     []float64
	tiles     []TileIdx
}

// NewNoiseGenerator resolves band tile names against types.
func NewNoiseGenerator(types *TileTypes, cfg NoiseConfig) (*NoiseGenerator, error) {
	if len(cfg.Bands) == 0 {
		return nil, fmt.Errorf("tilemap: noise generator needs at least one band")
	}

	names := make([]string, len(cfg.Bands))
	below := make([]float64, len(cfg.Bands))
	for i, b := range cfg.Bands {
		if i > 0 && b.Below < cfg.Bands[i-1].Below {
			return nil, fmt.Errorf("tilemap: noise bands out of order at %q", b.Tile)
		}
		names[i] = b.Tile
		below[i] = b.Below
	}
	tiles, err := lookupTypes(types, names)
	if err != nil {
		return nil, err
	}

	octaves := cfg.Octaves
	if octaves <= 0 {
		octaves = 1
	}
	frequency := cfg.Frequency
	if frequency <= 0 {
		frequency = 0.1
	}

	return &NoiseGenerator{
		noise:     opensimplex.NewNormalized(cfg.Seed),
		frequency: frequency,
		octaves:   octaves,
		below:     below,
		tiles:     tiles,
	}, nil
}

// Generate implements Generator.
func (g *NoiseGenerator) Generate(m *TileMap) error {
	// One full row of the rhombus spans Width+1 units in linear x.
	circumference := float64(m.Width) + 1
	for c := range m.Coords() {
		idx, ok := c.Idx(m.Width, m.Height, m.WrapsX)
		if !ok {
			return fmt.Errorf("coord %v outside %dx%d map", c, m.Width, m.Height)
		}
		x, y := c.ToLinear()
		var v float64
		if m.WrapsX {
			v = g.sampleCylinder(float64(x), float64(y), circumference)
		} else {
			v = g.sample(float64(x), float64(y))
		}
		m.Tiles[idx] = Tile{Type: g.band(v)}
	}
	return nil
}

func (g *NoiseGenerator) band(v float64) TileIdx {
	for i, b := range g.below {
		if v < b {
			return g.tiles[i]
		}
	}
	return g.tiles[len(g.tiles)-1]
}

// sample is fractal noise in [0, 1].
func (g *NoiseGenerator) sample(x, y float64) float64 {
	return g.octave(func(f float64) float64 {
		return g.noise.Eval2(x*f, y*f)
	})
}

// sampleCylinder wraps x around a cylinder so the left and right edges of a
// planet map meet without a seam.
func (g *NoiseGenerator) sampleCylinder(x, y, circumference float64) float64 {
	angle := 2 * math.Pi * x / circumference
	radius := circumference / (2 * math.Pi)
	cx, cz := radius*math.Cos(angle), radius*math.Sin(angle)
	return g.octave(func(f float64) float64 {
		return g.noise.Eval3(cx*f, y*f, cz*f)
	})
}

func (g *NoiseGenerator) octave(eval func(frequency float64) float64) float64 {
	total, maxVal := 0.0, 0.0
	amplitude, frequency := 1.0, g.frequency
	for i := 0; i < g.octaves; i++ {
		total += eval(frequency) * amplitude
		maxVal += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return total / maxVal
}

// FillGenerator sets every tile to one type.
type FillGenerator TileIdx

// Generate implements Generator.
func (g FillGenerator) Generate(m *TileMap) error {
	for i := range m.Tiles {
		m.Tiles[i] = Tile{Type: TileIdx(g)}
	}
	return nil
}

var (
	_ Generator = (*AlternationGenerator)(nil)
	_ Generator = (*NoiseGenerator)(nil)
	_ Generator = FillGenerator(0)
)
