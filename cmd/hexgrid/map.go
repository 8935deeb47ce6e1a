package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/term"

	"github.com/vovakirdan/hexgrid/internal/config"
	"github.com/vovakirdan/hexgrid/internal/hex"
	"github.com/vovakirdan/hexgrid/internal/tilemap"
	"github.com/vovakirdan/hexgrid/internal/textview"
)

var (
	flagSize      string
	flagSeed      int64
	flagGenerator string
	flagMapCenter string
	flagRadius    uint8
	flagFull      bool
	flagPlain     bool
	flagLegend    bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Generate and print a hex map",
	Long: `Generates a map from the configuration and prints it as text. Each
row is shifted by half a tile; planet maps (wraps_x) wrap the shift so the
map stays rectangular.

With --center, the hexes within --radius of the center are highlighted,
wrapping around the planet when the map wraps.

Size presets:
  tiny      - 16x12 tiles
  small     - 32x16 tiles
  standard  - 48x24 tiles
  huge      - 96x48 tiles
  max       - 256x256 tiles

Examples:
  hexgrid map
  hexgrid map --size tiny --seed 7
  hexgrid map --generator alternation --plain
  hexgrid map --center 10,5 --radius 2`,
	Args: cobra.NoArgs,
	Run:  runMap,
}

func init() {
	mapCmd.Flags().StringVar(&flagSize, "size", "", "Size preset: tiny, small, standard, huge, max")
	mapCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Noise seed (overrides config)")
	mapCmd.Flags().StringVar(&flagGenerator, "generator", "", "Generator kind: fill, alternation, noise")
	mapCmd.Flags().StringVar(&flagMapCenter, "center", "", "Highlight around this hex, as q,r")
	mapCmd.Flags().Uint8Var(&flagRadius, "radius", 1, "Highlight radius around --center")
	mapCmd.Flags().BoolVar(&flagFull, "full", false, "Do not clip to the terminal width")
	mapCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colors")
	mapCmd.Flags().BoolVar(&flagLegend, "legend", false, "Print the tile legend below the map")
}

func runMap(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail(err)
	}
	if flagSize != "" {
		preset, err := config.ParseSizePreset(flagSize)
		if err != nil {
			fail(err)
		}
		config.ApplySizePreset(&cfg, preset)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generator.Seed = flagSeed
	}
	if flagGenerator != "" {
		cfg.Generator.Kind = flagGenerator
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	types, err := cfg.LoadTileTypes()
	if err != nil {
		fail(err)
	}
	gen, err := cfg.NewGenerator(types)
	if err != nil {
		fail(err)
	}
	m, err := tilemap.New(cfg.Map.Width, cfg.Map.Height, cfg.Map.WrapsX, gen, logger)
	if err != nil {
		fail(err)
	}

	opts := textview.Options{Plain: flagPlain, Highlight: textview.Highlight()}
	if flagMapCenter != "" {
		center, err := parseCoordPair(flagMapCenter)
		if err != nil {
			fail(err)
		}
		if opts.Highlight, err = highlightAround(m, center, flagRadius); err != nil {
			fail(err)
		}
		logger.Debug("highlighting", "center", center, "radius", flagRadius, "hexes", opts.Highlight.Size())
	}

	if !flagFull {
		if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			opts.MaxWidth = w
		}
	}

	fmt.Println(textview.Dump(m, types, opts))
	if flagLegend {
		fmt.Println()
		fmt.Println(textview.Legend(types, flagPlain))
	}
	logger.Info("map printed", "width", int(cfg.Map.Width)+1, "height", int(cfg.Map.Height)+1, "wraps_x", cfg.Map.WrapsX)
}

// highlightAround collects the on-map hexes within radius of center.
func highlightAround(m *tilemap.TileMap, center hex.Coord, radius uint8) (mapset.Set[hex.Coord], error) {
	if _, ok := m.Tile(center); !ok {
		return mapset.Set[hex.Coord]{}, fmt.Errorf("%w: center %s is off the map", errOffGrid, center)
	}
	set := textview.Highlight()
	for _, c := range m.Neighbors(center, radius) {
		set.Put(c)
	}
	return set, nil
}
