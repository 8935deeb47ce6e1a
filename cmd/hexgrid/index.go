package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgrid/internal/hex"
)

var (
	flagMaxX      uint8
	flagMaxZ      uint8
	flagIndexWrap bool
)

var indexCmd = &cobra.Command{
	Use:   "index <q> <r>",
	Short: "Storage index of a hex on a bounded grid",
	Long: `Prints the row-major index of (q, r) on a grid whose largest valid
coordinates are --max-x and --max-z. With --wrap the column wraps around,
so any q is valid.

Examples:
  hexgrid index 3 2 --max-x 9 --max-z 9
  hexgrid index 12 2 --max-x 9 --max-z 9 --wrap`,
	Args: cobra.ExactArgs(2),
	Run:  runIndex,
}

func init() {
	indexCmd.Flags().Uint8Var(&flagMaxX, "max-x", 255, "Largest valid q")
	indexCmd.Flags().Uint8Var(&flagMaxZ, "max-z", 255, "Largest valid r")
	indexCmd.Flags().BoolVar(&flagIndexWrap, "wrap", false, "Wrap columns around")
}

func runIndex(cmd *cobra.Command, args []string) {
	c, err := parseCoord(args[0], args[1])
	if err != nil {
		fail(err)
	}
	idx, err := gridIndex(c, flagMaxX, flagMaxZ, flagIndexWrap)
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s -> %d\n", c, idx)
	if back := hex.CoordFromIdx(idx, flagMaxX); back != c {
		fmt.Printf("stored as %s\n", back)
	}
}

// gridIndex is Coord.Idx with the off-grid case reported as errOffGrid.
func gridIndex(c hex.Coord, maxX, maxZ uint8, wrapsX bool) (int, error) {
	idx, ok := c.Idx(maxX, maxZ, wrapsX)
	if !ok {
		return 0, fmt.Errorf("%w: %s is outside the %dx%d grid", errOffGrid, c, int(maxX)+1, int(maxZ)+1)
	}
	return idx, nil
}
