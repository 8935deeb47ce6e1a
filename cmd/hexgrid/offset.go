package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgrid/internal/hex"
)

var (
	flagWidth      uint8
	flagHeight     uint8
	flagOffsetWrap bool
)

var offsetCmd = &cobra.Command{
	Use:   "offset <q> <r> <dq> <dr>",
	Short: "Translate a hex within a bounded grid",
	Long: `Moves (q, r) by (dq, dr) on a grid whose largest valid coordinates
are --width and --height. Moving off the grid fails unless --wrap is set
and the move only leaves through the left or right edge.

Examples:
  hexgrid offset 2 2 1 -1 --width 9 --height 9
  hexgrid offset 9 0 1 0 --width 9 --height 9 --wrap`,
	Args: cobra.ExactArgs(4),
	Run:  runOffset,
}

func init() {
	offsetCmd.Flags().Uint8Var(&flagWidth, "width", 255, "Largest valid q")
	offsetCmd.Flags().Uint8Var(&flagHeight, "height", 255, "Largest valid r")
	offsetCmd.Flags().BoolVar(&flagOffsetWrap, "wrap", false, "Wrap columns around")
}

func runOffset(cmd *cobra.Command, args []string) {
	c, err := parseCoord(args[0], args[1])
	if err != nil {
		fail(err)
	}
	o, err := parseOrientation(args[2], args[3])
	if err != nil {
		fail(err)
	}
	moved, err := offsetWithin(c, o, flagWidth, flagHeight, flagOffsetWrap)
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s + %s -> %s\n", c, o, moved)
}

// offsetWithin is Coord.OffsetBy with the off-grid case reported as errOffGrid.
func offsetWithin(c hex.Coord, o hex.Orientation, width, height uint8, wrapsX bool) (hex.Coord, error) {
	moved, ok := c.OffsetBy(o, width, height, wrapsX)
	if !ok {
		return hex.Coord{}, fmt.Errorf("%w: %s + %s leaves the %dx%d grid", errOffGrid, c, o, int(width)+1, int(height)+1)
	}
	return moved, nil
}
