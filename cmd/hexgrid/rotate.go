package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgrid/internal/hex"
)

var (
	flagCenter string
	flagCCW    bool
	flagTimes  int
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <q> <r>",
	Short: "Rotate a hex around a center",
	Long: `Rotates (q, r) by 60 degrees around --center, clockwise unless
--ccw is set. --times repeats the rotation; six rotations return to the
start.

Examples:
  hexgrid rotate 6 5 --center 5,5
  hexgrid rotate 6 5 --center 5,5 --ccw --times 3`,
	Args: cobra.ExactArgs(2),
	Run:  runRotate,
}

func init() {
	rotateCmd.Flags().StringVar(&flagCenter, "center", "0,0", "Rotation center as q,r")
	rotateCmd.Flags().BoolVar(&flagCCW, "ccw", false, "Rotate counter-clockwise")
	rotateCmd.Flags().IntVar(&flagTimes, "times", 1, "Number of 60 degree steps")
}

func runRotate(cmd *cobra.Command, args []string) {
	c, err := parseCoord(args[0], args[1])
	if err != nil {
		fail(err)
	}
	center, err := parseCoordPair(flagCenter)
	if err != nil {
		fail(err)
	}

	step := hex.Coord.RotateCW
	if flagCCW {
		step = hex.Coord.RotateCCW
	}
	rotated := c
	for range max(flagTimes, 0) {
		rotated = step(rotated, center)
	}
	fmt.Printf("%s -> %s around %s\n", c, rotated, center)
}
