package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgrid/internal/hex"
)

var pixelCmd = &cobra.Command{
	Use:   "pixel <q> <r>",
	Short: "Project a hex center to the plane",
	Long: `Prints the planar position of the center of (q, r). Neighbouring
centers are one unit apart and the q axis lies along x.

Examples:
  hexgrid pixel 0 1`,
	Args: cobra.ExactArgs(2),
	Run:  runPixel,
}

var locateCmd = &cobra.Command{
	Use:   "locate <x> <y>",
	Short: "Find the hex containing a point in the plane",
	Long: `Prints the hex whose area contains (x, y). Points outside the
coordinate domain wrap around at 256.

Examples:
  hexgrid locate 0.5 0.866
  hexgrid locate -- -0.6 0`,
	Args: cobra.ExactArgs(2),
	Run:  runLocate,
}

func runPixel(cmd *cobra.Command, args []string) {
	c, err := parseCoord(args[0], args[1])
	if err != nil {
		fail(err)
	}
	x, y := c.ToLinear()
	fmt.Printf("%s -> (%.4f, %.4f)\n", c, x, y)
}

func runLocate(cmd *cobra.Command, args []string) {
	x, err := parseFloat32("x", args[0])
	if err != nil {
		fail(err)
	}
	y, err := parseFloat32("y", args[1])
	if err != nil {
		fail(err)
	}
	fmt.Printf("(%g, %g) -> %s\n", x, y, hex.FromLinear(x, y))
}
