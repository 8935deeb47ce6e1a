package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var distanceCmd = &cobra.Command{
	Use:   "distance <q1> <r1> <q2> <r2>",
	Short: "Hex distance between two coordinates",
	Long: `Prints the number of steps between two hexes. Differences wrap
around at 256, so (0,0) and (255,0) are neighbours.

Examples:
  hexgrid distance 0 0 3 2
  hexgrid distance 0 0 255 0`,
	Args: cobra.ExactArgs(4),
	Run:  runDistance,
}

func runDistance(cmd *cobra.Command, args []string) {
	a, err := parseCoord(args[0], args[1])
	if err != nil {
		fail(err)
	}
	b, err := parseCoord(args[2], args[3])
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s -> %s: %d (offset %s)\n", a, b, a.DistanceTo(b), b.Sub(a))
}
