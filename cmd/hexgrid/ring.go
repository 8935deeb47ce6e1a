package main

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgrid/internal/hex"
)

var ringCmd = &cobra.Command{
	Use:   "ring <q> <r> <d>",
	Short: "List the hexes at exactly distance d from a center",
	Long: `Walks the ring of hexes at distance d around (q, r), starting in
direction (1,0) and moving clockwise. Distance 0 yields the center alone.

Each line shows the offset from the center and the absolute coordinate.
Coordinates wrap around at 256.

Examples:
  hexgrid ring 5 5 1
  hexgrid ring 0 0 3`,
	Args: cobra.ExactArgs(3),
	Run:  runRing,
}

func runRing(cmd *cobra.Command, args []string) {
	center, d, err := parseCenterDistance(args)
	if err != nil {
		fail(err)
	}
	ring := center.Ring(d)
	printOffsets(ring.All())
}

// parseCenterDistance reads the <q> <r> <d> arguments shared by ring and disk.
func parseCenterDistance(args []string) (hex.Coord, uint8, error) {
	center, err := parseCoord(args[0], args[1])
	if err != nil {
		return hex.Coord{}, 0, err
	}
	d, err := parseUint8("d", args[2])
	if err != nil {
		return hex.Coord{}, 0, err
	}
	return center, d, nil
}

func printOffsets(seq iter.Seq2[hex.Orientation, hex.Coord]) {
	fmt.Printf("  %-10s  %s\n", "Offset", "Coord")
	fmt.Printf("  %-10s  %s\n", "------", "-----")
	n := 0
	for o, c := range seq {
		fmt.Printf("  %-10s  %s\n", o, c)
		n++
	}
	fmt.Println()
	fmt.Printf("%d hexes\n", n)
}
