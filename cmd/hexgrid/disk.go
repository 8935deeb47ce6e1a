package main

import (
	"github.com/spf13/cobra"
)

var diskCmd = &cobra.Command{
	Use:   "disk <q> <r> <d>",
	Short: "List every hex within distance d of a center",
	Long: `Lists the rings 0 through d around (q, r), innermost first. A disk
of radius d holds 3d(d+1)+1 hexes.

Examples:
  hexgrid disk 5 5 2`,
	Args: cobra.ExactArgs(3),
	Run:  runDisk,
}

func runDisk(cmd *cobra.Command, args []string) {
	center, d, err := parseCenterDistance(args)
	if err != nil {
		fail(err)
	}
	disk := center.Disk(d)
	printOffsets(disk.All())
}
