package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgrid/internal/config"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "List the configured tile types",
	Long: `Shows every tile type in the registry, in index order. Index 0 is
always the unknown tile type.`,
	Run: runTiles,
}

func runTiles(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail(err)
	}
	types, err := cfg.LoadTileTypes()
	if err != nil {
		fail(err)
	}
	logger.Debug("tile types loaded", "count", types.Len(), "dir", cfg.Tiles.Dir, "file", cfg.Tiles.File)

	all := types.All()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, tt := range all {
		maxNameLen = max(maxNameLen, len(tt.Name))
	}

	fmt.Printf("  %-5s  %-5s  %-*s  %s\n", "Index", "Glyph", maxNameLen, "Name", "Color")
	fmt.Printf("  %-5s  %-5s  %-*s  %s\n", "-----", "-----", maxNameLen, "----", "-----")
	for i, tt := range all {
		fmt.Printf("  %-5d  %-5s  %-*s  %s\n", i, tt.Glyph, maxNameLen, tt.Name, tt.Color)
	}
}
