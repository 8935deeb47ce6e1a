package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgrid/internal/registry"
)

var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "List the available map generators",
	Long:  `Shows every generator kind usable in the config's generator.kind.`,
	Run:   runGenerators,
}

func runGenerators(cmd *cobra.Command, args []string) {
	gens := registry.List()

	if len(gens) == 0 {
		fmt.Println("No generators available.")
		return
	}

	fmt.Println("Available generators:")
	fmt.Println()

	// Calculate column widths
	maxKindLen := 4 // "Kind" header
	for _, g := range gens {
		maxKindLen = max(maxKindLen, len(g.Kind))
	}

	fmt.Printf("  %-*s  %s\n", maxKindLen, "Kind", "Description")
	fmt.Printf("  %-*s  %s\n", maxKindLen, "----", "-----------")
	for _, g := range gens {
		fmt.Printf("  %-*s  %s\n", maxKindLen, g.Kind, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'hexgrid map --generator <kind>' to try one.")
}
