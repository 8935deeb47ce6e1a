// hexgrid explores hexagonal grid coordinates and generated hex maps from
// the terminal.
//
// Usage:
//
//	hexgrid ring <q> <r> <d>           - List the ring of hexes at distance d
//	hexgrid disk <q> <r> <d>           - List every hex within distance d
//	hexgrid pixel <q> <r>              - Project a hex center to the plane
//	hexgrid locate <x> <y>             - Find the hex containing a point
//	hexgrid index <q> <r>              - Storage index of a hex on a grid
//	hexgrid offset <q> <r> <dq> <dr>   - Translate a hex within a grid
//	hexgrid distance <q1> <r1> <q2> <r2>
//	hexgrid rotate <q> <r>             - Rotate a hex around a center
//	hexgrid tiles                      - List configured tile types
//	hexgrid generators                 - List map generators
//	hexgrid map                        - Generate and print a map
//
// Global flags:
//
//	--config <path>      - Path to a custom hexgrid config YAML
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexgrid",
	Short: "Hexgrid - hexagonal coordinates and maps in your terminal",
	Long: `Hexgrid works with axial hex coordinates on a wrapping 256x256 domain
and renders generated hex maps as text.

Available commands:
  ring      - Hexes at exactly a distance from a center
  disk      - Hexes within a distance of a center
  pixel     - Hex center in the plane
  locate    - Hex containing a point in the plane
  index     - Storage index of a hex on a bounded grid
  offset    - Translate a hex on a bounded grid
  distance  - Hex distance between two coordinates
  rotate    - Rotate a hex around a center
  tiles     - Show configured tile types
  generators - Show available map generators
  map       - Generate and print a map

Examples:
  hexgrid ring 5 5 2
  hexgrid locate 3.2 1.7
  hexgrid offset 9 0 1 0 --width 9 --height 9 --wrap
  hexgrid map --center 10,5 --radius 2`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom hexgrid config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(ringCmd)
	rootCmd.AddCommand(diskCmd)
	rootCmd.AddCommand(pixelCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(offsetCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(tilesCmd)
	rootCmd.AddCommand(generatorsCmd)
	rootCmd.AddCommand(mapCmd)
}

// newLogger builds the stderr logger at the level named by --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexgrid",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// fail prints err the way every subcommand reports errors and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
