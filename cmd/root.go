package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcd/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorcd",
	Short: "Reinforced Concrete Detailing Tool",
	Long: `gorcd - Go Reinforced Concrete Detailer

A CLI tool that turns dimensional parameters (span, section size, cover,
bar counts and diameters, link spacing) into precise reinforcement
layouts complying with standard detailing conventions (BS 8110 /
Eurocode 2 style rules).

This tool helps structural and quantity engineers produce:
  - Bar layouts with exact lateral offsets across the section
  - Code-based curtailment (60/40 top steel, splice laps, anchorages)
  - Bent-bar and link geometry with explicit bend radii
  - Renderable 3-D primitives for beams, cantilevers and walls
  - Multi-span assemblies and bar bending schedules

All lengths are entered in meters.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcd v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Detailer                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for detailing reinforced concrete elements")
		fmt.Println("  per BS 8110 / Eurocode 2 style conventions.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Beam, cantilever and retaining-wall reinforcement layouts")
		fmt.Println("    • Table-driven curtailment and splice rules per code family")
		fmt.Println("    • Multi-span assemblies from JSON definitions")
		fmt.Println("    • Bar bending schedules (text, PDF, XLSX)")
		fmt.Println("    • Section diagrams (ASCII, PNG/SVG/PDF)")
		fmt.Println()
		fmt.Println("  Use 'gorcd --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
