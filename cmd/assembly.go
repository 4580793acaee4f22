package cmd

import (
	"github.com/spf13/cobra"
)

var assemblyCmd = &cobra.Command{
	Use:   "assembly",
	Short: "Multi-span assembly detailing",
	Long: `Detail a chain of beam spans defined in a JSON file: span start
offsets by prefix sum, per-span reinforcement, splice laps at internal
supports and support stubs at every boundary.

Subcommands:
  detail  - Assemble the spans and report geometry and quantities`,
}

func init() {
	rootCmd.AddCommand(assemblyCmd)
}
