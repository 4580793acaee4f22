package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam reinforcement detailing",
	Long: `Detail the reinforcement of a simply supported rectangular,
T or L beam span per the selected detailing code.

Subcommands:
  detail  - Compute bar layout, curtailment and render geometry

All lengths are entered in meters.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
