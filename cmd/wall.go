package cmd

import (
	"github.com/spf13/cobra"
)

var wallCmd = &cobra.Command{
	Use:   "wall",
	Short: "Retaining wall reinforcement detailing",
	Long: `Detail the reinforcement of a retaining-wall panel: vertical
steel continuous through the stem and L-anchored into the base with a
large bend radius, plus horizontal distribution steel.

Subcommands:
  detail  - Compute bar layout, anchorages and render geometry

All lengths are entered in meters.`,
}

func init() {
	rootCmd.AddCommand(wallCmd)
}
