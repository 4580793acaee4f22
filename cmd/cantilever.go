package cmd

import (
	"github.com/spf13/cobra"
)

var cantileverCmd = &cobra.Command{
	Use:   "cantilever",
	Short: "Cantilever reinforcement detailing",
	Long: `Detail the reinforcement of a cantilever and its anchoring
backspan per the selected detailing code.

Subcommands:
  detail  - Compute bar layout, backspan extensions and render geometry

All lengths are entered in meters.`,
}

func init() {
	rootCmd.AddCommand(cantileverCmd)
}
