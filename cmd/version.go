package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcd/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcd v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Detailing Tool")
		fmt.Println("BS 8110 / Eurocode 2 style detailing conventions")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
