package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modelsCmd)
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known models and their rates",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp(cmd.Context())
		fmt.Print(a.renderer.Models(a.catalog.Keys(), a.catalog.List(), a.source))
	},
}
