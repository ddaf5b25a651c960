package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	compareModel  string
	compareOutput int
)

func init() {
	compareCmd.Flags().StringVarP(&compareModel, "model", "m", "", "baseline model key")
	compareCmd.Flags().IntVarP(&compareOutput, "output", "o", 500, "expected output tokens")
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <input>",
	Short: "Rank alternative models by projected savings",
	Long: `Estimates <input> against the baseline model and every other model in the
pricing catalog, ranked by how much switching would save.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a := newApp(ctx)

		model := compareModel
		if model == "" {
			model = a.cfg.DefaultModel
		}
		if !cmd.Flags().Changed("output") {
			compareOutput = a.cfg.DefaultOutputTokens
		}

		cmp, err := a.estimator.Compare(resolveInput(args[0]), model, a.catalog.Keys(), compareOutput)
		if err != nil {
			return err
		}
		a.recordEstimate(ctx, cmp.Baseline)

		fmt.Print(a.renderer.Comparison(cmp))
		return nil
	},
}
