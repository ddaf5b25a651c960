package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Manjussha/promptcost/internal/render"
)

var (
	countModel  string
	countOutput int
	countSimple bool
)

func init() {
	countCmd.Flags().StringVarP(&countModel, "model", "m", "", "model key (default from PROMPTCOST_MODEL, else gpt-4o)")
	countCmd.Flags().IntVarP(&countOutput, "output", "o", 500, "expected output tokens")
	countCmd.Flags().BoolVar(&countSimple, "simple", false, "single-line machine-parsable output")
	rootCmd.AddCommand(countCmd)
}

var countCmd = &cobra.Command{
	Use:   "count <input>",
	Short: "Estimate the cost of a prompt",
	Long: `Estimates the cost of sending <input> to a model. <input> is read as a
file path first; if that fails, the literal string is used as the prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a := newApp(ctx)

		model := countModel
		if model == "" {
			model = a.cfg.DefaultModel
		}
		if !cmd.Flags().Changed("output") {
			countOutput = a.cfg.DefaultOutputTokens
		}

		est, err := a.estimator.Estimate(resolveInput(args[0]), model, countOutput)
		if err != nil {
			return err
		}
		a.recordEstimate(ctx, est)

		if countSimple {
			fmt.Print(render.New(false).Simple(est))
			return nil
		}
		fmt.Print(a.renderer.Estimate(est))
		if s := a.renderer.Suggestions(a.estimator.Suggest(est)); s != "" {
			fmt.Print("\n" + s)
		}
		return nil
	},
}
