package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Manjussha/promptcost/internal/budget"
)

func init() {
	rootCmd.AddCommand(budgetCmd)
}

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show today's projected spend against the daily budget",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a := newApp(ctx)

		if a.cfg.DailyBudget <= 0 {
			fmt.Println("Budget tracking is off. Set PROMPTCOST_DAILY_BUDGET (USD) to enable it.")
			return nil
		}

		database, err := openLedgerDB(a.cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		progress, err := budget.NewLedger(database, a.cfg.DailyBudget).Today(ctx)
		if err != nil {
			return err
		}
		fmt.Print(a.renderer.Budget(progress))
		return nil
	},
}
