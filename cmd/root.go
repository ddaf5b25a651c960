// Package cmd wires the promptcost CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "promptcost",
	Short: "Estimate LLM API costs before you send the prompt",
	Long: `promptcost estimates what a prompt will cost against a given model before
any API call is made: it counts tokens (exactly for OpenAI models via
tiktoken, approximately for others), multiplies by per-million-token rates,
and can rank cheaper alternatives by projected savings.

Pricing comes from a built-in table, refreshed best-effort from the
community LiteLLM pricing document and cached for 24 hours.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Core failures (an unknown model key) exit 1;
// everything else degrades to a usable result.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
