package cost

import (
	"fmt"
	"strings"
)

// Suggestion is one advisory cost-reduction hint.
type Suggestion struct {
	Text             string
	PotentialSavings string
}

// Suggest emits heuristic cost-reduction hints for an estimate. It is a
// fixed rule list, not a search: every rule is evaluated independently and
// appended when it triggers, so several can fire for the same estimate.
// Deterministic for a given estimate; never fails, may return nothing.
func (e *Estimator) Suggest(est Estimate) []Suggestion {
	var suggestions []Suggestion
	key := strings.ToLower(est.Model)

	// Flagship GPT-4o without the mini suffix: recompute with the mini
	// sibling's real rates on the same token counts.
	if strings.Contains(key, "gpt-4o") && !strings.Contains(key, "mini") {
		if _, mini, ok := e.catalog.Resolve("gpt-4o-mini"); ok {
			miniCost := float64(est.InputTokens)/1_000_000*mini.InputPerMTok +
				float64(est.OutputTokens)/1_000_000*mini.OutputPerMTok
			suggestions = append(suggestions, Suggestion{
				Text:             "Switch to gpt-4o-mini for simpler tasks",
				PotentialSavings: formatUSD(est.TotalCost - miniCost),
			})
		}
	}

	// Opus-tier Claude: Sonnet handles most workloads at a fraction of the
	// rate. Fixed claim, no recomputation.
	if strings.Contains(key, "opus") {
		suggestions = append(suggestions, Suggestion{
			Text:             "Switch to claude-sonnet-4 unless you need top-tier reasoning",
			PotentialSavings: "~80%",
		})
	}

	// Legacy GPT-4 tier: the current flagship is both better and cheaper.
	if key == "gpt-4" || key == "gpt-4-turbo" || strings.Contains(key, "gpt-3.5") {
		suggestions = append(suggestions, Suggestion{
			Text:             "Switch to gpt-4o — newer and cheaper than this tier",
			PotentialSavings: "~50%",
		})
	}

	// Large prompts usually carry trimmable context.
	if est.InputTokens > 1000 {
		trim := min(1000, int(float64(est.InputTokens)*0.3))
		saved := float64(trim) / 1_000_000 * est.Pricing.InputPerMTok
		suggestions = append(suggestions, Suggestion{
			Text:             fmt.Sprintf("Reduce context by ~%d tokens", trim),
			PotentialSavings: formatUSD(saved),
		})
	}

	// Long expected outputs can usually be capped.
	if est.OutputTokens > 1000 {
		trim := min(500, int(float64(est.OutputTokens)*0.2))
		saved := float64(trim) / 1_000_000 * est.Pricing.OutputPerMTok
		suggestions = append(suggestions, Suggestion{
			Text:             fmt.Sprintf("Cap expected output at ~%d fewer tokens", trim),
			PotentialSavings: formatUSD(saved),
		})
	}

	return suggestions
}

// formatUSD renders a dollar amount with enough precision for sub-cent
// estimate deltas.
func formatUSD(v float64) string {
	if v < 0 {
		return "$0.000000"
	}
	return fmt.Sprintf("$%.6f", v)
}
