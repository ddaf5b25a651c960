// Package render formats estimates, comparisons, and budget progress for
// the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Manjussha/promptcost/internal/budget"
	"github.com/Manjussha/promptcost/internal/cost"
	"github.com/Manjussha/promptcost/internal/pricing"
)

// Renderer handles output formatting. When pretty is false (piped output or
// --simple) everything is plain, single-purpose text.
type Renderer struct {
	pretty bool
}

// New creates a new renderer.
func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Estimate formats a full estimate card.
func (r *Renderer) Estimate(est cost.Estimate) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Cost Estimate — %s", est.Pricing.DisplayName) + "\n")
		sb.WriteString(strings.Repeat("─", 52) + "\n")
	} else {
		fmt.Fprintf(&sb, "Cost estimate for %s\n", est.Model)
	}

	fmt.Fprintf(&sb, "  Input tokens:   %s%d", approxMarker(est), est.InputTokens)
	if !est.ExactTokens {
		sb.WriteString("  (approximate)")
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  Output tokens:  %d (expected)\n", est.OutputTokens)
	fmt.Fprintf(&sb, "  Input cost:     %s\n", usd(est.InputCost))
	fmt.Fprintf(&sb, "  Output cost:    %s\n", usd(est.OutputCost))

	total := usd(est.TotalCost)
	if r.pretty {
		total = color.GreenString(total)
	}
	fmt.Fprintf(&sb, "  Total:          %s\n", total)
	if est.InputTokens+est.OutputTokens > 0 {
		fmt.Fprintf(&sb, "  Per token:      %s\n", usd(est.CostPerToken))
	}
	return sb.String()
}

// Simple formats an estimate as one machine-parsable line.
func (r *Renderer) Simple(est cost.Estimate) string {
	return fmt.Sprintf("model=%s input_tokens=%d output_tokens=%d total_cost=%.6f\n",
		est.Model, est.InputTokens, est.OutputTokens, est.TotalCost)
}

// Comparison formats a ranked savings table against the baseline.
func (r *Renderer) Comparison(cmp cost.Comparison) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Model Comparison — baseline %s (%s)", cmp.Baseline.Model, usd(cmp.Baseline.TotalCost)) + "\n")
		sb.WriteString(strings.Repeat("─", 68) + "\n")
	} else {
		fmt.Fprintf(&sb, "baseline %s %s\n", cmp.Baseline.Model, usd(cmp.Baseline.TotalCost))
	}

	fmt.Fprintf(&sb, "  %-18s %-12s %-12s %s\n", "MODEL", "TOTAL", "SAVINGS", "PERCENT")
	for _, alt := range cmp.Alternatives {
		pct := "n/a"
		if alt.PercentValid {
			pct = fmt.Sprintf("%+.1f%%", alt.SavingsPercent)
		}
		savings := usd(alt.Savings)
		if r.pretty && alt.Savings > 0 {
			savings = color.GreenString(savings)
		} else if r.pretty && alt.Savings < 0 {
			savings = color.RedString(savings)
		}
		fmt.Fprintf(&sb, "  %-18s %-12s %-12s %s\n", alt.Model, usd(alt.Estimate.TotalCost), savings, pct)
	}
	return sb.String()
}

// Suggestions formats optimizer hints, one per line.
func (r *Renderer) Suggestions(suggestions []cost.Suggestion) string {
	if len(suggestions) == 0 {
		return ""
	}
	var sb strings.Builder
	if r.pretty {
		sb.WriteString(color.YellowString("Suggestions") + "\n")
	} else {
		sb.WriteString("Suggestions\n")
	}
	for _, s := range suggestions {
		fmt.Fprintf(&sb, "  • %s (save %s)\n", s.Text, s.PotentialSavings)
	}
	return sb.String()
}

// Models formats the pricing catalog as a table.
func (r *Renderer) Models(keys []string, records []pricing.Record, source pricing.Source) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Known Models — pricing source: %s", source) + "\n")
		sb.WriteString(strings.Repeat("─", 76) + "\n")
	}

	fmt.Fprintf(&sb, "%-18s %-20s %-10s %-10s %-10s %s\n", "KEY", "MODEL", "PROVIDER", "IN $/M", "OUT $/M", "CONTEXT")
	for i, rec := range records {
		fmt.Fprintf(&sb, "%-18s %-20s %-10s %-10.2f %-10.2f %s\n",
			keys[i], rec.DisplayName, rec.Provider, rec.InputPerMTok, rec.OutputPerMTok, formatTokens(rec.ContextWindow))
	}
	return sb.String()
}

// Budget formats today's spend against the daily budget.
func (r *Renderer) Budget(p budget.Progress) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Budget — today") + "\n")
		sb.WriteString(strings.Repeat("─", 40) + "\n")
	}

	fmt.Fprintf(&sb, "  Estimates:  %d\n", p.Entries)
	fmt.Fprintf(&sb, "  Projected:  %s of %s\n", usd(p.Spent), usd(p.Budget))

	zone := p.Zone.String()
	if r.pretty {
		switch p.Zone {
		case budget.ZoneRed:
			zone = color.RedString(zone)
		case budget.ZoneOrange, budget.ZoneYellow:
			zone = color.YellowString(zone)
		default:
			zone = color.GreenString(zone)
		}
	}
	fmt.Fprintf(&sb, "  Zone:       %s (%.1f%%)\n", zone, p.Percent)
	return sb.String()
}

// usd renders a dollar amount; sub-cent values keep enough digits to stay
// meaningful.
func usd(v float64) string {
	if v != 0 && v < 0.01 && v > -0.01 {
		return fmt.Sprintf("$%.6f", v)
	}
	return fmt.Sprintf("$%.4f", v)
}

// approxMarker prefixes heuristic counts with "~".
func approxMarker(est cost.Estimate) string {
	if est.ExactTokens {
		return ""
	}
	return "~"
}

// formatTokens renders a context window as 128K / 2M style.
func formatTokens(n int) string {
	if n >= 1_000_000 {
		return fmt.Sprintf("%dM", n/1_000_000)
	}
	if n >= 1_000 {
		return fmt.Sprintf("%dK", n/1_000)
	}
	return fmt.Sprintf("%d", n)
}
