package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Manjussha/promptcost/internal/budget"
	"github.com/Manjussha/promptcost/internal/cost"
	"github.com/Manjussha/promptcost/internal/pricing"
)

func sampleEstimate() cost.Estimate {
	return cost.Estimate{
		Model:        "claude-sonnet-4",
		InputTokens:  1000,
		OutputTokens: 500,
		InputCost:    0.005,
		OutputCost:   0.0075,
		TotalCost:    0.0125,
		CostPerToken: 0.0125 / 1500,
		Pricing:      pricing.Record{DisplayName: "Claude Sonnet 4", Provider: "anthropic", InputPerMTok: 5, OutputPerMTok: 15, ContextWindow: 200_000},
	}
}

func TestSimpleLine(t *testing.T) {
	out := New(false).Simple(sampleEstimate())
	assert.Equal(t, "model=claude-sonnet-4 input_tokens=1000 output_tokens=500 total_cost=0.012500\n", out)
}

func TestEstimatePlain(t *testing.T) {
	out := New(false).Estimate(sampleEstimate())
	assert.Contains(t, out, "~1000")
	assert.Contains(t, out, "(approximate)")
	assert.Contains(t, out, "$0.0125")
}

func TestEstimateExactNoMarker(t *testing.T) {
	est := sampleEstimate()
	est.ExactTokens = true
	out := New(false).Estimate(est)
	assert.NotContains(t, out, "~1000")
	assert.NotContains(t, out, "(approximate)")
}

func TestComparisonShowsNAPercentForZeroBaseline(t *testing.T) {
	cmp := cost.Comparison{
		Baseline: cost.Estimate{Model: "claude-free"},
		Alternatives: []cost.Alternative{
			{Model: "claude-free-2", PercentValid: false},
		},
	}
	out := New(false).Comparison(cmp)
	assert.Contains(t, out, "n/a")
	assert.NotContains(t, out, "NaN")
}

func TestModelsTable(t *testing.T) {
	keys := []string{"gpt-4o"}
	records := []pricing.Record{{DisplayName: "GPT-4o", Provider: "openai", InputPerMTok: 2.5, OutputPerMTok: 10, ContextWindow: 128_000}}
	out := New(false).Models(keys, records, pricing.SourceDefaults)
	assert.Contains(t, out, "gpt-4o")
	assert.Contains(t, out, "128K")
}

func TestBudgetPlain(t *testing.T) {
	out := New(false).Budget(budget.Progress{Spent: 0.5, Budget: 1, Percent: 50, Zone: budget.ZoneGreen, Entries: 3})
	assert.Contains(t, out, "GREEN")
	assert.Contains(t, out, "3")
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "2M", formatTokens(2_097_152))
	assert.Equal(t, "128K", formatTokens(128_000))
	assert.Equal(t, "512", formatTokens(512))
}

func TestUSDPrecision(t *testing.T) {
	assert.Equal(t, "$0.0125", usd(0.0125))
	assert.Equal(t, "$0.000050", usd(0.00005))
	assert.Equal(t, "$0.0000", usd(0))
	assert.True(t, strings.HasPrefix(usd(1.5), "$1.5"))
}
