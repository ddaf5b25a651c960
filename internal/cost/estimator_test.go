package cost

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manjussha/promptcost/internal/pricing"
	"github.com/Manjussha/promptcost/internal/tokenizer"
)

// testCatalog gives deterministic rates: one heuristic-family model at
// $5/$15 per million, one free model, one exact-family pair.
func testCatalog() *pricing.Catalog {
	return pricing.NewCatalog(map[string]pricing.Record{
		"claude-sonnet-4": {DisplayName: "Claude Sonnet 4", Provider: "anthropic", InputPerMTok: 5, OutputPerMTok: 15, ContextWindow: 200_000},
		"claude-free":     {DisplayName: "Free", Provider: "anthropic", InputPerMTok: 0, OutputPerMTok: 0, ContextWindow: 200_000},
		"gpt-4o":          {DisplayName: "GPT-4o", Provider: "openai", InputPerMTok: 2.5, OutputPerMTok: 10, ContextWindow: 128_000},
		"gpt-4o-mini":     {DisplayName: "GPT-4o mini", Provider: "openai", InputPerMTok: 0.15, OutputPerMTok: 0.60, ContextWindow: 128_000},
	}, map[string]string{
		"sonnet": "claude-sonnet-4",
	})
}

func testEstimator(enc tokenizer.Encoder) *Estimator {
	return NewEstimator(testCatalog(), tokenizer.NewCounter(enc))
}

func TestEstimateHeuristicRates(t *testing.T) {
	// 4000 chars → 1000 heuristic tokens at $5.00/M input, 500 expected
	// output tokens at $15.00/M.
	e := testEstimator(nil)
	est, err := e.Estimate(strings.Repeat("a", 4000), "claude-sonnet-4", 500)
	require.NoError(t, err)

	assert.Equal(t, 1000, est.InputTokens)
	assert.Equal(t, 500, est.OutputTokens)
	assert.False(t, est.ExactTokens)
	assert.InDelta(t, 0.005, est.InputCost, 1e-12)
	assert.InDelta(t, 0.0075, est.OutputCost, 1e-12)
	assert.InDelta(t, 0.0125, est.TotalCost, 1e-12)
	assert.InDelta(t, 0.0125/1500, est.CostPerToken, 1e-15)
}

func TestEstimateZeroRatesCostNothing(t *testing.T) {
	e := testEstimator(nil)
	est, err := e.Estimate("any text at all", "claude-free", 10_000)
	require.NoError(t, err)
	assert.Zero(t, est.TotalCost)
	assert.Zero(t, est.CostPerToken)
}

func TestEstimateUnknownModel(t *testing.T) {
	e := testEstimator(nil)
	_, err := e.Estimate("text", "not-a-model", 500)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestEstimateResolvesAlias(t *testing.T) {
	e := testEstimator(nil)
	est, err := e.Estimate("text", "sonnet", 0)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4", est.Model)
}

func TestEstimateEmptyInputNoNaN(t *testing.T) {
	e := testEstimator(nil)
	est, err := e.Estimate("", "claude-sonnet-4", 0)
	require.NoError(t, err)
	assert.Zero(t, est.InputTokens)
	assert.Zero(t, est.TotalCost)
	// Zero denominator must report zero, never NaN/Inf.
	assert.Zero(t, est.CostPerToken)
}

func TestEstimateNegativeOutputClamped(t *testing.T) {
	e := testEstimator(nil)
	est, err := e.Estimate("text", "claude-sonnet-4", -5)
	require.NoError(t, err)
	assert.Zero(t, est.OutputTokens)
}

func TestEstimateDeterministic(t *testing.T) {
	e := testEstimator(nil)
	first, err := e.Estimate("some prompt", "claude-sonnet-4", 500)
	require.NoError(t, err)
	second, err := e.Estimate("some prompt", "claude-sonnet-4", 500)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
