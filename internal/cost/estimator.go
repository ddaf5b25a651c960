// Package cost turns text, a model key, and an expected output length into
// a deterministic cost estimate, and ranks alternative models by projected
// savings. All money math is full-precision float64; rounding happens at
// render time only.
package cost

import (
	"errors"
	"fmt"

	"github.com/Manjussha/promptcost/internal/pricing"
	"github.com/Manjussha/promptcost/internal/tokenizer"
)

// ErrUnknownModel is returned when a model key cannot be resolved in the
// pricing catalog, even through an alias.
var ErrUnknownModel = errors.New("unknown model")

// Estimate is a cost projection for one text against one model.
type Estimate struct {
	// Model is the canonical catalog key, after alias resolution.
	Model        string
	InputTokens  int
	OutputTokens int
	// ExactTokens is true when InputTokens came from a real tokenizer
	// rather than the character heuristic.
	ExactTokens bool

	InputCost  float64
	OutputCost float64
	TotalCost  float64
	// CostPerToken is TotalCost / (InputTokens + OutputTokens), or 0 when
	// there are no tokens at all. Never NaN or Inf.
	CostPerToken float64

	Pricing pricing.Record
}

// Estimator computes cost estimates against a pricing catalog.
type Estimator struct {
	catalog *pricing.Catalog
	counter *tokenizer.Counter
}

// NewEstimator creates an Estimator over the given catalog and counter.
func NewEstimator(catalog *pricing.Catalog, counter *tokenizer.Counter) *Estimator {
	return &Estimator{catalog: catalog, counter: counter}
}

// Catalog returns the pricing catalog the estimator resolves against.
func (e *Estimator) Catalog() *pricing.Catalog {
	return e.catalog
}

// Estimate projects the cost of sending text to modelKey, expecting
// expectedOutput tokens back. Fails with ErrUnknownModel when the catalog
// cannot resolve the key.
func (e *Estimator) Estimate(text, modelKey string, expectedOutput int) (Estimate, error) {
	canonical, rec, ok := e.catalog.Resolve(modelKey)
	if !ok {
		return Estimate{}, fmt.Errorf("cost.Estimate: %w: %q", ErrUnknownModel, modelKey)
	}
	if expectedOutput < 0 {
		expectedOutput = 0
	}

	count := e.counter.Count(text, canonical)

	est := Estimate{
		Model:        canonical,
		InputTokens:  count.Tokens,
		OutputTokens: expectedOutput,
		ExactTokens:  count.Exact,
		Pricing:      rec,
	}
	est.InputCost = float64(count.Tokens) / 1_000_000 * rec.InputPerMTok
	est.OutputCost = float64(expectedOutput) / 1_000_000 * rec.OutputPerMTok
	est.TotalCost = est.InputCost + est.OutputCost

	// Guard the division: empty text with zero expected output must report
	// zero, not NaN.
	if total := count.Tokens + expectedOutput; total > 0 {
		est.CostPerToken = est.TotalCost / float64(total)
	}
	return est, nil
}
