package cost

import (
	"fmt"
	"sort"
)

// Alternative is one candidate model ranked against the baseline.
type Alternative struct {
	Model    string
	Estimate Estimate
	// Savings is baseline total minus candidate total; positive means the
	// candidate is cheaper.
	Savings float64
	// SavingsPercent is meaningless when the baseline cost is zero;
	// PercentValid is false and SavingsPercent is 0 in that case.
	SavingsPercent float64
	PercentValid   bool
}

// Comparison ranks alternative models against a baseline estimate,
// descending by savings.
type Comparison struct {
	Baseline     Estimate
	Alternatives []Alternative
}

// Compare estimates the baseline and every candidate, ranking candidates by
// projected savings. An unresolvable baseline fails the whole comparison;
// unresolvable candidates — and candidates that resolve to the baseline
// model itself — are silently dropped, since comparisons are advisory and a
// partial ranking is still useful.
func (e *Estimator) Compare(text, baselineModel string, candidates []string, expectedOutput int) (Comparison, error) {
	baseline, err := e.Estimate(text, baselineModel, expectedOutput)
	if err != nil {
		return Comparison{}, fmt.Errorf("cost.Compare: baseline: %w", err)
	}

	cmp := Comparison{Baseline: baseline}
	for _, candidate := range candidates {
		est, err := e.Estimate(text, candidate, expectedOutput)
		if err != nil {
			continue
		}
		if est.Model == baseline.Model {
			continue
		}
		alt := Alternative{
			Model:    est.Model,
			Estimate: est,
			Savings:  baseline.TotalCost - est.TotalCost,
		}
		if baseline.TotalCost > 0 {
			alt.SavingsPercent = alt.Savings / baseline.TotalCost * 100
			alt.PercentValid = true
		}
		cmp.Alternatives = append(cmp.Alternatives, alt)
	}

	// Stable: ties keep the original candidate order.
	sort.SliceStable(cmp.Alternatives, func(i, j int) bool {
		return cmp.Alternatives[i].Savings > cmp.Alternatives[j].Savings
	})
	return cmp, nil
}
