package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/Manjussha/promptcost/internal/db"
)

// Ledger records projected estimate costs in SQLite and reports today's
// spend against the configured daily budget.
type Ledger struct {
	database *db.DB
	budget   float64
}

// NewLedger creates a Ledger over an opened database.
func NewLedger(database *db.DB, dailyBudget float64) *Ledger {
	return &Ledger{database: database, budget: dailyBudget}
}

// Record saves one estimate to the ledger.
func (l *Ledger) Record(ctx context.Context, model string, inputTokens, outputTokens int, totalCost float64) error {
	today := time.Now().Format("2006-01-02")
	_, err := l.database.ExecContext(ctx, `
		INSERT INTO estimate_log (model, input_tokens, output_tokens, cost, date)
		VALUES (?,?,?,?,?)`,
		model, inputTokens, outputTokens, totalCost, today,
	)
	if err != nil {
		return fmt.Errorf("budget.Record: %w", err)
	}
	return nil
}

// Today returns the budget progress for the current day.
func (l *Ledger) Today(ctx context.Context) (Progress, error) {
	today := time.Now().Format("2006-01-02")

	var spent float64
	var entries int
	err := l.database.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(cost), 0), COUNT(*)
		FROM estimate_log
		WHERE date=?`, today,
	).Scan(&spent, &entries)
	if err != nil {
		return Progress{}, fmt.Errorf("budget.Today: %w", err)
	}

	p := Progress{
		Spent:   spent,
		Budget:  l.budget,
		Zone:    ZoneFor(spent, l.budget),
		Entries: entries,
	}
	if l.budget > 0 {
		p.Percent = spent / l.budget * 100
	}
	return p, nil
}
