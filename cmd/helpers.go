package cmd

import (
	"context"
	"log"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Manjussha/promptcost/internal/budget"
	"github.com/Manjussha/promptcost/internal/config"
	"github.com/Manjussha/promptcost/internal/cost"
	"github.com/Manjussha/promptcost/internal/db"
	"github.com/Manjussha/promptcost/internal/platform"
	"github.com/Manjussha/promptcost/internal/pricing"
	"github.com/Manjussha/promptcost/internal/render"
	"github.com/Manjussha/promptcost/internal/tokenizer"
)

// app holds everything a command needs, wired once per invocation.
type app struct {
	cfg       *config.Config
	catalog   *pricing.Catalog
	source    pricing.Source
	estimator *cost.Estimator
	renderer  *render.Renderer
}

// newApp loads config, the pricing catalog (best-effort refresh), and the
// tokenizer, and picks plain vs colored output based on whether stdout is a
// terminal.
func newApp(ctx context.Context) *app {
	cfg := config.Load()
	catalog, source := pricing.Load(ctx, cfg)

	var enc tokenizer.Encoder
	if tk, err := tokenizer.NewTiktokenEncoder(); err != nil {
		log.Printf("tokenizer: exact counting unavailable, falling back to heuristic: %v", err)
	} else {
		enc = tk
	}

	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	if !pretty {
		color.NoColor = true
	}

	return &app{
		cfg:       cfg,
		catalog:   catalog,
		source:    source,
		estimator: cost.NewEstimator(catalog, tokenizer.NewCounter(enc)),
		renderer:  render.New(pretty),
	}
}

// resolveInput treats the argument as a file path first; if it cannot be
// read, the literal string is the prompt text. Never fails.
func resolveInput(arg string) string {
	if data, err := os.ReadFile(arg); err == nil {
		return string(data)
	}
	return arg
}

// recordEstimate appends an estimate to the spend ledger when budget
// tracking is enabled. Ledger problems never block an estimate.
func (a *app) recordEstimate(ctx context.Context, est cost.Estimate) {
	if a.cfg.DailyBudget <= 0 {
		return
	}
	database, err := openLedgerDB(a.cfg)
	if err != nil {
		log.Printf("budget: %v", err)
		return
	}
	defer database.Close()

	ledger := budget.NewLedger(database, a.cfg.DailyBudget)
	if err := ledger.Record(ctx, est.Model, est.InputTokens, est.OutputTokens, est.TotalCost); err != nil {
		log.Printf("budget: %v", err)
	}
}

// openLedgerDB opens (and migrates) the estimate ledger database.
func openLedgerDB(cfg *config.Config) (*db.DB, error) {
	if err := platform.EnsureDir(cfg.DataDir); err != nil {
		return nil, err
	}
	database, err := db.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
