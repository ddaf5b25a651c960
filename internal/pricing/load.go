package pricing

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Manjussha/promptcost/internal/config"
)

// Load builds the active catalog for this process. It starts from the
// built-in defaults and best-effort overlays a fresher pricing set: first
// the disk cache (if younger than CacheTTL), then a remote fetch. Any
// refresh failure is absorbed — pricing that is slightly stale beats a tool
// that refuses to run — which is why Load returns a Source instead of an
// error. User overrides from pricing.yaml are applied last and always win.
func Load(ctx context.Context, cfg *config.Config) (*Catalog, Source) {
	catalog := NewDefault()
	source := SourceDefaults

	if !cfg.Offline {
		if records, err := loadCache(cfg.DataDir, time.Now()); err == nil {
			catalog = catalog.Overlay(records)
			source = SourceDiskCache
		} else {
			fetchCtx, cancel := context.WithTimeout(ctx, cfg.HTTPTimeout)
			defer cancel()

			client := &http.Client{Timeout: cfg.HTTPTimeout}
			records, err := fetchLiteLLM(fetchCtx, client, LiteLLMURL)
			if err != nil {
				log.Printf("pricing: refresh unavailable, using built-in rates: %v", err)
			} else {
				catalog = catalog.Overlay(records)
				source = SourceFetched
				if err := saveCache(cfg.DataDir, records); err != nil {
					log.Printf("pricing: %v", err)
				}
			}
		}
	}

	overrides, err := loadOverrides(cfg.DataDir)
	if err != nil {
		log.Printf("pricing: ignoring overrides: %v", err)
	}
	if len(overrides) > 0 {
		updates := make(map[string]Record, len(overrides))
		for key, o := range overrides {
			canon, base, ok := catalog.Resolve(key)
			if !ok {
				canon = strings.ToLower(key)
			}
			updates[canon] = mergeOverride(canon, base, o)
		}
		catalog = catalog.Overlay(updates)
	}

	return catalog, source
}
