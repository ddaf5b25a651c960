package pricing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Manjussha/promptcost/internal/platform"
)

// CacheTTL is how long a successfully fetched pricing set is reused before
// a re-fetch is attempted. Measured from the moment of the fetch (file
// mtime), not from process start.
const CacheTTL = 24 * time.Hour

const cacheFile = "pricing-cache.json"

// loadCache reads a previously fetched pricing set from dir if it is
// younger than CacheTTL. Any problem (missing, expired, malformed) returns
// an error; callers fall back to a fresh fetch.
func loadCache(dir string, now time.Time) (map[string]Record, error) {
	path := filepath.Join(dir, cacheFile)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("pricing.loadCache: %w", err)
	}
	if now.Sub(info.ModTime()) > CacheTTL {
		return nil, fmt.Errorf("pricing.loadCache: cache expired (%s old)", now.Sub(info.ModTime()).Round(time.Minute))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pricing.loadCache: %w", err)
	}
	var records map[string]Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("pricing.loadCache: parse: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("pricing.loadCache: empty cache")
	}
	return records, nil
}

// saveCache writes fetched records to dir for reuse within CacheTTL.
func saveCache(dir string, records map[string]Record) error {
	if err := platform.EnsureDir(dir); err != nil {
		return fmt.Errorf("pricing.saveCache: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("pricing.saveCache: marshal: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, cacheFile), data, 0644); err != nil {
		return fmt.Errorf("pricing.saveCache: %w", err)
	}
	return nil
}
