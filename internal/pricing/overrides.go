package pricing

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const overridesFile = "pricing.yaml"

// overrideEntry is one user-supplied rate override in pricing.yaml.
// Only non-zero fields replace the catalog values.
type overrideEntry struct {
	DisplayName   string  `yaml:"display_name"`
	Provider      string  `yaml:"provider"`
	InputPerMTok  float64 `yaml:"input_per_mtok"`
	OutputPerMTok float64 `yaml:"output_per_mtok"`
	ContextWindow int     `yaml:"context_window"`
}

// loadOverrides reads user rate overrides from pricing.yaml in dir.
// A missing file is not an error; a malformed one is, so the caller can
// log and continue without it.
func loadOverrides(dir string) (map[string]overrideEntry, error) {
	data, err := os.ReadFile(filepath.Join(dir, overridesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("pricing.loadOverrides: %w", err)
	}
	var entries map[string]overrideEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("pricing.loadOverrides: parse: %w", err)
	}
	return entries, nil
}

// mergeOverride applies one user override on top of a base record.
// Overrides for keys the catalog has never seen get a zero base, so users
// can price self-hosted or preview models from scratch.
func mergeOverride(key string, base Record, o overrideEntry) Record {
	rec := base
	if o.DisplayName != "" {
		rec.DisplayName = o.DisplayName
	}
	if rec.DisplayName == "" {
		rec.DisplayName = key
	}
	if o.Provider != "" {
		rec.Provider = o.Provider
	}
	if o.InputPerMTok > 0 {
		rec.InputPerMTok = o.InputPerMTok
	}
	if o.OutputPerMTok > 0 {
		rec.OutputPerMTok = o.OutputPerMTok
	}
	if o.ContextWindow > 0 {
		rec.ContextWindow = o.ContextWindow
	}
	if rec.ContextWindow <= 0 {
		rec.ContextWindow = 128_000
	}
	return rec
}
