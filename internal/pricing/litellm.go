package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// LiteLLMURL is the community-maintained pricing document this catalog
// refreshes from. Costs there are per token, not per million.
const LiteLLMURL = "https://raw.githubusercontent.com/BerriAI/litellm/main/model_prices_and_context_window.json"

// litellmEntry is the subset of fields promptcost reads per model.
type litellmEntry struct {
	InputCostPerToken  *float64 `json:"input_cost_per_token"`
	OutputCostPerToken *float64 `json:"output_cost_per_token"`
	MaxInputTokens     int      `json:"max_input_tokens"`
	Provider           string   `json:"litellm_provider"`
}

// litellmKeys is the allowlist/rename table: LiteLLM document key →
// canonical catalog key. Everything not listed here is ignored, which keeps
// the catalog curated instead of swallowing the document's thousands of
// entries.
var litellmKeys = map[string]string{
	"gpt-4o":                     "gpt-4o",
	"gpt-4o-mini":                "gpt-4o-mini",
	"gpt-4-turbo":                "gpt-4-turbo",
	"gpt-4":                      "gpt-4",
	"gpt-3.5-turbo":              "gpt-3.5-turbo",
	"o1":                         "o1",
	"o1-mini":                    "o1-mini",
	"claude-opus-4-20250514":     "claude-opus-4",
	"claude-sonnet-4-20250514":   "claude-sonnet-4",
	"claude-3-5-haiku-20241022":  "claude-3-5-haiku",
	"claude-3-haiku-20240307":    "claude-3-haiku",
	"gemini/gemini-1.5-pro":      "gemini-1.5-pro",
	"gemini/gemini-1.5-flash":    "gemini-1.5-flash",
	"gemini/gemini-2.0-flash":    "gemini-2.0-flash",
}

// fetchLiteLLM downloads and parses the pricing document, returning records
// for allowlisted keys only. Entries missing either cost field are skipped.
func fetchLiteLLM(ctx context.Context, client *http.Client, url string) (map[string]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("pricing.fetchLiteLLM: request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pricing.fetchLiteLLM: get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pricing.fetchLiteLLM: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pricing.fetchLiteLLM: read body: %w", err)
	}

	var doc map[string]litellmEntry
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("pricing.fetchLiteLLM: parse: %w", err)
	}

	return convertLiteLLM(doc), nil
}

// convertLiteLLM turns allowlisted document entries into catalog records,
// converting per-token costs to per-million.
func convertLiteLLM(doc map[string]litellmEntry) map[string]Record {
	records := make(map[string]Record)
	for docKey, canonical := range litellmKeys {
		entry, ok := doc[docKey]
		if !ok || entry.InputCostPerToken == nil || entry.OutputCostPerToken == nil {
			continue
		}
		rec := Record{
			DisplayName:   canonical,
			Provider:      entry.Provider,
			InputPerMTok:  *entry.InputCostPerToken * 1_000_000,
			OutputPerMTok: *entry.OutputCostPerToken * 1_000_000,
			ContextWindow: entry.MaxInputTokens,
		}
		// Preserve display name, tokenizer hint, and context window from the
		// default table when the document leaves them out.
		if def, ok := defaultRecords[canonical]; ok {
			rec.DisplayName = def.DisplayName
			rec.Tokenizer = def.Tokenizer
			if rec.ContextWindow <= 0 {
				rec.ContextWindow = def.ContextWindow
			}
			if rec.Provider == "" {
				rec.Provider = def.Provider
			}
		}
		if rec.ContextWindow <= 0 {
			continue
		}
		records[canonical] = rec
	}
	return records
}
