// Package pricing holds the model pricing catalog: a default rate table,
// alias resolution, and a best-effort refresh from the community-maintained
// LiteLLM pricing document with a 24h disk cache.
package pricing

// Record holds the published rates for one model.
// Immutable once placed in a Catalog; always passed by value.
type Record struct {
	DisplayName   string  `json:"display_name"`
	Provider      string  `json:"provider"`
	InputPerMTok  float64 `json:"input_per_mtok"`  // USD per million input tokens
	OutputPerMTok float64 `json:"output_per_mtok"` // USD per million output tokens
	ContextWindow int     `json:"context_window"`  // tokens
	Tokenizer     string  `json:"tokenizer,omitempty"`
}

// Source identifies where the active catalog came from, so callers and
// tests can tell the degraded path apart from a fresh fetch.
type Source int

const (
	SourceDefaults  Source = iota // built-in table only
	SourceDiskCache               // reused a fetch younger than the cache TTL
	SourceFetched                 // fetched from the remote document this run
)

// String returns a human-readable label for the source.
func (s Source) String() string {
	switch s {
	case SourceDiskCache:
		return "disk cache"
	case SourceFetched:
		return "fetched"
	default:
		return "built-in defaults"
	}
}
