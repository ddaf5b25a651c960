// Package tokenizer counts tokens per model family: exactly for OpenAI
// models via tiktoken, heuristically (~4 characters per token) for the rest.
package tokenizer

import "strings"

// Family is the vendor tokenizer family a model key classifies into.
type Family int

const (
	FamilyOpenAI    Family = iota // exact count via tiktoken
	FamilyAnthropic               // character heuristic
	FamilyGoogle                  // character heuristic
)

// String returns a human-readable label for the family.
func (f Family) String() string {
	switch f {
	case FamilyAnthropic:
		return "anthropic"
	case FamilyGoogle:
		return "google"
	default:
		return "openai"
	}
}

// Exact reports whether counts for this family come from a real tokenizer
// rather than the character heuristic. User-visible: exact counts are shown
// without the "~" approximation marker.
func (f Family) Exact() bool {
	return f == FamilyOpenAI
}

// openaiMarkers are checked first; the check order below is load-bearing
// because it decides which counts are exact vs approximate.
var openaiMarkers = []string{"gpt", "o1", "o3", "chatgpt"}

// Classify maps a model key to its tokenizer family by substring match on
// the lowercased key. Order: OpenAI markers, then "claude", then "gemini".
// Unrecognized keys default to the OpenAI tokenizer.
func Classify(modelKey string) Family {
	key := strings.ToLower(modelKey)
	for _, marker := range openaiMarkers {
		if strings.Contains(key, marker) {
			return FamilyOpenAI
		}
	}
	if strings.Contains(key, "claude") {
		return FamilyAnthropic
	}
	if strings.Contains(key, "gemini") {
		return FamilyGoogle
	}
	return FamilyOpenAI
}
