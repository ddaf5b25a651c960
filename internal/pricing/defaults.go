package pricing

// defaultRecords is the built-in rate table, USD per million tokens.
// Used as-is when the remote refresh is unavailable; fetched entries
// overlay these by canonical key.
var defaultRecords = map[string]Record{
	// OpenAI
	"gpt-4o":        {DisplayName: "GPT-4o", Provider: "openai", InputPerMTok: 2.50, OutputPerMTok: 10.00, ContextWindow: 128_000, Tokenizer: "cl100k_base"},
	"gpt-4o-mini":   {DisplayName: "GPT-4o mini", Provider: "openai", InputPerMTok: 0.15, OutputPerMTok: 0.60, ContextWindow: 128_000, Tokenizer: "cl100k_base"},
	"gpt-4-turbo":   {DisplayName: "GPT-4 Turbo", Provider: "openai", InputPerMTok: 10.00, OutputPerMTok: 30.00, ContextWindow: 128_000, Tokenizer: "cl100k_base"},
	"gpt-4":         {DisplayName: "GPT-4", Provider: "openai", InputPerMTok: 30.00, OutputPerMTok: 60.00, ContextWindow: 8_192, Tokenizer: "cl100k_base"},
	"gpt-3.5-turbo": {DisplayName: "GPT-3.5 Turbo", Provider: "openai", InputPerMTok: 0.50, OutputPerMTok: 1.50, ContextWindow: 16_385, Tokenizer: "cl100k_base"},
	"o1":            {DisplayName: "o1", Provider: "openai", InputPerMTok: 15.00, OutputPerMTok: 60.00, ContextWindow: 200_000, Tokenizer: "cl100k_base"},
	"o1-mini":       {DisplayName: "o1-mini", Provider: "openai", InputPerMTok: 1.10, OutputPerMTok: 4.40, ContextWindow: 128_000, Tokenizer: "cl100k_base"},

	// Anthropic
	"claude-opus-4":     {DisplayName: "Claude Opus 4", Provider: "anthropic", InputPerMTok: 15.00, OutputPerMTok: 75.00, ContextWindow: 200_000},
	"claude-sonnet-4":   {DisplayName: "Claude Sonnet 4", Provider: "anthropic", InputPerMTok: 3.00, OutputPerMTok: 15.00, ContextWindow: 200_000},
	"claude-3-5-haiku":  {DisplayName: "Claude 3.5 Haiku", Provider: "anthropic", InputPerMTok: 0.80, OutputPerMTok: 4.00, ContextWindow: 200_000},
	"claude-3-haiku":    {DisplayName: "Claude 3 Haiku", Provider: "anthropic", InputPerMTok: 0.25, OutputPerMTok: 1.25, ContextWindow: 200_000},

	// Google
	"gemini-1.5-pro":   {DisplayName: "Gemini 1.5 Pro", Provider: "google", InputPerMTok: 1.25, OutputPerMTok: 5.00, ContextWindow: 2_097_152},
	"gemini-1.5-flash": {DisplayName: "Gemini 1.5 Flash", Provider: "google", InputPerMTok: 0.075, OutputPerMTok: 0.30, ContextWindow: 1_048_576},
	"gemini-2.0-flash": {DisplayName: "Gemini 2.0 Flash", Provider: "google", InputPerMTok: 0.10, OutputPerMTok: 0.40, ContextWindow: 1_048_576},
}

// defaultAliases maps common shorthand spellings to canonical keys.
// Every target must exist in defaultRecords.
var defaultAliases = map[string]string{
	"4o":            "gpt-4o",
	"gpt4o":         "gpt-4o",
	"4o-mini":       "gpt-4o-mini",
	"gpt4o-mini":    "gpt-4o-mini",
	"gpt4":          "gpt-4",
	"gpt-3.5":       "gpt-3.5-turbo",
	"gpt35":         "gpt-3.5-turbo",
	"opus":          "claude-opus-4",
	"claude-opus":   "claude-opus-4",
	"sonnet":        "claude-sonnet-4",
	"claude-sonnet": "claude-sonnet-4",
	"haiku":         "claude-3-5-haiku",
	"claude-haiku":  "claude-3-5-haiku",
	"gemini-pro":    "gemini-1.5-pro",
	"gemini-flash":  "gemini-2.0-flash",
}
