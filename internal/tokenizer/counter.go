package tokenizer

// Encoder produces token ids for a text. The production implementation
// wraps tiktoken; tests substitute a fake. The counter only ever needs the
// length of the result.
type Encoder interface {
	Encode(text string) []int
}

// Count is the result of counting one text for one model.
type Count struct {
	Tokens     int
	Characters int
	Model      string
	Exact      bool
}

// Counter dispatches token counting by model family.
type Counter struct {
	enc Encoder
}

// NewCounter creates a Counter. A nil encoder is allowed: exact-family
// models then fall back to the character heuristic, so a failed tiktoken
// init degrades the numbers instead of breaking the tool.
func NewCounter(enc Encoder) *Counter {
	return &Counter{enc: enc}
}

// Count returns the token count of text for the given model key.
func (c *Counter) Count(text, modelKey string) Count {
	count := Count{
		Characters: len(text),
		Model:      modelKey,
	}
	if len(text) == 0 {
		return count
	}

	family := Classify(modelKey)
	if family.Exact() && c.enc != nil {
		count.Tokens = len(c.enc.Encode(text))
		count.Exact = true
		return count
	}
	count.Tokens = HeuristicTokens(text)
	return count
}

// HeuristicTokens estimates the token count of a text string.
// Uses the rule of thumb: ~4 characters per token, rounded up.
func HeuristicTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4
}
