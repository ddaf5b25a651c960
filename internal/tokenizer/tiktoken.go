package tokenizer

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// TiktokenEncoder is the production Encoder, backed by the cl100k_base
// encoding used by the GPT-4 family.
type TiktokenEncoder struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenEncoder loads the cl100k_base encoding. The encoding data is
// bundled with the library, so this normally cannot fail; callers should
// still handle the error by passing a nil Encoder to NewCounter.
func NewTiktokenEncoder() (*TiktokenEncoder, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("tokenizer.NewTiktokenEncoder: %w", err)
	}
	return &TiktokenEncoder{enc: enc}, nil
}

// Encode returns the token ids for text.
func (t *TiktokenEncoder) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}
