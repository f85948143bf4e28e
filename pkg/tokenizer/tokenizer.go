// Package tokenizer provides the process-wide token counter shared by the
// chunker and the conversation budget logic. A single fixed encoding is used
// everywhere so token counts are comparable across components.
package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// EncodingName is the fixed byte-pair encoding used process-wide.
const EncodingName = "cl100k_base"

// Tokenizer counts and slices text by tokens. Implementations must be pure
// and safe for concurrent use.
type Tokenizer interface {
	// Count returns the number of tokens in text.
	Count(text string) int
	// Encode returns the token ids for text.
	Encode(text string) []int
	// Decode reconstructs text from token ids.
	Decode(ids []int) string
}

// Tiktoken is the production Tokenizer backed by the tiktoken BPE tables.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

// NewTiktoken loads the fixed encoding. Loading may fetch and cache the BPE
// table on first use.
func NewTiktoken() (*Tiktoken, error) {
	enc, err := tiktoken.GetEncoding(EncodingName)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: load encoding %s: %w", EncodingName, err)
	}
	return &Tiktoken{enc: enc}, nil
}

func (t *Tiktoken) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

func (t *Tiktoken) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

func (t *Tiktoken) Decode(ids []int) string {
	return t.enc.Decode(ids)
}

var (
	defaultOnce sync.Once
	defaultTok  *Tiktoken
	defaultErr  error
)

// Default returns the shared process-wide tokenizer, loading the encoding on
// first call. All callers see the same instance.
func Default() (*Tiktoken, error) {
	defaultOnce.Do(func() {
		defaultTok, defaultErr = NewTiktoken()
	})
	return defaultTok, defaultErr
}
