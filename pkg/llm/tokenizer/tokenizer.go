// Package tokenizer provides token counting and truncation for prompt
// budgeting. Translator calls that carry page content must stay within
// the model's input limits; this package answers "how big is this
// prompt" without a network round trip.
package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// fallbackEncoding is used when a model has no registered encoding.
const fallbackEncoding = "cl100k_base"

// Tokenizer counts and truncates text in model tokens.
type Tokenizer struct {
	encoding *tiktoken.Tiktoken
}

// New creates a tokenizer using the fallback encoding.
func New() (*Tokenizer, error) {
	return NewForModel("")
}

// NewForModel creates a tokenizer for the given model name, falling back
// to the generic encoding when the model is unknown or empty.
func NewForModel(model string) (*Tokenizer, error) {
	if model != "" {
		if enc, err := tiktoken.EncodingForModel(model); err == nil {
			return &Tokenizer{encoding: enc}, nil
		}
	}
	enc, err := tiktoken.GetEncoding(fallbackEncoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s encoding: %w", fallbackEncoding, err)
	}
	return &Tokenizer{encoding: enc}, nil
}

// CountTokens returns the number of tokens in text.
func (t *Tokenizer) CountTokens(text string) int {
	return len(t.encoding.Encode(text, nil, nil))
}

// Truncate returns text cut down to at most maxTokens tokens. Text
// already within the budget is returned unchanged.
func (t *Tokenizer) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	tokens := t.encoding.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}
	return t.encoding.Decode(tokens[:maxTokens])
}
