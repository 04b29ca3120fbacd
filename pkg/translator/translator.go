// Package translator wraps a model provider with the two request modes
// the assistant core consumes: structured mode, whose completions are
// expected to decode as the three-key intent envelope, and plain mode,
// whose completions are free display text.
//
// The vocabulary contract transmitted in structured mode is generated
// from the intent package's spec table, so the advertised contract and
// the dispatcher's executable contract share one source of truth.
package translator

import (
	"context"
	"fmt"

	"github.com/stenoip/ringzauber/pkg/intent"
	"github.com/stenoip/ringzauber/pkg/llm"
	"github.com/stenoip/ringzauber/pkg/llm/tokenizer"
	"github.com/stenoip/ringzauber/pkg/types"
)

// DefaultPromptBudget bounds plain-mode prompts in tokens. Crawl
// summaries can carry large page extracts; anything over the budget is
// truncated before sending.
const DefaultPromptBudget = 6000

// Translator issues structured and plain requests against a provider.
type Translator struct {
	provider     llm.Provider
	tokenizer    *tokenizer.Tokenizer
	promptBudget int
}

// Option configures a Translator.
type Option func(*Translator)

// WithPromptBudget overrides the plain-mode token budget.
func WithPromptBudget(tokens int) Option {
	return func(t *Translator) {
		if tokens > 0 {
			t.promptBudget = tokens
		}
	}
}

// New creates a Translator over the given provider.
func New(provider llm.Provider, opts ...Option) (*Translator, error) {
	tok, err := tokenizer.NewForModel(provider.GetModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}

	t := &Translator{
		provider:     provider,
		tokenizer:    tok,
		promptBudget: DefaultPromptBudget,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Structured sends user text under the generated instruction document
// and returns the raw completion text. Decoding the completion into an
// Intent is the caller's concern; transport failures are returned as
// wrapped errors and nothing else leaks past this boundary.
func (t *Translator) Structured(ctx context.Context, userText string) (string, error) {
	msg, err := t.provider.Complete(ctx, []*types.Message{
		types.NewSystemMessage(intent.Instruction()),
		types.NewUserMessage(userText),
	})
	if err != nil {
		return "", fmt.Errorf("structured translation failed: %w", err)
	}
	return msg.Content, nil
}

// Plain sends a prompt under the plain persona instruction and returns
// free display text. The prompt is token-truncated to the configured
// budget first.
func (t *Translator) Plain(ctx context.Context, prompt string) (string, error) {
	bounded := t.tokenizer.Truncate(prompt, t.promptBudget)

	msg, err := t.provider.Complete(ctx, []*types.Message{
		types.NewSystemMessage(intent.PlainInstruction),
		types.NewUserMessage(bounded),
	})
	if err != nil {
		return "", fmt.Errorf("plain translation failed: %w", err)
	}
	return msg.Content, nil
}

// PromptTokens reports the token count of a prompt after budgeting,
// used by callers that log request sizes.
func (t *Translator) PromptTokens(prompt string) int {
	return t.tokenizer.CountTokens(t.tokenizer.Truncate(prompt, t.promptBudget))
}
