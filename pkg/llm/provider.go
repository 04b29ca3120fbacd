// Package llm provides the abstraction for the opaque language model the
// assistant core consumes. The core never calls a model SDK directly;
// everything goes through Provider so translator calls are swappable and
// testable with fakes.
package llm

import (
	"context"

	"github.com/stenoip/ringzauber/pkg/types"
)

// Provider defines the interface for model integrations.
//
// Providers handle API communication with a model service and return
// plain messages. This keeps providers focused on transport concerns
// without coupling them to intent parsing or dispatch: the translator
// layer decides what a completion means.
//
// Providers are fallible and latency-bearing. Callers own the timeout
// discipline via ctx; providers must honor cancellation.
type Provider interface {
	// Complete sends messages to the model and returns the full response.
	//
	// Returns the assistant's response message, or an error when the
	// request cannot be completed (network, quota, malformed response).
	// Errors are returned, never panicked; the caller degrades them into
	// user-facing apologies.
	Complete(ctx context.Context, messages []*types.Message) (*types.Message, error)

	// GetModel returns the model name being used.
	GetModel() string

	// GetModelInfo returns information about the model being used.
	GetModelInfo() *types.ModelInfo
}
