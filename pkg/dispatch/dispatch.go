// Package dispatch maps validated intents to side effects against the
// session state and the tab primitives.
//
// Each vocabulary member has exactly one handler. The handler table is
// checked against the vocabulary at construction: a command without a
// handler, or a handler for an unknown command, fails Dispatcher
// construction rather than silently no-opping at runtime.
package dispatch

import (
	"context"
	"fmt"

	"github.com/stenoip/ringzauber/pkg/intent"
	"github.com/stenoip/ringzauber/pkg/logging"
	"github.com/stenoip/ringzauber/pkg/session"
)

// PlainTranslator is the plain-text request mode the crawl and
// process-text branches chain into.
type PlainTranslator interface {
	Plain(ctx context.Context, prompt string) (string, error)
}

// Handler executes one command. Handlers convert their own failures
// into displayable outcomes; they never return errors.
type Handler func(ctx context.Context, req *Request) *Outcome

// Request carries everything a handler may touch.
type Request struct {
	// Intent is the validated intent being dispatched.
	Intent *intent.Intent

	// State is the session state the handler mutates.
	State *session.State

	// Translator is the plain-mode translator for chained calls.
	Translator PlainTranslator

	// PDFDir is where PRINT_TO_PDF writes documents.
	PDFDir string
}

// Deps configures a Dispatcher.
type Deps struct {
	State      *session.State
	Translator PlainTranslator
	Logger     *logging.Logger
	PDFDir     string
}

// Dispatcher owns the command-to-handler table.
type Dispatcher struct {
	deps     Deps
	handlers map[intent.Command]Handler
}

// New builds a Dispatcher and verifies handler coverage: every
// vocabulary member must have a handler and every handler must belong
// to the vocabulary.
func New(deps Deps) (*Dispatcher, error) {
	if deps.State == nil {
		return nil, fmt.Errorf("dispatcher requires session state")
	}
	if deps.Translator == nil {
		return nil, fmt.Errorf("dispatcher requires a plain-mode translator")
	}

	d := &Dispatcher{
		deps:     deps,
		handlers: buildHandlers(),
	}

	for _, cmd := range intent.Commands() {
		if _, ok := d.handlers[cmd]; !ok {
			return nil, fmt.Errorf("command %s has no handler", cmd)
		}
	}
	for cmd := range d.handlers {
		if !cmd.Valid() {
			return nil, fmt.Errorf("handler registered for unknown command %s", cmd)
		}
	}

	return d, nil
}

// buildHandlers assembles the full handler table. Handlers live in the
// per-concern files of this package.
func buildHandlers() map[intent.Command]Handler {
	table := make(map[intent.Command]Handler)
	registerNavigationHandlers(table)
	registerTabHandlers(table)
	registerPageHandlers(table)
	registerChromeHandlers(table)
	registerConversationHandlers(table)
	registerPlaceholderHandlers(table)
	return table
}

// Dispatch executes the intent and always returns a displayable
// outcome. Nothing a handler does may terminate the session; panics are
// recovered into an apology.
func (d *Dispatcher) Dispatch(ctx context.Context, in *intent.Intent) (out *Outcome) {
	defer func() {
		if r := recover(); r != nil {
			if d.deps.Logger != nil {
				d.deps.Logger.Errorf("handler for %s panicked: %v", in.Command, r)
			}
			out = Apology("I'm terribly sorry, something went wrong while carrying that out.")
		}
	}()

	handler, ok := d.handlers[in.Command]
	if !ok {
		// Unreachable for parsed intents; construction verified coverage.
		return Apology(fmt.Sprintf("I'm afraid I do not recognise the command %s.", in.Command))
	}

	req := &Request{
		Intent:     in,
		State:      d.deps.State,
		Translator: d.deps.Translator,
		PDFDir:     d.deps.PDFDir,
	}
	out = handler(ctx, req)

	if d.deps.Logger != nil {
		d.deps.Logger.Infof("dispatched %s effect=%q session_ended=%v", in.Command, out.Effect, out.SessionEnded)
	}
	return out
}
