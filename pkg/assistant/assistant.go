// Package assistant coordinates the conversational flow between a user
// surface and the translator. It owns the asynchrony: surfaces submit
// raw text and consume a stream of events, never touching the provider
// directly.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stenoip/ringzauber/pkg/intent"
	"github.com/stenoip/ringzauber/pkg/logging"
)

// EventType defines the type of event emitted by the coordinator.
type EventType string

const (
	EventThinkingStart EventType = "thinking_start" // EventThinkingStart indicates a submission is being translated.
	EventThinkingEnd   EventType = "thinking_end"   // EventThinkingEnd indicates the submission finished, successfully or not.
	EventIntent        EventType = "intent"         // EventIntent carries the translated intent, degraded on failure.
)

// Event is one step in the lifecycle of a submission. Every submission
// produces a paired thinking start and end; an intent event arrives in
// between unless a newer submission superseded this one.
type Event struct {
	// Type indicates the kind of event.
	Type EventType

	// RequestID ties the event back to the Submit call that caused it.
	RequestID string

	// Intent is set on intent events only.
	Intent *intent.Intent
}

// Translator produces the raw structured-mode completion for user
// text. The coordinator owns decoding it into an intent.
type Translator interface {
	Structured(ctx context.Context, userText string) (string, error)
}

// DefaultTimeout bounds how long a single translation may take.
const DefaultTimeout = 30 * time.Second

const defaultBufferSize = 16

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("assistant: coordinator is closed")

// Coordinator serializes submissions against a Translator. Submissions
// are processed asynchronously; a new submission cancels the one still
// in flight, so at most one intent event is pending at any time.
type Coordinator struct {
	translator Translator
	logger     *logging.Logger
	timeout    time.Duration

	events chan *Event
	done   chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// Option is a function that configures a coordinator.
type Option func(*Coordinator)

// WithTimeout overrides the per-submission translation timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for translation failures.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// New creates a coordinator around the given translator.
func New(translator Translator, opts ...Option) (*Coordinator, error) {
	if translator == nil {
		return nil, fmt.Errorf("assistant: translator is required")
	}

	c := &Coordinator{
		translator: translator,
		timeout:    DefaultTimeout,
		events:     make(chan *Event, defaultBufferSize),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		logger, err := logging.NewLogger("assistant")
		if err != nil {
			logger.Warnf("Failed to initialize assistant logger, using stderr fallback: %v", err)
		}
		c.logger = logger
	}
	return c, nil
}

// Events returns the stream of lifecycle events. The channel is closed
// by Close once all in-flight submissions have drained.
func (c *Coordinator) Events() <-chan *Event {
	return c.events
}

// Submit queues user text for translation and returns the request ID
// its events will carry. A submission still in flight is canceled:
// the newest submission always wins.
func (c *Coordinator) Submit(text string) (string, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", ErrClosed
	}
	if c.cancel != nil {
		c.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	id := uuid.New().String()
	c.wg.Add(1)
	c.mu.Unlock()

	go c.process(ctx, id, text)
	return id, nil
}

func (c *Coordinator) process(ctx context.Context, id, text string) {
	defer c.wg.Done()

	c.emit(&Event{Type: EventThinkingStart, RequestID: id})
	defer c.emit(&Event{Type: EventThinkingEnd, RequestID: id})

	tctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var in *intent.Intent
	raw, err := c.translator.Structured(tctx, text)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			// Superseded by a newer submission; say nothing.
			return
		}
		c.logger.Warnf("translation failed for request %s: %v", id, err)
		in = intent.Degraded(fmt.Sprintf("I'm sorry, an error occurred: %v", err))
	} else if in, err = intent.Parse(raw); err != nil {
		c.logger.Warnf("unusable completion for request %s: %v", id, err)
		in = intent.Degraded("I'm sorry, I could not make sense of that. Could you rephrase it?")
	}

	c.emit(&Event{Type: EventIntent, RequestID: id, Intent: in})
}

func (c *Coordinator) emit(ev *Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

// Close cancels any in-flight submission, waits for it to drain, and
// closes the event stream.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	close(c.done)
	c.wg.Wait()
	close(c.events)
}
