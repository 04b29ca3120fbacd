// Package voice turns spoken input into text for the assistant. The
// actual speech backend lives behind the Recognizer interface; this
// package owns timeouts and the fallback wording.
package voice

import (
	"context"
	"errors"
	"strings"
	"time"
)

// DefaultListenTimeout bounds how long Capture waits for speech.
const DefaultListenTimeout = 5 * time.Second

// couldNotUnderstand is shown when recognition fails or times out.
const couldNotUnderstand = "Sorry, I could not understand the audio."

// Recognizer converts one utterance into text.
type Recognizer interface {
	// Listen blocks until an utterance is recognized or ctx is done.
	Listen(ctx context.Context) (string, error)
}

// Result is the outcome of one capture attempt.
type Result struct {
	// Text is the recognized utterance, empty when Ok is false.
	Text string

	// Ok reports whether recognition succeeded.
	Ok bool

	// Notice is a displayable message when recognition failed.
	Notice string
}

// Capture listens for one utterance with the default timeout. Failures
// and timeouts degrade to a displayable notice, never an error the
// surface has to interpret.
func Capture(ctx context.Context, rec Recognizer) Result {
	return CaptureWithTimeout(ctx, rec, DefaultListenTimeout)
}

// CaptureWithTimeout is Capture with an explicit listen window.
func CaptureWithTimeout(ctx context.Context, rec Recognizer, timeout time.Duration) Result {
	if rec == nil {
		return Result{Notice: "Voice input is not available on this system."}
	}
	if timeout <= 0 {
		timeout = DefaultListenTimeout
	}

	lctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := rec.Listen(lctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{Notice: "I did not hear anything, I'm afraid."}
		}
		return Result{Notice: couldNotUnderstand}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Notice: couldNotUnderstand}
	}
	return Result{Text: text, Ok: true}
}

// StaticRecognizer serves a fixed sequence of utterances, for headless
// runs and tests.
type StaticRecognizer struct {
	utterances []string
	next       int
}

// NewStaticRecognizer creates a recognizer that replays the given
// utterances in order.
func NewStaticRecognizer(utterances ...string) *StaticRecognizer {
	return &StaticRecognizer{utterances: utterances}
}

// Listen returns the next scripted utterance.
func (r *StaticRecognizer) Listen(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.next >= len(r.utterances) {
		return "", errors.New("no more scripted utterances")
	}
	text := r.utterances[r.next]
	r.next++
	return text, nil
}
