package headless

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/stenoip/ringzauber/pkg/assistant"
	"github.com/stenoip/ringzauber/pkg/dispatch"
	"github.com/stenoip/ringzauber/pkg/intent"
	"github.com/stenoip/ringzauber/pkg/session"
	"github.com/stenoip/ringzauber/pkg/voice"
)

// Executor runs a scripted conversation against a live session.
type Executor struct {
	coordinator *assistant.Coordinator
	dispatcher  *dispatch.Dispatcher
	state       *session.State
	config      *Config

	transcript []string
	out        io.Writer
}

// NewExecutor creates a headless executor over a pre-wired pipeline.
func NewExecutor(coordinator *assistant.Coordinator, dispatcher *dispatch.Dispatcher, state *session.State, config *Config) (*Executor, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if coordinator == nil || dispatcher == nil || state == nil {
		return nil, fmt.Errorf("coordinator, dispatcher, and state are required")
	}

	return &Executor{
		coordinator: coordinator,
		dispatcher:  dispatcher,
		state:       state,
		config:      config,
		out:         os.Stdout,
	}, nil
}

// SetOutput redirects live transcript output, for tests.
func (e *Executor) SetOutput(w io.Writer) {
	e.out = w
}

// Run processes every scripted input in order. A command that ends the
// session stops the run early when the config says so.
func (e *Executor) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	for _, page := range e.config.StartupPages {
		if _, err := e.state.OpenTab(page); err != nil {
			return fmt.Errorf("failed to open startup page %s: %w", page, err)
		}
	}

	for _, input := range e.config.Inputs {
		ended, err := e.step(ctx, input)
		if err != nil {
			return err
		}
		if ended {
			if e.config.StopOnSessionEnd {
				return e.writeTranscript()
			}
			return fmt.Errorf("session ended with inputs remaining")
		}
	}

	if err := e.runVoiceInputs(ctx); err != nil {
		return err
	}

	return e.writeTranscript()
}

// runVoiceInputs replays the scripted spoken utterances through the
// voice capture path. A failed capture records its notice and moves on,
// matching how the interactive surface handles a missed utterance.
func (e *Executor) runVoiceInputs(ctx context.Context) error {
	if len(e.config.VoiceInputs) == 0 {
		return nil
	}

	rec := voice.NewStaticRecognizer(e.config.VoiceInputs...)
	for range e.config.VoiceInputs {
		res := voice.Capture(ctx, rec)
		if !res.Ok {
			e.record("praterich", res.Notice)
			continue
		}
		ended, err := e.step(ctx, res.Text)
		if err != nil {
			return err
		}
		if ended {
			if e.config.StopOnSessionEnd {
				return nil
			}
			return fmt.Errorf("session ended with inputs remaining")
		}
	}
	return nil
}

// step submits one utterance and dispatches the resulting intent.
func (e *Executor) step(ctx context.Context, input string) (bool, error) {
	e.record("you", input)

	id, err := e.coordinator.Submit(input)
	if err != nil {
		return false, fmt.Errorf("failed to submit input: %w", err)
	}

	in, err := e.waitForIntent(ctx, id)
	if err != nil {
		return false, err
	}

	outcome := e.dispatcher.Dispatch(ctx, in)
	e.record("praterich", outcome.Message)
	return outcome.SessionEnded, nil
}

// waitForIntent drains coordinator events until this request's intent
// arrives. Headless runs are strictly sequential, so there is never a
// competing submission.
func (e *Executor) waitForIntent(ctx context.Context, id string) (*intent.Intent, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("run timed out waiting for the assistant: %w", ctx.Err())
		case ev, ok := <-e.coordinator.Events():
			if !ok {
				return nil, fmt.Errorf("assistant closed mid-run")
			}
			if ev.Type == assistant.EventIntent && ev.RequestID == id {
				return ev.Intent, nil
			}
		}
	}
}

func (e *Executor) record(speaker, text string) {
	line := fmt.Sprintf("[%s] %s> %s", time.Now().Format("15:04:05"), speaker, text)
	e.transcript = append(e.transcript, line)
	fmt.Fprintln(e.out, line)
}

func (e *Executor) writeTranscript() error {
	if e.config.TranscriptPath == "" {
		return nil
	}
	content := strings.Join(e.transcript, "\n") + "\n"
	if err := os.WriteFile(e.config.TranscriptPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}
