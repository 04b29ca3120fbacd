// Package tui provides a terminal user interface executor for
// interactive browsing sessions.
//
// The TUI codebase is split into multiple files:
// - executor.go: executor implementation and program lifecycle
// - model.go: core model structure and state
// - update.go: Bubble Tea Update function and message handling
// - view.go: Bubble Tea View function and rendering
// - styles.go: color scheme and styling
// - highlight.go: syntax highlighting for page scripts
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stenoip/ringzauber/pkg/assistant"
	"github.com/stenoip/ringzauber/pkg/dispatch"
	"github.com/stenoip/ringzauber/pkg/session"
)

// Executor is a TUI-based executor that provides an interactive
// conversational interface for the browser.
type Executor struct {
	coordinator *assistant.Coordinator
	dispatcher  *dispatch.Dispatcher
	state       *session.State
	header      string
	program     *tea.Program
}

// NewExecutor creates a new TUI executor over a pre-wired pipeline.
func NewExecutor(coordinator *assistant.Coordinator, dispatcher *dispatch.Dispatcher, state *session.State, header string) *Executor {
	return &Executor{
		coordinator: coordinator,
		dispatcher:  dispatcher,
		state:       state,
		header:      header,
	}
}

// Run starts the TUI and blocks until the user exits or a command
// ends the session.
func (e *Executor) Run(ctx context.Context) error {
	m := initialModel()
	m.coordinator = e.coordinator
	m.dispatcher = e.dispatcher
	m.state = e.state
	m.header = e.header

	e.program = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	// Forward coordinator events into the Bubble Tea loop
	go func() {
		for ev := range e.coordinator.Events() {
			e.program.Send(assistantEventMsg{event: ev})
		}
		e.program.Send(assistantClosedMsg{})
	}()

	if _, err := e.program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
