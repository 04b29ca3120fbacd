package dispatch

import (
	"github.com/stenoip/ringzauber/pkg/intent"
)

// Outcome is the result of dispatching one intent: the message to show
// the user plus a description of any executed side effect. The Effect
// field exists so tests and surfaces can observe what happened without
// inspecting session internals.
type Outcome struct {
	// Message is always displayable, never empty.
	Message string

	// Effect names the executed side effect, empty for pure-message
	// outcomes.
	Effect string

	// Display carries the landing-page payload for PROMPT_DISPLAY,
	// which bypasses the confirmation message path.
	Display *intent.PromptDisplayPayload

	// Script is the JavaScript source executed by EDIT_PAGE, for
	// surfaces that echo it.
	Script string

	// SessionEnded is true when the command closed the whole session.
	SessionEnded bool

	// ClearChat signals the conversation surface to reset.
	ClearChat bool
}

// Confirm builds a message-plus-effect outcome.
func Confirm(effect, message string) *Outcome {
	return &Outcome{Effect: effect, Message: message}
}

// Say builds a message-only outcome with no side effect.
func Say(message string) *Outcome {
	return &Outcome{Message: message}
}

// Apology builds a failure outcome. The effect stays empty: nothing
// was executed.
func Apology(message string) *Outcome {
	return &Outcome{Message: message}
}

// noActiveTab is the uniform no-op outcome for commands that need an
// open tab when none exists.
func noActiveTab() *Outcome {
	return Say("I'm afraid there is no open tab to do that with at the moment.")
}
