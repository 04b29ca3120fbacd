package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/stenoip/ringzauber/pkg/assistant"
	"github.com/stenoip/ringzauber/pkg/dispatch"
	"github.com/stenoip/ringzauber/pkg/session"
)

// model represents the state of the TUI application.
type model struct {
	// Bubble Tea components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// Pipeline integration
	coordinator *assistant.Coordinator
	dispatcher  *dispatch.Dispatcher
	state       *session.State

	// Customization
	header string

	// Content buffer for the conversation log
	content *strings.Builder

	// UI state
	isThinking bool

	// Window dimensions
	width  int
	height int
	ready  bool

	// Application state
	shouldQuit bool
}

// assistantEventMsg wraps a coordinator event for the update loop.
type assistantEventMsg struct {
	event *assistant.Event
}

// assistantClosedMsg signals the coordinator's event stream ended.
type assistantClosedMsg struct{}

func initialModel() model {
	ta := textarea.New()
	ta.Placeholder = "Tell Praterich what to do..."
	ta.Prompt = "> "
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = thinkingStyle

	return model{
		textarea: ta,
		spinner:  sp,
		content:  &strings.Builder{},
	}
}

// appendLine adds one styled line to the conversation log.
func (m *model) appendLine(line string) {
	m.content.WriteString(line)
	m.content.WriteString("\n")
	if m.ready {
		m.viewport.SetContent(m.content.String())
		m.viewport.GotoBottom()
	}
}

// clearLog resets the conversation log, for NEW_CHAT.
func (m *model) clearLog() {
	m.content.Reset()
	if m.ready {
		m.viewport.SetContent("")
	}
}
