package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stenoip/ringzauber/pkg/assistant"
)

// clipboardReadAll is a package-level variable to allow mocking in tests.
var clipboardReadAll = clipboard.ReadAll

func (m model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 3
		footerHeight := 4
		if !m.ready {
			m.viewport = newViewport(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content.String())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.textarea.SetWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.shouldQuit = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submitInput()
		}

	case assistantEventMsg:
		return m.handleAssistantEvent(msg.event)

	case assistantClosedMsg:
		m.shouldQuit = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	if m.isThinking {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submitInput sends the typed line to the assistant. The /ask prefix
// pulls the system clipboard into the question, so text copied from
// any page can be asked about directly.
func (m model) submitInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.textarea.Value())
	if text == "" || m.isThinking {
		return m, nil
	}
	m.textarea.Reset()

	if question, ok := strings.CutPrefix(text, "/ask "); ok {
		clip, err := clipboardReadAll()
		if err != nil || strings.TrimSpace(clip) == "" {
			m.appendLine(errorStyle.Render("There is nothing on the clipboard to ask about."))
			return m, nil
		}
		text = fmt.Sprintf("Regarding the following text: %q, please answer this query: %q", clip, question)
	}

	m.appendLine(userStyle.Render("you> ") + text)

	if _, err := m.coordinator.Submit(text); err != nil {
		m.appendLine(errorStyle.Render(fmt.Sprintf("Could not reach the assistant: %v", err)))
	}
	return m, nil
}

// handleAssistantEvent reacts to one step of a submission's lifecycle.
func (m model) handleAssistantEvent(ev *assistant.Event) (tea.Model, tea.Cmd) {
	switch ev.Type {
	case assistant.EventThinkingStart:
		m.isThinking = true
		return m, m.spinner.Tick

	case assistant.EventThinkingEnd:
		m.isThinking = false
		return m, nil

	case assistant.EventIntent:
		outcome := m.dispatcher.Dispatch(context.Background(), ev.Intent)

		if outcome.ClearChat {
			m.clearLog()
		}
		m.appendLine(assistantStyle.Render("praterich> ") + outcome.Message)
		if outcome.Effect != "" {
			m.appendLine(effectStyle.Render(fmt.Sprintf("  [%s]", outcome.Effect)))
		}
		if outcome.Script != "" {
			m.appendLine(highlightScript(outcome.Script))
		}
		if outcome.Display != nil {
			m.appendLine(tipsStyle.Render(fmt.Sprintf("  asked: %s", outcome.Display.UserQuery)))
		}
		if outcome.SessionEnded {
			m.shouldQuit = true
			return m, tea.Quit
		}
	}
	return m, nil
}
