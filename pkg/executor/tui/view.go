package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return vp
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var b strings.Builder

	header := m.header
	if header == "" {
		header = "Ringzauber"
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(tipsStyle.Render("Type a request. /ask <question> asks about the clipboard. Esc quits."))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.isThinking {
		b.WriteString(thinkingStyle.Render(m.spinner.View() + " Praterich is thinking..."))
	} else {
		b.WriteString(m.statusBar())
	}
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(m.textarea.View()))

	return b.String()
}

// statusBar summarizes the session below the log.
func (m model) statusBar() string {
	tabCount := m.state.TabCount()
	status := fmt.Sprintf("%d tab(s)", tabCount)
	if tab, err := m.state.ActiveTab(); err == nil {
		status = fmt.Sprintf("%s | tab %d: %s", status, m.state.ActiveIndex()+1, tab.Address)
	}
	return statusBarStyle.Render(status)
}
