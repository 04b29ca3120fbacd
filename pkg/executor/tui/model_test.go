package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenoip/ringzauber/pkg/assistant"
	"github.com/stenoip/ringzauber/pkg/dispatch"
	"github.com/stenoip/ringzauber/pkg/intent"
	"github.com/stenoip/ringzauber/pkg/session"
)

type stubHandle struct{ address string }

func (h *stubHandle) Navigate(url string) error        { h.address = url; return nil }
func (h *stubHandle) Reload() error                    { return nil }
func (h *stubHandle) Back() error                      { return nil }
func (h *stubHandle) Forward() error                   { return nil }
func (h *stubHandle) SetZoom(float64) error            { return nil }
func (h *stubHandle) RunScript(string) (string, error) { return "", nil }
func (h *stubHandle) FindText(string) (int, error)     { return 0, nil }
func (h *stubHandle) Content() (string, error)         { return "", nil }
func (h *stubHandle) PrintToPDF(string) (int, error)   { return 1, nil }
func (h *stubHandle) Title() (string, error)           { return "", nil }
func (h *stubHandle) URL() string                      { return h.address }
func (h *stubHandle) Close() error                     { return nil }

type stubOpener struct{}

func (stubOpener) OpenTab(url string) (session.TabHandle, error) {
	return &stubHandle{address: url}, nil
}

type echoTranslator struct{}

func (echoTranslator) Structured(_ context.Context, text string) (string, error) {
	return fmt.Sprintf(`{"command": "NONE", "query": "", "message": %q}`, text), nil
}

type stubPlain struct{}

func (stubPlain) Plain(_ context.Context, _ string) (string, error) { return "answer", nil }

func newTestModel(t *testing.T) model {
	t.Helper()

	st, err := session.New(session.Config{Opener: stubOpener{}})
	require.NoError(t, err)
	coordinator, err := assistant.New(echoTranslator{})
	require.NoError(t, err)
	t.Cleanup(coordinator.Close)
	dispatcher, err := dispatch.New(dispatch.Deps{State: st, Translator: stubPlain{}})
	require.NoError(t, err)

	m := initialModel()
	m.coordinator = coordinator
	m.dispatcher = dispatcher
	m.state = st
	m.ready = true
	m.viewport = newViewport(80, 20)
	return m
}

func TestIntentEventAppendsOutcome(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.handleAssistantEvent(&assistant.Event{
		Type:   assistant.EventIntent,
		Intent: &intent.Intent{Command: intent.CommandNewTab, Query: "1", Message: "Opening a tab."},
	})

	updated := next.(model)
	log := updated.content.String()
	assert.Contains(t, log, "Opening a tab.")
	assert.Contains(t, log, "[new_tab]")
	assert.Equal(t, 1, updated.state.TabCount())
}

func TestSessionEndQuits(t *testing.T) {
	m := newTestModel(t)
	_, err := m.state.OpenTab("https://only.example")
	require.NoError(t, err)

	next, cmd := m.handleAssistantEvent(&assistant.Event{
		Type:   assistant.EventIntent,
		Intent: &intent.Intent{Command: intent.CommandCloseTab},
	})

	assert.True(t, next.(model).shouldQuit)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNewChatClearsLog(t *testing.T) {
	m := newTestModel(t)
	m.appendLine("old line")

	next, _ := m.handleAssistantEvent(&assistant.Event{
		Type:   assistant.EventIntent,
		Intent: &intent.Intent{Command: intent.CommandNewChat, Message: "Fresh start."},
	})

	log := next.(model).content.String()
	assert.NotContains(t, log, "old line")
	assert.Contains(t, log, "Fresh start.")
}

func TestThinkingToggles(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.handleAssistantEvent(&assistant.Event{Type: assistant.EventThinkingStart})
	assert.True(t, next.(model).isThinking)

	next, _ = next.(model).handleAssistantEvent(&assistant.Event{Type: assistant.EventThinkingEnd})
	assert.False(t, next.(model).isThinking)
}

func TestAskPullsClipboard(t *testing.T) {
	original := clipboardReadAll
	t.Cleanup(func() { clipboardReadAll = original })
	clipboardReadAll = func() (string, error) {
		return "To be, or not to be", nil
	}

	m := newTestModel(t)
	m.textarea.SetValue("/ask what play is this from?")

	next, _ := m.submitInput()
	log := next.(model).content.String()
	assert.Contains(t, log, "To be, or not to be")
	assert.Contains(t, log, "what play is this from?")
}

func TestAskWithEmptyClipboard(t *testing.T) {
	original := clipboardReadAll
	t.Cleanup(func() { clipboardReadAll = original })
	clipboardReadAll = func() (string, error) {
		return "", errors.New("clipboard unavailable")
	}

	m := newTestModel(t)
	m.textarea.SetValue("/ask anything")

	next, _ := m.submitInput()
	assert.Contains(t, next.(model).content.String(), "nothing on the clipboard")
}

func TestHighlightScriptFallsBackToSource(t *testing.T) {
	src := "document.body.style.background = 'red'"
	out := highlightScript(src)
	assert.True(t, strings.Contains(out, "document.body") || out == src)
}

func TestScriptOutcomeIsHighlighted(t *testing.T) {
	m := newTestModel(t)
	_, err := m.state.OpenTab("https://example.com")
	require.NoError(t, err)

	next, _ := m.handleAssistantEvent(&assistant.Event{
		Type:   assistant.EventIntent,
		Intent: &intent.Intent{Command: intent.CommandEditPage, Query: "document.title = 'x'"},
	})

	assert.Contains(t, next.(model).content.String(), "document.title")
}
