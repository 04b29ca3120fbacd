package headless

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenoip/ringzauber/pkg/assistant"
	"github.com/stenoip/ringzauber/pkg/dispatch"
	"github.com/stenoip/ringzauber/pkg/intent"
	"github.com/stenoip/ringzauber/pkg/session"
)

type scriptedHandle struct {
	address string
}

func (h *scriptedHandle) Navigate(url string) error        { h.address = url; return nil }
func (h *scriptedHandle) Reload() error                    { return nil }
func (h *scriptedHandle) Back() error                      { return nil }
func (h *scriptedHandle) Forward() error                   { return nil }
func (h *scriptedHandle) SetZoom(float64) error            { return nil }
func (h *scriptedHandle) RunScript(string) (string, error) { return "", nil }
func (h *scriptedHandle) FindText(string) (int, error)     { return 0, nil }
func (h *scriptedHandle) Content() (string, error)         { return "<html></html>", nil }
func (h *scriptedHandle) PrintToPDF(string) (int, error)   { return 1, nil }
func (h *scriptedHandle) Title() (string, error)           { return "", nil }
func (h *scriptedHandle) URL() string                      { return h.address }
func (h *scriptedHandle) Close() error                     { return nil }

type scriptedOpener struct{}

func (scriptedOpener) OpenTab(url string) (session.TabHandle, error) {
	return &scriptedHandle{address: url}, nil
}

// mapTranslator resolves scripted utterances to fixed intents.
type mapTranslator map[string]*intent.Intent

func (m mapTranslator) Structured(_ context.Context, text string) (string, error) {
	in, ok := m[text]
	if !ok {
		in = &intent.Intent{Command: intent.CommandNone, Message: "Very well."}
	}
	return fmt.Sprintf(`{"command": %q, "query": %q, "message": %q}`, in.Command, in.Query, in.Message), nil
}

func newRunPipeline(t *testing.T, translator assistant.Translator) (*assistant.Coordinator, *dispatch.Dispatcher, *session.State) {
	t.Helper()

	st, err := session.New(session.Config{Opener: scriptedOpener{}})
	require.NoError(t, err)

	coordinator, err := assistant.New(translator)
	require.NoError(t, err)
	t.Cleanup(coordinator.Close)

	dispatcher, err := dispatch.New(dispatch.Deps{State: st, Translator: plainStub{}})
	require.NoError(t, err)
	return coordinator, dispatcher, st
}

type plainStub struct{}

func (plainStub) Plain(_ context.Context, _ string) (string, error) { return "summary", nil }

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	yaml := `
inputs:
  - "open example.com"
  - "close the tab"
startup_pages:
  - "https://start.example"
stop_on_session_end: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, config.Inputs, 2)
	assert.Equal(t, []string{"https://start.example"}, config.StartupPages)
	assert.Equal(t, DefaultTimeout, config.Timeout)
}

func TestConfigValidation(t *testing.T) {
	err := (&Config{}).Validate()
	assert.Error(t, err, "empty input list is rejected")

	err = (&Config{Inputs: []string{"go home", ""}}).Validate()
	assert.Error(t, err, "blank input is rejected")
}

func TestRunScriptedConversation(t *testing.T) {
	translator := mapTranslator{
		"open example.com": {Command: intent.CommandNavigate, Query: "https://example.com", Message: "Navigating to example.com."},
		"zoom in":          {Command: intent.CommandZoomIn},
	}
	coordinator, dispatcher, st := newRunPipeline(t, translator)

	transcriptPath := filepath.Join(t.TempDir(), "transcript.txt")
	config := &Config{
		Inputs:         []string{"open example.com", "zoom in"},
		TranscriptPath: transcriptPath,
	}

	e, err := NewExecutor(coordinator, dispatcher, st, config)
	require.NoError(t, err)
	var buf bytes.Buffer
	e.SetOutput(&buf)

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 1, st.TabCount())

	raw, err := os.ReadFile(transcriptPath)
	require.NoError(t, err)
	transcript := string(raw)
	assert.Contains(t, transcript, "you> open example.com")
	assert.Contains(t, transcript, "praterich> Navigating to example.com.")
}

func TestRunStopsWhenSessionEnds(t *testing.T) {
	translator := mapTranslator{
		"close the tab": {Command: intent.CommandCloseTab},
	}
	coordinator, dispatcher, st := newRunPipeline(t, translator)
	_, err := st.OpenTab("https://only.example")
	require.NoError(t, err)

	config := &Config{
		Inputs:           []string{"close the tab", "never reached"},
		StopOnSessionEnd: true,
	}
	e, err := NewExecutor(coordinator, dispatcher, st, config)
	require.NoError(t, err)
	var buf bytes.Buffer
	e.SetOutput(&buf)

	require.NoError(t, e.Run(context.Background()))
	output := buf.String()
	assert.Contains(t, output, "Farewell!")
	assert.False(t, strings.Contains(output, "never reached"))
}

func TestRunVoiceInputs(t *testing.T) {
	translator := mapTranslator{
		"open example.com": {Command: intent.CommandNavigate, Query: "https://example.com", Message: "Navigating to example.com."},
	}
	coordinator, dispatcher, st := newRunPipeline(t, translator)

	config := &Config{
		VoiceInputs: []string{"open example.com", "   "},
	}
	e, err := NewExecutor(coordinator, dispatcher, st, config)
	require.NoError(t, err)
	var buf bytes.Buffer
	e.SetOutput(&buf)

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 1, st.TabCount())

	output := buf.String()
	assert.Contains(t, output, "you> open example.com")
	assert.Contains(t, output, "Navigating to example.com.")
	assert.Contains(t, output, "Sorry, I could not understand the audio.", "a blank utterance records the failure notice")
}

func TestRunOpensStartupPages(t *testing.T) {
	coordinator, dispatcher, st := newRunPipeline(t, mapTranslator{})

	config := &Config{
		Inputs:       []string{"hello"},
		StartupPages: []string{"https://a.example", "https://b.example"},
	}
	e, err := NewExecutor(coordinator, dispatcher, st, config)
	require.NoError(t, err)
	e.SetOutput(&bytes.Buffer{})

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 2, st.TabCount())
}
