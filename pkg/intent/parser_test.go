package intent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	raw := `{"command": "NAVIGATE", "query": "https://www.google.com", "message": "Navigating to Google."}`

	in, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, CommandNavigate, in.Command)
	assert.Equal(t, "https://www.google.com", in.Query)
	assert.Equal(t, "Navigating to Google.", in.Message)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"plain text", "I would be delighted to help."},
		{"json array", `["NAVIGATE", "https://example.com"]`},
		{"missing command", `{"query": "", "message": "hello"}`},
		{"missing query", `{"command": "NONE", "message": "hello"}`},
		{"missing message", `{"command": "NONE", "query": ""}`},
		{"command not a string", `{"command": 3, "query": "", "message": ""}`},
		{"query not a string", `{"command": "NONE", "query": {"a": 1}, "message": ""}`},
		{"truncated json", `{"command": "NONE", "query": "", "mess`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Parse(tt.raw)
			assert.Nil(t, in, "no partially populated intent on failure")

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, Malformed, perr.Kind)
		})
	}
}

func TestParseUnknownCommand(t *testing.T) {
	in, err := Parse(`{"command": "LAUNCH_ROCKET", "query": "", "message": "Launching."}`)
	assert.Nil(t, in)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, UnknownCommand, perr.Kind)
	assert.Equal(t, "LAUNCH_ROCKET", perr.Tag)
}

func TestParseLegacyAlias(t *testing.T) {
	in, err := Parse(`{"command": "TAB_FORMAT_HORIZONTAL_MULTIROWE", "query": "", "message": "Rearranging."}`)
	require.NoError(t, err)
	assert.Equal(t, CommandTabFormatHorizontal, in.Command)
}

func TestParseStripsFence(t *testing.T) {
	fenced := "```json\n{\"command\": \"SEARCH\", \"query\": \"capital of France\", \"message\": \"Searching.\"}\n```"
	unfenced := `{"command": "SEARCH", "query": "capital of France", "message": "Searching."}`

	fromFenced, err := Parse(fenced)
	require.NoError(t, err)
	fromPlain, err := Parse(unfenced)
	require.NoError(t, err)

	assert.Equal(t, fromPlain, fromFenced)
}

func TestStripFenceIdempotent(t *testing.T) {
	fenced := "```json\n{\"command\": \"NONE\"}\n```"
	once := StripFence(fenced)
	twice := StripFence(once)
	assert.Equal(t, once, twice)

	t.Run("bare fence", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, StripFence("```\n{\"a\":1}\n```"))
	})

	t.Run("unfenced untouched", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, StripFence(`{"a":1}`))
	})
}

func TestDegraded(t *testing.T) {
	in := Degraded("I'm sorry, something went wrong.")
	assert.Equal(t, CommandNone, in.Command)
	assert.Equal(t, "I'm sorry, something went wrong.", in.Message)
	assert.Empty(t, in.Query)
}

func TestVocabularyMembership(t *testing.T) {
	for _, cmd := range Commands() {
		assert.True(t, cmd.Valid(), "command %s should be valid", cmd)
	}
	assert.False(t, Command("NOT_A_COMMAND").Valid())
	assert.Len(t, Commands(), 36)
}

func TestInstructionCoversVocabulary(t *testing.T) {
	doc := Instruction()
	for _, cmd := range Commands() {
		assert.Contains(t, doc, `"`+string(cmd)+`"`, "instruction must advertise %s", cmd)
	}
	// The three-key contract is spelled out.
	assert.Contains(t, doc, `"command"`)
	assert.Contains(t, doc, `"query"`)
	assert.Contains(t, doc, `"message"`)
}

func TestPromptDisplayPayload(t *testing.T) {
	in := &Intent{
		Command: CommandPromptDisplay,
		Query:   `{"user_query":"What is the capital of France?","praterich_response":"The capital of France is Paris."}`,
	}

	p, err := in.PromptDisplay()
	require.NoError(t, err)
	assert.Equal(t, "What is the capital of France?", p.UserQuery)
	assert.Equal(t, "The capital of France is Paris.", p.PraterichResponse)

	t.Run("invalid json", func(t *testing.T) {
		bad := &Intent{Command: CommandPromptDisplay, Query: "not json"}
		_, err := bad.PromptDisplay()
		assert.Error(t, err)
	})

	t.Run("empty user query", func(t *testing.T) {
		bad := &Intent{Command: CommandPromptDisplay, Query: `{"user_query":"","praterich_response":"x"}`}
		_, err := bad.PromptDisplay()
		assert.Error(t, err)
	})
}

func TestCodeEditPayload(t *testing.T) {
	in := &Intent{
		Command: CommandEditCode,
		Query:   `{"filename":"main.go","old_text":"a","new_text":"b"}`,
	}

	p, err := in.CodeEdit()
	require.NoError(t, err)
	assert.Equal(t, "main.go", p.Filename)

	bad := &Intent{Command: CommandEditCode, Query: `{}`}
	_, err = bad.CodeEdit()
	assert.Error(t, err)
}
