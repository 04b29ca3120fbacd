package translator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenoip/ringzauber/pkg/types"
)

// fakeProvider records the messages it receives and returns a canned
// completion or error.
type fakeProvider struct {
	received []*types.Message
	response string
	err      error
}

func (f *fakeProvider) Complete(_ context.Context, messages []*types.Message) (*types.Message, error) {
	f.received = messages
	if f.err != nil {
		return nil, f.err
	}
	return types.NewAssistantMessage(f.response), nil
}

func (f *fakeProvider) GetModel() string { return "test-model" }

func (f *fakeProvider) GetModelInfo() *types.ModelInfo {
	return &types.ModelInfo{Provider: "fake", Name: "test-model"}
}

func TestStructuredSendsInstructionDocument(t *testing.T) {
	fake := &fakeProvider{response: `{"command":"NONE","query":"","message":"Hello."}`}
	tr, err := New(fake)
	require.NoError(t, err)

	out, err := tr.Structured(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, `{"command":"NONE","query":"","message":"Hello."}`, out)

	require.Len(t, fake.received, 2)
	assert.Equal(t, types.RoleSystem, fake.received[0].Role)
	assert.Contains(t, fake.received[0].Content, `"NAVIGATE"`)
	assert.Equal(t, "hello there", fake.received[1].Content)
}

func TestStructuredWrapsProviderError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("quota exceeded")}
	tr, err := New(fake)
	require.NoError(t, err)

	_, err = tr.Structured(context.Background(), "go to google")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "structured translation failed")
}

func TestPlainTruncatesToBudget(t *testing.T) {
	fake := &fakeProvider{response: "A summary."}
	tr, err := New(fake, WithPromptBudget(20))
	require.NoError(t, err)

	longPrompt := strings.Repeat("lots of page content here ", 100)
	out, err := tr.Plain(context.Background(), longPrompt)
	require.NoError(t, err)
	assert.Equal(t, "A summary.", out)

	require.Len(t, fake.received, 2)
	sent := fake.received[1].Content
	assert.Less(t, len(sent), len(longPrompt), "prompt should have been truncated")
	assert.LessOrEqual(t, tr.PromptTokens(sent), 20)
}
