// Package types holds the shared value types exchanged between the
// translator, the request coordinator, and the user-facing surfaces.
package types

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // RoleSystem carries the instruction document.
	RoleUser      MessageRole = "user"      // RoleUser carries user-authored text.
	RoleAssistant MessageRole = "assistant" // RoleAssistant carries model output.
)

// Message is a single chat message sent to or received from the model.
type Message struct {
	// Role indicates who authored the message.
	Role MessageRole

	// Content is the text body of the message.
	Content string
}

// NewSystemMessage creates a system-role message.
func NewSystemMessage(content string) *Message {
	return &Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user-role message.
func NewUserMessage(content string) *Message {
	return &Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant-role message.
func NewAssistantMessage(content string) *Message {
	return &Message{Role: RoleAssistant, Content: content}
}

// ModelInfo describes the model behind a provider.
type ModelInfo struct {
	// Provider is the service name (e.g. "openai").
	Provider string

	// Name is the model identifier (e.g. "gpt-4o").
	Name string

	// MaxTokens is the context window size, when known.
	MaxTokens int

	// Metadata holds provider-specific extras (base URL overrides, etc).
	Metadata map[string]interface{}
}

// TokenUsage contains token usage statistics from a model API call.
type TokenUsage struct {
	// PromptTokens is the number of tokens in the input/prompt.
	PromptTokens int

	// CompletionTokens is the number of tokens in the generated completion.
	CompletionTokens int

	// TotalTokens is the total number of tokens used (prompt + completion).
	TotalTokens int
}
