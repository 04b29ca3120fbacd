package intent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Intent is the structured decode of a translator response: a command
// tag, a command-dependent payload, and a display message.
type Intent struct {
	// Command is the validated vocabulary member.
	Command Command

	// Query is the command-dependent payload. Its sub-schema is owned by
	// the dispatcher branch for the command, not by the parser.
	Query string

	// Message is free text intended for direct display. It may be empty
	// for commands that display the query instead (PROMPT_DISPLAY).
	Message string
}

// Degraded builds the NONE-command fallback Intent used when the
// translator call or parse fails. The dispatcher treats it like any
// other intent, so the "always produces a displayable message" contract
// holds uniformly.
func Degraded(message string) *Intent {
	return &Intent{Command: CommandNone, Message: message}
}

// PromptDisplayPayload is the compound query payload of PROMPT_DISPLAY,
// destined for the landing-page display surface rather than the
// confirmation message path.
type PromptDisplayPayload struct {
	UserQuery         string `json:"user_query"`
	PraterichResponse string `json:"praterich_response"`
}

// CodeEditPayload is the compound query payload of EDIT_CODE.
type CodeEditPayload struct {
	Filename string `json:"filename"`
	OldText  string `json:"old_text"`
	NewText  string `json:"new_text"`
}

// PromptDisplay decodes the intent's query as a PromptDisplayPayload.
func (i *Intent) PromptDisplay() (*PromptDisplayPayload, error) {
	var p PromptDisplayPayload
	if err := json.Unmarshal([]byte(i.Query), &p); err != nil {
		return nil, fmt.Errorf("invalid prompt display payload: %w", err)
	}
	if strings.TrimSpace(p.UserQuery) == "" {
		return nil, fmt.Errorf("invalid prompt display payload: user_query is empty")
	}
	return &p, nil
}

// CodeEdit decodes the intent's query as a CodeEditPayload.
func (i *Intent) CodeEdit() (*CodeEditPayload, error) {
	var p CodeEditPayload
	if err := json.Unmarshal([]byte(i.Query), &p); err != nil {
		return nil, fmt.Errorf("invalid code edit payload: %w", err)
	}
	if p.Filename == "" {
		return nil, fmt.Errorf("invalid code edit payload: filename is empty")
	}
	return &p, nil
}
