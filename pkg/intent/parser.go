package intent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseErrorKind classifies parse failures.
type ParseErrorKind string

const (
	// Malformed means the raw text did not decode as the three-key
	// envelope: not a JSON object, a key missing, or a key not a string.
	Malformed ParseErrorKind = "malformed"

	// UnknownCommand means the envelope decoded but its command tag is
	// outside the closed vocabulary.
	UnknownCommand ParseErrorKind = "unknown_command"
)

// ParseError describes why raw translator output was rejected.
type ParseError struct {
	Kind ParseErrorKind

	// Tag is the offending command tag for UnknownCommand errors.
	Tag string

	// Reason is a short description of the structural failure.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Kind == UnknownCommand {
		return fmt.Sprintf("unknown command %q", e.Tag)
	}
	return fmt.Sprintf("malformed intent: %s", e.Reason)
}

const (
	fenceOpen  = "```json"
	fenceBare  = "```"
	fenceClose = "```"
)

// StripFence removes one leading and one trailing markdown code fence,
// which the translator is not contractually guaranteed to omit. The
// operation is idempotent: stripping already-unfenced text is a no-op.
func StripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, fenceOpen) {
		s = strings.TrimSpace(strings.TrimPrefix(s, fenceOpen))
	} else if strings.HasPrefix(s, fenceBare) {
		s = strings.TrimSpace(strings.TrimPrefix(s, fenceBare))
	}
	if strings.HasSuffix(s, fenceClose) {
		s = strings.TrimSpace(strings.TrimSuffix(s, fenceClose))
	}
	return s
}

// Parse decodes raw translator output into a validated Intent.
//
// It strips an incidental code fence, decodes the three-key envelope, and
// checks the command tag against the closed vocabulary. It does not
// validate the query's command-specific sub-shape; that is deferred to
// the dispatcher branch that owns the command. Parse is a pure function.
func Parse(raw string) (*Intent, error) {
	cleaned := StripFence(raw)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, &ParseError{Kind: Malformed, Reason: "not a JSON object"}
	}

	fields := make(map[string]string, 3)
	for _, key := range []string{"command", "query", "message"} {
		rawVal, ok := envelope[key]
		if !ok {
			return nil, &ParseError{Kind: Malformed, Reason: fmt.Sprintf("missing key %q", key)}
		}
		var s string
		if err := json.Unmarshal(rawVal, &s); err != nil {
			return nil, &ParseError{Kind: Malformed, Reason: fmt.Sprintf("key %q is not a string", key)}
		}
		fields[key] = s
	}

	cmd, ok := Canonical(fields["command"])
	if !ok {
		return nil, &ParseError{Kind: UnknownCommand, Tag: fields["command"]}
	}

	return &Intent{
		Command: cmd,
		Query:   fields["query"],
		Message: fields["message"],
	}, nil
}
