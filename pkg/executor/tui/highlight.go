package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// highlightScript renders a JavaScript snippet with ANSI colors for
// the conversation log. Highlighting failures fall back to the plain
// source.
func highlightScript(source string) string {
	var buf strings.Builder
	if err := quick.Highlight(&buf, source, "javascript", "terminal256", "monokai"); err != nil {
		return source
	}
	return strings.TrimRight(buf.String(), "\n")
}
