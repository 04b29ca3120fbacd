package session

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Policy decides which destinations navigation commands may open. An
// empty policy allows everything.
type Policy struct {
	patterns []glob.Glob
	sources  []string
}

// NewPolicy compiles a blocklist of glob patterns (e.g.
// "*://*.example.com/*"). A pattern that fails to compile is an error,
// not a silently ignored rule.
func NewPolicy(blocked []string) (*Policy, error) {
	p := &Policy{}
	for _, pattern := range blocked {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid blocklist pattern %q: %w", pattern, err)
		}
		p.patterns = append(p.patterns, g)
		p.sources = append(p.sources, pattern)
	}
	return p, nil
}

// Allow reports whether the URL may be opened.
func (p *Policy) Allow(url string) bool {
	if p == nil {
		return true
	}
	for _, g := range p.patterns {
		if g.Match(url) {
			return false
		}
	}
	return true
}

// Patterns returns the source patterns of the blocklist.
func (p *Policy) Patterns() []string {
	if p == nil {
		return nil
	}
	return p.sources
}
