package config

import (
	"fmt"
	"sync"

	"github.com/stenoip/ringzauber/pkg/session"
)

const (
	// SectionIDSearch is the identifier for the search settings section
	SectionIDSearch = "search"
)

// SearchSection manages the default search engine setting.
type SearchSection struct {
	DefaultEngine string
	mu            sync.RWMutex
}

// NewSearchSection creates a new search section with default settings.
func NewSearchSection() *SearchSection {
	return &SearchSection{
		DefaultEngine: string(session.EngineGoogle),
	}
}

// ID returns the section identifier.
func (s *SearchSection) ID() string {
	return SectionIDSearch
}

// Title returns the section title.
func (s *SearchSection) Title() string {
	return "Search Settings"
}

// Description returns the section description.
func (s *SearchSection) Description() string {
	return "Configure which search engine SEARCH commands use."
}

// Data returns the current configuration data.
func (s *SearchSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]interface{}{
		"default_search_engine": s.DefaultEngine,
	}
}

// SetData updates the configuration from the provided data.
func (s *SearchSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if engine, ok := data["default_search_engine"].(string); ok && engine != "" {
		s.DefaultEngine = engine
	}
	return nil
}

// Validate validates the current configuration.
func (s *SearchSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := session.LookupEngine(s.DefaultEngine); !ok {
		return fmt.Errorf("unknown search engine %q", s.DefaultEngine)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *SearchSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DefaultEngine = string(session.EngineGoogle)
}

// Engine returns the configured engine, falling back to Google for
// values written by hand.
func (s *SearchSection) Engine() session.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return session.ParseEngine(s.DefaultEngine)
}

// SetEngine sets the default search engine.
func (s *SearchSection) SetEngine(engine session.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DefaultEngine = string(engine)
}
