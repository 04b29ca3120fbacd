package config

import (
	"sync"

	"github.com/stenoip/ringzauber/pkg/session"
)

const (
	// SectionIDNavigation is the identifier for the navigation settings section
	SectionIDNavigation = "navigation"
)

// NavigationSection manages the home page and the blocked-site list.
type NavigationSection struct {
	HomeURL   string
	Blocklist []string
	mu        sync.RWMutex
}

// NewNavigationSection creates a new navigation section with default settings.
func NewNavigationSection() *NavigationSection {
	return &NavigationSection{
		HomeURL: session.DefaultHomeURL,
	}
}

// ID returns the section identifier.
func (s *NavigationSection) ID() string {
	return SectionIDNavigation
}

// Title returns the section title.
func (s *NavigationSection) Title() string {
	return "Navigation Settings"
}

// Description returns the section description.
func (s *NavigationSection) Description() string {
	return "Configure the home page and glob patterns for sites that NAVIGATE and SEARCH must refuse to open."
}

// Data returns the current configuration data.
func (s *NavigationSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocklist := make([]interface{}, len(s.Blocklist))
	for i, p := range s.Blocklist {
		blocklist[i] = p
	}
	return map[string]interface{}{
		"home_url":  s.HomeURL,
		"blocklist": blocklist,
	}
}

// SetData updates the configuration from the provided data.
func (s *NavigationSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if home, ok := data["home_url"].(string); ok && home != "" {
		s.HomeURL = home
	}

	if raw, ok := data["blocklist"].([]interface{}); ok {
		patterns := make([]string, 0, len(raw))
		for _, entry := range raw {
			if p, ok := entry.(string); ok && p != "" {
				patterns = append(patterns, p)
			}
		}
		s.Blocklist = patterns
	}
	return nil
}

// Validate validates the current configuration.
func (s *NavigationSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := session.NewPolicy(s.Blocklist)
	return err
}

// Reset resets the section to default configuration.
func (s *NavigationSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.HomeURL = session.DefaultHomeURL
	s.Blocklist = nil
}

// GetHomeURL returns the configured home page.
func (s *NavigationSection) GetHomeURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.HomeURL
}

// Policy compiles the blocklist into a navigation policy.
func (s *NavigationSection) Policy() (*session.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return session.NewPolicy(s.Blocklist)
}
