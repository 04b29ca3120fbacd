package config

import (
	"fmt"
	"sync"
	"time"
)

const (
	// SectionIDAssistant is the identifier for the assistant settings section
	SectionIDAssistant = "assistant"
)

// AssistantSection manages model and provider settings for Praterich.
type AssistantSection struct {
	Model          string
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
	mu             sync.RWMutex
}

// NewAssistantSection creates a new assistant section with default settings.
func NewAssistantSection() *AssistantSection {
	return &AssistantSection{}
}

// ID returns the section identifier.
func (s *AssistantSection) ID() string {
	return SectionIDAssistant
}

// Title returns the section title.
func (s *AssistantSection) Title() string {
	return "Assistant Settings"
}

// Description returns the section description.
func (s *AssistantSection) Description() string {
	return "Configure the language model behind Praterich. All fields are optional; environment variables and flags take precedence."
}

// Data returns the current configuration data.
func (s *AssistantSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]interface{}{
		"model":           s.Model,
		"base_url":        s.BaseURL,
		"api_key":         s.APIKey,
		"timeout_seconds": s.TimeoutSeconds,
	}
}

// SetData updates the configuration from the provided data.
func (s *AssistantSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if model, ok := data["model"].(string); ok {
		s.Model = model
	}
	if baseURL, ok := data["base_url"].(string); ok {
		s.BaseURL = baseURL
	}
	if apiKey, ok := data["api_key"].(string); ok {
		s.APIKey = apiKey
	}
	// JSON numbers decode as float64
	switch v := data["timeout_seconds"].(type) {
	case float64:
		s.TimeoutSeconds = int(v)
	case int:
		s.TimeoutSeconds = v
	}
	return nil
}

// Validate validates the current configuration.
func (s *AssistantSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative")
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *AssistantSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Model = ""
	s.BaseURL = ""
	s.APIKey = ""
	s.TimeoutSeconds = 0
}

// GetModel returns the configured model name.
func (s *AssistantSection) GetModel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Model
}

// GetBaseURL returns the configured base URL.
func (s *AssistantSection) GetBaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.BaseURL
}

// GetAPIKey returns the configured API key.
func (s *AssistantSection) GetAPIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.APIKey
}

// Timeout returns the per-submission timeout, zero when unset.
func (s *AssistantSection) Timeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Duration(s.TimeoutSeconds) * time.Second
}
