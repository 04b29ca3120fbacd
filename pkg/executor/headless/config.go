package headless

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration for a headless run
type Config struct {
	// Inputs are the scripted utterances, submitted in order
	Inputs []string `yaml:"inputs" json:"inputs"`

	// VoiceInputs are scripted spoken utterances, replayed through the
	// voice capture path after the typed inputs. An empty utterance
	// exercises the recognition-failure notice.
	VoiceInputs []string `yaml:"voice_inputs" json:"voice_inputs"`

	// StartupPages are opened before the first input is processed
	StartupPages []string `yaml:"startup_pages" json:"startup_pages"`

	// TranscriptPath receives the conversation transcript; empty
	// means stdout only
	TranscriptPath string `yaml:"transcript_path" json:"transcript_path"`

	// StopOnSessionEnd stops the run when a command closes the
	// session, rather than failing on the remaining inputs
	StopOnSessionEnd bool `yaml:"stop_on_session_end" json:"stop_on_session_end"`

	// Timeout bounds the whole run
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// DefaultTimeout bounds a run when the config does not set one.
const DefaultTimeout = 5 * time.Minute

// LoadConfig reads and validates a run configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run config: %w", err)
	}

	config := &Config{StopOnSessionEnd: true}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("failed to parse run config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 && len(c.VoiceInputs) == 0 {
		return fmt.Errorf("run config needs at least one input")
	}
	for i, input := range c.Inputs {
		if input == "" {
			return fmt.Errorf("input %d is empty", i+1)
		}
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}
