package config

import (
	"fmt"
	"os"

	"github.com/stenoip/ringzauber/pkg/llm/openai"
)

// BuildProvider creates an LLM provider based on configuration precedence:
// CLI flags > Environment variables > Config file > Defaults
func BuildProvider(cliModel, cliBaseURL, cliAPIKey, defaultModel string) (*openai.Provider, error) {
	finalModel := cliModel
	finalBaseURL := cliBaseURL
	finalAPIKey := cliAPIKey

	if finalAPIKey == "" {
		finalAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	if finalBaseURL == "" {
		finalBaseURL = os.Getenv("OPENAI_BASE_URL")
	}

	assistantConfig := GetAssistant()
	if assistantConfig != nil {
		// Model: use config file only if the CLI didn't set a
		// non-default value
		if cliModel == "" || cliModel == defaultModel {
			if configModel := assistantConfig.GetModel(); configModel != "" {
				finalModel = configModel
			}
		}
		if finalBaseURL == "" {
			if configBaseURL := assistantConfig.GetBaseURL(); configBaseURL != "" {
				finalBaseURL = configBaseURL
			}
		}
		if finalAPIKey == "" {
			if configAPIKey := assistantConfig.GetAPIKey(); configAPIKey != "" {
				finalAPIKey = configAPIKey
			}
		}
	}

	if finalModel == "" {
		finalModel = defaultModel
	}

	if finalAPIKey == "" {
		return nil, fmt.Errorf("API key is required. Set OPENAI_API_KEY, use -api-key, or configure ~/.ringzauber/config.json")
	}

	providerOpts := []openai.ProviderOption{
		openai.WithModel(finalModel),
	}
	if finalBaseURL != "" {
		providerOpts = append(providerOpts, openai.WithBaseURL(finalBaseURL))
	}

	provider, err := openai.NewProvider(finalAPIKey, providerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	return provider, nil
}
