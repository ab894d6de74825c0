package config

import (
	"errors"
	"fmt"

	"blurbgen/internal/models"
)

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}

	switch c.Generation.Provider {
	case ProviderMock, ProviderOpenAI, ProviderGemini, ProviderOllama:
	default:
		return fmt.Errorf("generation.provider %q: %w", c.Generation.Provider, models.ErrUnknownProvider)
	}

	if c.Generation.MaxTokens <= 0 {
		return errors.New("generation.max_tokens must be a positive integer")
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		return fmt.Errorf("generation.temperature (%v) must be between 0 and 2", c.Generation.Temperature)
	}
	if c.Generation.Candidates != 1 {
		return fmt.Errorf("generation.candidates (%d) must be 1; only one description is returned", c.Generation.Candidates)
	}

	// OpenAI-compatible local servers need no key.
	if c.Generation.Provider == ProviderOpenAI && c.OpenAI.APIKey == "" && c.OpenAI.BaseURL == "" {
		return errors.New("openai.api_key (or OPENAI_API_KEY) is required unless openai.base_url is set")
	}
	if c.Generation.Provider == ProviderGemini && c.Gemini.APIKey == "" {
		return errors.New("gemini.api_key (or GEMINI_API_KEY) is required when generation.provider is gemini")
	}

	return nil
}
