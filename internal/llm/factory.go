package llm

import (
	"fmt"
	"time"

	"github.com/ajramos/promptvault/internal/config"
)

// NewProviderFromConfig creates a Provider from the AI config section.
func NewProviderFromConfig(cfg config.AIConfig, timeout time.Duration) (Provider, error) {
	switch cfg.Provider {
	case "openai", "":
		return NewChatClient(cfg.Endpoint, cfg.Model, cfg.APIKey, cfg.Temperature, cfg.MaxTokens, timeout), nil
	case "ollama":
		return NewClient(cfg.Endpoint, cfg.Model, timeout), nil
	case "bedrock":
		return NewBedrock(cfg.Region, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
