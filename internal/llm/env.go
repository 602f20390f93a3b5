package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/lexio/internal/store"
)

// NewProviderFromEnv builds a Provider from environment configuration.
// LEXIO_LLM_PROVIDER selects the provider explicitly; otherwise standard
// API key variables are tried in priority order. Fails if no provider is configured.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()

	if cfg.Provider == "" || !hasKey(cfg) {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set LEXIO_LLM_PROVIDER or an API key env var")
		}
		cfg = discovered
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}

func hasKey(cfg Config) bool {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.APIKey != ""
	case "openai":
		return cfg.OpenAI.APIKey != ""
	case "gemini":
		return cfg.Gemini.APIKey != ""
	case "openrouter":
		return cfg.OpenRouter.APIKey != ""
	case "mock":
		return true
	}
	return false
}
