package llm

import (
	"context"
	"fmt"
	"io"
)

// NewProvider creates a Provider from configuration, wrapped with logging
// and retry middleware. logWriter receives one line per request; pass nil
// to skip request logging entirely (nothing is ever persisted either way).
func NewProvider(ctx context.Context, cfg Config, logWriter io.Writer) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base, so every attempt
	// is logged individually.
	logged := WithLogging(base, logWriter)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a provider from STROKEAID_* env vars, falling
// back to probing the standard provider API key variables.
func NewProviderFromEnv(ctx context.Context, logWriter io.Writer) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set STROKEAID_LLM_PROVIDER or a provider API key")
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, logWriter)
}
