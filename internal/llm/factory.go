package llm

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event logging middleware: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, recorder EventRecorder, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, recorder, log)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from environment configuration.
// SUBJUNTO_LLM_PROVIDER wins when set; otherwise standard API key env
// vars are probed. Returns an error when nothing is configured, in which
// case feedback stays deterministic-only.
func NewProviderFromEnv(ctx context.Context, recorder EventRecorder, log *zap.Logger) (Provider, error) {
	var cfg Config
	if os.Getenv("SUBJUNTO_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no provider configured: set SUBJUNTO_LLM_PROVIDER or a standard API key env var")
		}
		cfg = discovered
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, recorder, log)
}
