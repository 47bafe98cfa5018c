package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorcore/internal/logger"
)

// NewProvider creates a Provider from configuration, wrapped with
// timeout, tracing, retry and event logging middleware.
func NewProvider(ctx context.Context, cfg Config, recorder EventRecorder, log *logger.Logger) (Provider, error) {
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
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → timeout → tracing → retry → logging → base
	var p Provider = base
	if recorder != nil {
		p = WithLogging(p, cfg.Provider, recorder, log)
	}
	p = WithRetry(p, cfg.Retry)
	p = WithTracing(p, cfg.Provider)
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return p, nil
}
