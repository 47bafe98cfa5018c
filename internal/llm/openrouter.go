package llm

import (
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOpenRouterTitle   = "tutorcore"
)

// OpenRouterProvider talks to OpenRouter through its OpenAI-compatible
// endpoint. Model ids are vendor-qualified ("anthropic/claude-haiku-4-5")
// and passed through untouched.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider builds a provider for the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenRouterBaseURL
	}
	if cfg.AppTitle == "" {
		cfg.AppTitle = defaultOpenRouterTitle
	}

	headers := http.Header{}
	headers.Set("X-Title", cfg.AppTitle)
	if cfg.SiteURL != "" {
		headers.Set("HTTP-Referer", cfg.SiteURL)
	}

	inner, err := newOpenAIProviderRaw(
		OpenAIConfig{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL},
		func(c *openai.ClientConfig) {
			c.HTTPClient = &http.Client{Transport: &headerTransport{headers: headers}}
		},
	)
	if err != nil {
		return nil, err
	}
	// OpenRouter ids never go through the OpenAI friendly-name table.
	inner.model = cfg.Model
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// headerTransport adds fixed headers to every outgoing request.
type headerTransport struct {
	headers http.Header
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
