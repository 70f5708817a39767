package llm

import (
	"fmt"
	"net/http"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel   = "google/gemini-pro"
	defaultTitle             = "J-Math"
)

// OpenRouterProvider wraps OpenAIProvider with OpenRouter-specific defaults.
// OpenRouter exposes an OpenAI-compatible API, so the underlying SDK is reused.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
// Every request carries HTTP-Referer (the public site URL) and X-Title (the
// title found in the request context, see WithTitle).
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required: %w", ErrNotConfigured)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenRouterModel
	}

	base := cfg.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}

	inner := newOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   model,
		BaseURL: baseURL,
	}, &attributionDoer{client: base, referer: cfg.SiteURL})

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// attributionDoer adds OpenRouter's app attribution headers.
type attributionDoer struct {
	client  *http.Client
	referer string
}

func (d *attributionDoer) Do(req *http.Request) (*http.Response, error) {
	if d.referer != "" {
		req.Header.Set("HTTP-Referer", d.referer)
	}
	title := TitleFrom(req.Context())
	if title == "" {
		title = defaultTitle
	}
	req.Header.Set("X-Title", title)
	return d.client.Do(req)
}
