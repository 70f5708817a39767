package llm

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "openrouter", "openai", "anthropic", "gemini", "mock"
	Provider string

	OpenRouter OpenRouterConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig
	Retry      RetryConfig

	// Timeout bounds a single request. Zero keeps the transport default.
	Timeout time.Duration
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-pro"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
	SiteURL string // Sent as HTTP-Referer.

	// HTTPClient overrides the transport. Nil uses http.DefaultClient.
	HTTPClient *http.Client
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-haiku"
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string // Default: "gemini-flash"
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
// MaxAttempts of 1 (the default) means a single call and no retry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with the defaults jmath ships with.
func DefaultConfig() Config {
	return Config{
		Provider: "openrouter",
		OpenRouter: OpenRouterConfig{
			Model:   defaultOpenRouterModel,
			SiteURL: "http://localhost:3000",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// APIKey returns the key of the selected provider.
func (c Config) APIKey() string {
	switch c.Provider {
	case "openrouter":
		return c.OpenRouter.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "anthropic":
		return c.Anthropic.APIKey
	case "gemini":
		return c.Gemini.APIKey
	}
	return ""
}

// Validate checks that the selected provider is known and has its key.
// A missing key wraps ErrNotConfigured.
func (c Config) Validate() error {
	switch c.Provider {
	case "mock":
		return nil
	case "openrouter", "openai", "anthropic", "gemini":
		if c.APIKey() == "" {
			return fmt.Errorf("%s provider: %w", c.Provider, ErrNotConfigured)
		}
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}
