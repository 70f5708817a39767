// Package config loads jmath's settings from flags, environment and an
// optional YAML file through viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jmath/jmath/internal/llm"
)

// Config holds the process configuration. It is built once at startup and
// passed to the components that need it.
type Config struct {
	Provider string `mapstructure:"provider"`

	// OpenRouter settings. APIKey may be empty: the server still starts and
	// every capability then answers 500.
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	SiteURL string `mapstructure:"site_url"`
	BaseURL string `mapstructure:"base_url"`

	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	OpenAIModel     string `mapstructure:"openai_model"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	AnthropicModel  string `mapstructure:"anthropic_model"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	GeminiModel     string `mapstructure:"gemini_model"`

	Listen   string        `mapstructure:"listen"`
	DB       string        `mapstructure:"db"`
	LogLevel string        `mapstructure:"log_level"`
	Timeout  time.Duration `mapstructure:"timeout"`

	// RetryAttempts of 1 means a single call per request.
	RetryAttempts    int           `mapstructure:"retry_attempts"`
	RetryInitialWait time.Duration `mapstructure:"retry_initial_wait"`
	RetryMaxWait     time.Duration `mapstructure:"retry_max_wait"`
}

// envBindings maps each key to the environment variables it reads, in
// priority order.
var envBindings = map[string][]string{
	"provider":          {"JMATH_LLM_PROVIDER"},
	"api_key":           {"OPENROUTER_API_KEY"},
	"model":             {"OPENROUTER_MODEL"},
	"site_url":          {"JMATH_SITE_URL", "NEXT_PUBLIC_SITE_URL"},
	"base_url":          {"OPENROUTER_BASE_URL"},
	"openai_api_key":    {"OPENAI_API_KEY"},
	"openai_model":      {"OPENAI_MODEL"},
	"anthropic_api_key": {"ANTHROPIC_API_KEY"},
	"anthropic_model":   {"ANTHROPIC_MODEL"},
	"gemini_api_key":    {"GEMINI_API_KEY"},
	"gemini_model":      {"GEMINI_MODEL"},
	"listen":            {"JMATH_LISTEN"},
	"db":                {"JMATH_DB"},
	"log_level":         {"JMATH_LOG_LEVEL"},
	"timeout":           {"JMATH_TIMEOUT"},

	"retry_attempts":     {"JMATH_RETRY_ATTEMPTS"},
	"retry_initial_wait": {"JMATH_RETRY_INITIAL_WAIT"},
	"retry_max_wait":     {"JMATH_RETRY_MAX_WAIT"},
}

// New returns a viper instance with jmath's defaults and environment
// bindings. Callers may bind flags on top before calling Load.
func New() *viper.Viper {
	v := viper.New()

	d := llm.DefaultConfig()
	v.SetDefault("provider", d.Provider)
	v.SetDefault("api_key", "")
	v.SetDefault("model", d.OpenRouter.Model)
	v.SetDefault("site_url", d.OpenRouter.SiteURL)
	v.SetDefault("base_url", "")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_model", d.OpenAI.Model)
	v.SetDefault("anthropic_api_key", "")
	v.SetDefault("anthropic_model", d.Anthropic.Model)
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", d.Gemini.Model)
	v.SetDefault("listen", ":3000")
	v.SetDefault("db", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("retry_attempts", d.Retry.MaxAttempts)
	v.SetDefault("retry_initial_wait", d.Retry.InitialWait)
	v.SetDefault("retry_max_wait", d.Retry.MaxWait)

	for key, envs := range envBindings {
		// BindEnv only fails without a key.
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	return v
}

// Load reads the optional config file set on v and decodes the result.
func Load(v *viper.Viper) (Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	switch cfg.Provider {
	case "openrouter", "openai", "anthropic", "gemini", "mock":
	default:
		return Config{}, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if cfg.Listen == "" {
		return Config{}, fmt.Errorf("listen address is required")
	}
	if cfg.RetryAttempts < 1 {
		return Config{}, fmt.Errorf("retry_attempts must be at least 1, got %d", cfg.RetryAttempts)
	}

	return cfg, nil
}

// LLM converts to the provider factory's configuration.
func (c Config) LLM() llm.Config {
	lc := llm.DefaultConfig()
	lc.Provider = c.Provider
	lc.Timeout = c.Timeout
	if c.RetryAttempts > 0 {
		lc.Retry.MaxAttempts = c.RetryAttempts
	}
	if c.RetryInitialWait > 0 {
		lc.Retry.InitialWait = c.RetryInitialWait
	}
	if c.RetryMaxWait > 0 {
		lc.Retry.MaxWait = c.RetryMaxWait
	}

	lc.OpenRouter.APIKey = c.APIKey
	lc.OpenRouter.Model = c.Model
	lc.OpenRouter.SiteURL = c.SiteURL
	lc.OpenRouter.BaseURL = c.BaseURL

	lc.OpenAI.APIKey = c.OpenAIAPIKey
	lc.OpenAI.Model = c.OpenAIModel
	lc.Anthropic.APIKey = c.AnthropicAPIKey
	lc.Anthropic.Model = c.AnthropicModel
	lc.Gemini.APIKey = c.GeminiAPIKey
	lc.Gemini.Model = c.GeminiModel

	return lc
}
