package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "google/gemini-2.0-flash-exp",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.0-flash-exp" {
			t.Errorf("model = %q, want %q", p.ModelID(), "google/gemini-2.0-flash-exp")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		})
		if !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("default model", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-pro" {
			t.Errorf("model = %q, want google/gemini-pro", p.ModelID())
		}
	})

	t.Run("custom model pass-through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "anthropic/claude-3-haiku",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Model ID should be used as-is (no friendly-name mapping).
		if p.ModelID() != "anthropic/claude-3-haiku" {
			t.Errorf("model = %q, want %q", p.ModelID(), "anthropic/claude-3-haiku")
		}
	})
}

func TestOpenRouterProvider_AttributionHeaders(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantTitle string
	}{
		{"default title", "", "J-Math"},
		{"explanation title", "J-Math (Explanation)", "J-Math (Explanation)"},
		{"concept map title", "J-Math (Concept Map)", "J-Math (Concept Map)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got http.Header
			var path string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Clone()
				path = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(chatCompletionBody("ok"))
			}))
			defer server.Close()

			p, err := NewOpenRouterProvider(OpenRouterConfig{
				APIKey:  "sk-or-test",
				BaseURL: server.URL + "/api/v1",
				SiteURL: "https://jmath.example",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			ctx := context.Background()
			if tt.title != "" {
				ctx = WithTitle(ctx, tt.title)
			}
			if _, err := p.Generate(ctx, UserPrompt("hi", false)); err != nil {
				t.Fatalf("generate: %v", err)
			}

			if path != "/api/v1/chat/completions" {
				t.Errorf("path = %q", path)
			}
			if got.Get("Authorization") != "Bearer sk-or-test" {
				t.Errorf("Authorization = %q", got.Get("Authorization"))
			}
			if got.Get("HTTP-Referer") != "https://jmath.example" {
				t.Errorf("HTTP-Referer = %q", got.Get("HTTP-Referer"))
			}
			if got.Get("X-Title") != tt.wantTitle {
				t.Errorf("X-Title = %q, want %q", got.Get("X-Title"), tt.wantTitle)
			}
		})
	}
}

func TestOpenRouterProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 402, "message": "Insufficient credits"},
		})
	}))
	defer server.Close()

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = p.Generate(context.Background(), UserPrompt("hi", true))
	var up *ErrUpstream
	if !errors.As(err, &up) {
		t.Fatalf("expected ErrUpstream, got %T (%v)", err, err)
	}
	if up.StatusCode != http.StatusPaymentRequired || up.Message != "Insufficient credits" {
		t.Fatalf("unexpected upstream error: %+v", up)
	}
}

func TestOpenRouterProvider_RateLimitRetryAfter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("HTTP-Referer") == "" {
			t.Errorf("attribution headers dropped")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"Rate limit exceeded"}}`))
	}))
	defer server.Close()

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", BaseURL: server.URL, SiteURL: "https://jmath.example"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = p.Generate(context.Background(), UserPrompt("hi", true))
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}
	if rl.RetryAfter != 2*time.Second {
		t.Fatalf("RetryAfter = %v, want 2s", rl.RetryAfter)
	}
}
