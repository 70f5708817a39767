package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIProvider implements Provider using the OpenAI SDK.
// It also backs OpenRouter and other OpenAI-compatible APIs via BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required: %w", ErrNotConfigured)
	}
	return newOpenAIProvider(cfg, nil), nil
}

// newOpenAIProvider builds the provider without validating the key. doer,
// when non-nil, replaces the SDK's HTTP client.
func newOpenAIProvider(cfg OpenAIConfig, doer openai.HTTPDoer) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	if doer == nil {
		doer = config.HTTPClient
	}
	config.HTTPClient = retryAfterDoer{next: doer}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  resolveModel(cfg.Model, openaiModels),
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    buildOpenAIMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}

	if req.JSONObject {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	var retryAfter time.Duration
	ctx = context.WithValue(ctx, retryAfterKey{}, &retryAfter)

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err, retryAfter)
	}

	out := &Response{
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:      resp.Model,
		StopReason: "end",
	}

	// No choices is not an error here: the caller treats it as an empty
	// completion.
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
		out.StopReason = mapOpenAIStopReason(resp.Choices[0].FinishReason)
	}

	return out, nil
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func buildOpenAIMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}

	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	return messages
}

func mapOpenAIStopReason(reason openai.FinishReason) string {
	switch reason {
	case openai.FinishReasonLength:
		return "max_tokens"
	default:
		return "end"
	}
}

// retryAfterKey carries a *time.Duration that retryAfterDoer fills from a
// 429 reply. The SDK's error types do not keep response headers.
type retryAfterKey struct{}

type retryAfterDoer struct {
	next openai.HTTPDoer
}

func (d retryAfterDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.next.Do(req)
	if err == nil && resp.StatusCode == http.StatusTooManyRequests {
		if dst, ok := req.Context().Value(retryAfterKey{}).(*time.Duration); ok {
			*dst = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		}
	}
	return resp, err
}

// mapOpenAIError keeps the upstream's own status and message. Anything that
// never produced an HTTP reply is reported as unavailable. retryAfter is
// the 429 reply's Retry-After, if any.
func mapOpenAIError(err error, retryAfter time.Duration) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		up := newUpstreamError(apiErr.HTTPStatusCode, apiErr.Message, err)
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &ErrRateLimit{RetryAfter: retryAfter, Upstream: up}
		}
		return up
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		up := newUpstreamError(reqErr.HTTPStatusCode, "", err)
		if reqErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &ErrRateLimit{RetryAfter: retryAfter, Upstream: up}
		}
		return up
	}

	return &ErrProviderUnavailable{Err: err}
}
