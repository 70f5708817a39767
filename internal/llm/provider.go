package llm

import (
	"context"
)

// Provider is the core abstraction over a hosted chat-completion model.
// One Generate call is one outbound request.
type Provider interface {
	// Generate sends the request and returns the text of the top completion.
	// A successful call with no completion text returns a Response whose
	// Text is empty; deciding what that means is left to the caller.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is an optional system prompt.
	System string

	// Messages is the conversation. Every capability in jmath sends a
	// single user message.
	Messages []Message

	// JSONObject asks the provider for a JSON-object-only reply when the
	// upstream supports it. Providers without such a mode ignore it.
	JSONObject bool

	// MaxTokens caps the completion length. Zero leaves it to the upstream.
	MaxTokens int

	// Temperature controls randomness. Zero leaves it to the upstream.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt wraps a single prompt string as a one-message request.
func UserPrompt(prompt string, jsonObject bool) Request {
	return Request{
		Messages:   []Message{{Role: RoleUser, Content: prompt}},
		JSONObject: jsonObject,
	}
}

// Response holds the model's output.
type Response struct {
	// Text is the message content of the first choice, verbatim.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
