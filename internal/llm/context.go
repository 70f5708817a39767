package llm

import "context"

type contextKey string

const (
	purposeKey   contextKey = "llm_purpose"
	titleKey     contextKey = "llm_title"
	requestIDKey contextKey = "llm_request_id"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithTitle attaches the application title reported to the upstream
// (OpenRouter's X-Title header).
func WithTitle(ctx context.Context, title string) context.Context {
	return context.WithValue(ctx, titleKey, title)
}

// TitleFrom extracts the application title, or "" if none was set.
func TitleFrom(ctx context.Context) string {
	if v, ok := ctx.Value(titleKey).(string); ok {
		return v
	}
	return ""
}

// WithRequestID attaches the inbound HTTP request id so that events can be
// correlated with access log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom extracts the request id, or "" if none was set.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
