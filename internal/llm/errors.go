package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrNotConfigured is returned when no provider can be built because its
// API key is missing.
var ErrNotConfigured = errors.New("LLM provider is not configured")

// ErrUpstream is a non-success reply from the completion API. StatusCode
// and Message are the upstream's own and are meant to be passed through.
type ErrUpstream struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

func (e *ErrUpstream) Unwrap() error { return e.Err }

// newUpstreamError fills Message with the HTTP status text when the
// upstream did not supply one.
func newUpstreamError(status int, message string, err error) *ErrUpstream {
	if message == "" {
		message = http.StatusText(status)
	}
	return &ErrUpstream{StatusCode: status, Message: message, Err: err}
}

// upstreamMessage returns error.message from an upstream error body, or ""
// when the body carries none.
func upstreamMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	return gjson.GetBytes(body, "error.message").String()
}

// ErrRateLimit is an upstream 429. It unwraps to the *ErrUpstream so the
// status still passes through to the caller.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Upstream   *ErrUpstream
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Upstream)
	}
	return fmt.Sprintf("rate limited: %v", e.Upstream)
}

func (e *ErrRateLimit) Unwrap() error { return e.Upstream }

// parseRetryAfter reads a Retry-After header value: delay seconds or an
// HTTP date. Missing, malformed or past values yield 0.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil && t.After(now) {
		return t.Sub(now)
	}
	return 0
}

// ErrProviderUnavailable indicates the provider could not be reached at all
// (network failure, timeout, canceled request).
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates a JSON value that does not conform to the
// expected schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
