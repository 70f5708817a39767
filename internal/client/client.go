// Package client is a typed HTTP client for the jmath server API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/jmath/jmath/internal/tutor"
)

// DefaultBaseURL is where `jmath serve` listens unless configured otherwise.
const DefaultBaseURL = "http://localhost:3000"

// APIError is a non-2xx reply. Message is the server's "error" field, or
// the HTTP status text when the body had none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Client calls the four tutor endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Solve posts the problem and returns the decoded steps.
func (c *Client) Solve(ctx context.Context, problem string) ([]tutor.SolutionStep, error) {
	var resp struct {
		Solution json.RawMessage `json:"solution"`
	}
	if err := c.post(ctx, "/api/solve", map[string]string{"problem": problem}, &resp); err != nil {
		return nil, err
	}
	return tutor.DecodeSteps(resp.Solution)
}

// Explain returns the explanation of concept.
func (c *Client) Explain(ctx context.Context, concept string) (string, error) {
	var resp struct {
		Explanation string `json:"explanation"`
	}
	if err := c.post(ctx, "/api/explain", map[string]string{"concept": concept}, &resp); err != nil {
		return "", err
	}
	return resp.Explanation, nil
}

// GenerateSimilar returns practice problems similar to problem.
func (c *Client) GenerateSimilar(ctx context.Context, problem string) ([]string, error) {
	var resp struct {
		SimilarProblems json.RawMessage `json:"similar_problems"`
	}
	if err := c.post(ctx, "/api/generate-similar", map[string]string{"problem": problem}, &resp); err != nil {
		return nil, err
	}
	return tutor.DecodeProblems(resp.SimilarProblems)
}

// VisualizeConcepts returns Mermaid text relating concepts.
func (c *Client) VisualizeConcepts(ctx context.Context, concepts []string) (string, error) {
	var resp struct {
		DiagramSyntax string `json:"diagramSyntax"`
	}
	if err := c.post(ctx, "/api/visualize-concepts", map[string][]string{"concepts": concepts}, &resp); err != nil {
		return "", err
	}
	return resp.DiagramSyntax, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := gjson.GetBytes(data, "error").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
