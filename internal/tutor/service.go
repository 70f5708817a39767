// Package tutor turns a user request into one completion call and shapes
// the model's reply into the capability's result.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jmath/jmath/internal/extract"
	"github.com/jmath/jmath/internal/llm"
	"github.com/jmath/jmath/internal/prompt"
)

// Service runs the four capabilities against a Provider.
type Service struct {
	provider llm.Provider
	log      logrus.FieldLogger
}

// NewService creates a Service. provider may be nil when no API key is
// configured; every call then fails with llm.ErrNotConfigured after input
// validation, without touching the network.
func NewService(provider llm.Provider, log logrus.FieldLogger) *Service {
	return &Service{provider: provider, log: log}
}

// Solve returns the "solution" value of the model's JSON, byte for byte.
func (s *Service) Solve(ctx context.Context, problem string) (json.RawMessage, error) {
	if problem == "" {
		return nil, fmt.Errorf("%w: problem is required", ErrInvalidInput)
	}
	text, err := s.complete(ctx, Solve, prompt.Solve(problem))
	if err != nil {
		return nil, err
	}
	return s.resultKey(Solve, text, solutionSchema, "solution")
}

// Explain returns the model's explanation text unchanged.
func (s *Service) Explain(ctx context.Context, concept string) (string, error) {
	if concept == "" {
		return "", fmt.Errorf("%w: concept is required", ErrInvalidInput)
	}
	return s.complete(ctx, Explain, prompt.Explain(concept))
}

// GenerateSimilar returns the "similar_problems" value of the model's JSON,
// byte for byte. problem is not checked against any earlier solve.
func (s *Service) GenerateSimilar(ctx context.Context, problem string) (json.RawMessage, error) {
	if problem == "" {
		return nil, fmt.Errorf("%w: problem is required", ErrInvalidInput)
	}
	text, err := s.complete(ctx, Similar, prompt.Similar(problem))
	if err != nil {
		return nil, err
	}
	return s.resultKey(Similar, text, similarSchema, "similar_problems")
}

// VisualizeConcepts returns the model's Mermaid text unchanged. It is not
// checked for being valid Mermaid.
func (s *Service) VisualizeConcepts(ctx context.Context, concepts []string) (string, error) {
	if len(concepts) == 0 {
		return "", fmt.Errorf("%w: concepts must be a non-empty list", ErrInvalidInput)
	}
	return s.complete(ctx, Visualize, prompt.ConceptMap(concepts))
}

// complete performs exactly one provider call. Upstream errors are returned
// untouched so their status can be passed through.
func (s *Service) complete(ctx context.Context, c Capability, p string) (string, error) {
	if s.provider == nil {
		return "", llm.ErrNotConfigured
	}

	ctx = llm.WithTitle(llm.WithPurpose(ctx, c.Purpose()), c.Title())

	resp, err := s.provider.Generate(ctx, llm.UserPrompt(p, c.wantsJSON()))
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Text == "" {
		return "", fmt.Errorf("%s: %w", c, ErrEmptyCompletion)
	}
	return resp.Text, nil
}

func (s *Service) resultKey(c Capability, text string, schema *llm.Schema, key string) (json.RawMessage, error) {
	raw, ok := extract.Raw(text)
	if !ok {
		s.log.WithField("capability", c.String()).Warnf("no JSON in completion: %q", text)
		return nil, &ErrMalformed{Capability: c, Text: text, Err: errors.New("no parsable JSON")}
	}

	value, err := extract.Decode(raw)
	if err != nil {
		return nil, &ErrMalformed{Capability: c, Text: text, Err: err}
	}
	if err := llm.Validate(schema, value); err != nil {
		s.log.WithField("capability", c.String()).Warnf("completion lacks %q: %q", key, text)
		return nil, &ErrMalformed{Capability: c, Text: text, Err: err}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &ErrMalformed{Capability: c, Text: text, Err: err}
	}
	return obj[key], nil
}
