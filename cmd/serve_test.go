package cmd

import (
	"context"
	"testing"

	"github.com/jmath/jmath/internal/config"
	"github.com/jmath/jmath/internal/logging"
)

func TestBuildProviderWithoutKey(t *testing.T) {
	cfg := config.Config{Provider: "openrouter"}

	p, err := buildProvider(context.Background(), cfg, nil, logging.Discard())
	if err != nil {
		t.Fatalf("missing key must not fail startup: %v", err)
	}
	if p != nil {
		t.Errorf("provider = %v, want nil", p)
	}
}

func TestBuildProviderMock(t *testing.T) {
	cfg := config.Config{Provider: "mock"}

	p, err := buildProvider(context.Background(), cfg, nil, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if p == nil {
		t.Fatal("expected a provider")
	}
}

func TestBuildProviderUnknown(t *testing.T) {
	cfg := config.Config{Provider: "nope"}

	if _, err := buildProvider(context.Background(), cfg, nil, logging.Discard()); err == nil {
		t.Error("expected an error for an unknown provider")
	}
}
