package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
	}{
		{"gpt-4o-mini", true},
		{"google/gemini-pro", true},
		{"openai/gpt-4o-mini", true},
		{"google/gemini-2.5-flash", true},
		{"someone/unknown-model", false},
		{"", false},
	}
	for _, tt := range tests {
		got := LookupCost(tt.model)
		if (got != nil) != tt.found {
			t.Errorf("LookupCost(%q) found = %v, want %v", tt.model, got != nil, tt.found)
		}
	}
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 2, OutputPerMTok: 8}
	got := c.Cost(500_000, 250_000)
	if math.Abs(got-3.0) > 1e-9 {
		t.Fatalf("cost = %v, want 3.0", got)
	}
}
