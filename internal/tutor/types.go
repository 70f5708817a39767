package tutor

import (
	"encoding/json"
	"fmt"
)

// SolutionStep is one step of a solution as the model is asked to write it.
// The server never decodes into this type; it passes the model's JSON
// through verbatim. Clients use it to render.
type SolutionStep struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
	CoreConcept string `json:"core_concept"`
}

// DecodeSteps decodes a solution payload.
func DecodeSteps(raw json.RawMessage) ([]SolutionStep, error) {
	var steps []SolutionStep
	if err := json.Unmarshal(raw, &steps); err != nil {
		return nil, fmt.Errorf("decode solution: %w", err)
	}
	return steps, nil
}

// DecodeProblems decodes a similar_problems payload.
func DecodeProblems(raw json.RawMessage) ([]string, error) {
	var problems []string
	if err := json.Unmarshal(raw, &problems); err != nil {
		return nil, fmt.Errorf("decode similar problems: %w", err)
	}
	return problems, nil
}

// CoreConcepts returns every step's core_concept in solving order,
// duplicates included.
func CoreConcepts(steps []SolutionStep) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.CoreConcept
	}
	return out
}
