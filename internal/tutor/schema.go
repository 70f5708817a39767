package tutor

import "github.com/jmath/jmath/internal/llm"

// resultSchema requires an object whose key is present and not a JSON
// falsy value (null, false, 0, "").
func resultSchema(name, key string) *llm.Schema {
	return &llm.Schema{
		Name: name,
		Definition: map[string]any{
			"type":     "object",
			"required": []any{key},
			"properties": map[string]any{
				key: map[string]any{
					"not": map[string]any{"enum": []any{nil, false, 0, ""}},
				},
			},
		},
	}
}

var (
	solutionSchema = resultSchema("solve-result", "solution")
	similarSchema  = resultSchema("similar-result", "similar_problems")
)
