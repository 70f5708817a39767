package llm

import (
	"context"
	"strings"
)

// NewDemoProvider returns a MockProvider that answers every capability with
// a fixed sample, chosen by the request title. It lets the server run
// without an API key (provider "mock").
func NewDemoProvider() *MockProvider {
	m := NewMockProvider()
	m.fallback = demoResponse
	return m
}

func demoResponse(ctx context.Context, _ Request) MockResponse {
	title := TitleFrom(ctx)
	switch {
	case strings.Contains(title, "Explanation"):
		return MockResponse{Text: demoExplanation}
	case strings.Contains(title, "Similar"):
		return MockResponse{Text: demoSimilar}
	case strings.Contains(title, "Concept Map"):
		return MockResponse{Text: demoDiagram}
	default:
		return MockResponse{Text: demoSolution}
	}
}

const demoSolution = "```json\n" + `{
  "solution": [
    {
      "step_number": 1,
      "description": "주어진 이차방정식 $x^2 - 5x + 6 = 0$ 을 인수분해할 수 있는지 확인합니다.",
      "core_concept": "이차방정식의 표준형"
    },
    {
      "step_number": 2,
      "description": "곱해서 $6$, 더해서 $-5$ 가 되는 두 수는 $-2$ 와 $-3$ 이므로 $$(x-2)(x-3) = 0$$ 입니다.",
      "core_concept": "인수분해"
    },
    {
      "step_number": 3,
      "description": "따라서 $x = 2$ 또는 $x = 3$ 입니다.",
      "core_concept": "근의 성질"
    }
  ]
}` + "\n```"

const demoExplanation = `### 인수분해

인수분해는 다항식을 두 개 이상의 다항식의 곱으로 나타내는 것입니다.

예를 들어 $$x^2 - 5x + 6 = (x-2)(x-3)$$ 입니다.`

const demoSimilar = "```json\n" + `{
  "similar_problems": [
    "$x^2 - 7x + 12 = 0$ 을 푸시오.",
    "$x^2 + x - 6 = 0$ 을 푸시오.",
    "$2x^2 - 8x + 6 = 0$ 을 푸시오."
  ]
}` + "\n```"

const demoDiagram = `graph TD
    A["이차방정식의 표준형"] --> B["인수분해"]
    B --> C["근의 성질"]`
