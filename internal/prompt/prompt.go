// Package prompt builds the instruction strings sent to the completion
// model. User input is interpolated as-is; the templates rely on the model
// to treat it as inert content.
package prompt

import (
	"fmt"
	"strings"
)

const solveTemplate = `You are a structured math problem solver API. Your response must be ONLY a single JSON object. Do not include any text outside of the JSON.
Your task is to solve the following math problem step-by-step and return it in a specific JSON format.

The JSON object must have a single key "solution", which is an array of step objects.
Each step object in the "solution" array must have three keys:
1. "step_number": An integer representing the step number.
2. "description": A string explaining the action taken in this step, in Korean. Use LaTeX for math formulas ($inline$ or $$block$$).
3. "core_concept": A short, simple string (in Korean) naming the key mathematical concept or formula used in this step. This will be used for a "Why?" button.

Example for "x^2 - 5x + 6 = 0":
{
  "solution": [
    {
      "step_number": 1,
      "description": "주어진 이차방정식은 $ax^2 + bx + c = 0$ 꼴입니다. 계수는 $a=1, b=-5, c=6$ 입니다.",
      "core_concept": "이차방정식의 표준형"
    },
    {
      "step_number": 2,
      "description": "곱해서 6이 되고 더해서 -5가 되는 두 수, -2와 -3을 찾아 인수분해합니다. $(x - 2)(x - 3) = 0$",
      "core_concept": "인수분해"
    },
    {
      "step_number": 3,
      "description": "각 인수가 0이 되는 $x$값을 찾습니다. $x-2=0$ 또는 $x-3=0$ 이므로, 해는 $x=2, x=3$ 입니다.",
      "core_concept": "영인자 원리 (Zero-Product Property)"
    }
  ]
}

Now, solve the following problem and provide the response in the specified JSON format ONLY.

Problem:
%s`

const explainTemplate = `You are a helpful math tutor. Explain the following mathematical concept to a student in a simple and easy-to-understand way.
- Your response must be in Korean.
- Use Markdown for formatting if needed.
- Use LaTeX for formulas if needed ($inline$ or $$block$$).

Concept to explain:
"%s"`

const similarTemplate = `You are a math problem generator. Based on the original problem below, create %d new, similar problems that test the same core concepts.

Your response MUST be ONLY a single JSON object. Do not include any text outside the JSON.
The JSON object must have a single key "similar_problems", which is an array of strings. Each string is a new math problem.
The new problems should be in Korean. Use LaTeX for math formulas.

Example for "x^2 - 5x + 6 = 0":
{
  "similar_problems": [
    "이차방정식 $x^2 + 2x - 8 = 0$의 두 근을 구하시오.",
    "방정식 $2x^2 - 7x + 3 = 0$의 해를 찾으시오.",
    "$x(x-4) = 5$ 를 만족하는 모든 $x$의 값을 구하시오."
  ]
}

Original Problem:
"%s"

Now, generate %d similar problems in the specified JSON format ONLY.`

const conceptMapTemplate = `You are a system that generates Mermaid.js graph definitions.
Based on the list of mathematical concepts provided, create a simple Mermaid.js 'graph TD' (Top-Down) definition showing the relationships between them.

- The graph should illustrate how the concepts build on or relate to each other.
- The entire response MUST BE ONLY the Mermaid.js graph definition text. Do not include any explanations or markdown fences.
- The language for node labels must be Korean.

Example for concepts: "이차방정식의 표준형", "인수분해", "영인자 원리":
graph TD;
    A["이차방정식의 표준형"] --> B["인수분해"];
    B --> C["영인자 원리"];
    C --> D{해 구하기};

Concepts to visualize:
"%s"

Now, generate the Mermaid.js graph definition ONLY.`

// SimilarCount is how many practice problems Similar asks for.
const SimilarCount = 3

// Solve asks for a step-by-step solution as {"solution": [...]}.
func Solve(problem string) string {
	return fmt.Sprintf(solveTemplate, problem)
}

// Explain asks for a Korean Markdown explanation of one concept.
func Explain(concept string) string {
	return fmt.Sprintf(explainTemplate, concept)
}

// Similar asks for practice problems as {"similar_problems": [...]}.
func Similar(problem string) string {
	return fmt.Sprintf(similarTemplate, SimilarCount, problem, SimilarCount)
}

// ConceptMap asks for a bare Mermaid "graph TD" definition relating the
// concepts, which are joined with ", ".
func ConceptMap(concepts []string) string {
	return fmt.Sprintf(conceptMapTemplate, strings.Join(concepts, ", "))
}
