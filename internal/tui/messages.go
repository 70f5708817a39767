package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jmath/jmath/internal/tutor"
)

// solvedMsg carries the result of a solve request.
type solvedMsg struct {
	steps []tutor.SolutionStep
	err   error
}

// explainRequestMsg asks for the explanation of a step's concept.
type explainRequestMsg struct {
	concept string
}

// explainedMsg carries the result of an explain request.
type explainedMsg struct {
	concept     string
	explanation string
	err         error
}

// similarMsg carries the result of a similar-problems request.
type similarMsg struct {
	problems []string
	err      error
}

// pickSimilarMsg moves a similar problem into the input.
type pickSimilarMsg struct {
	problem string
}

// diagramMsg carries the result of a concept-map request.
type diagramMsg struct {
	diagram string
	err     error
}

// spinnerTickMsg animates loading indicators.
type spinnerTickMsg time.Time

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func solveCmd(ctx context.Context, api API, problem string) tea.Cmd {
	return func() tea.Msg {
		steps, err := api.Solve(ctx, problem)
		return solvedMsg{steps: steps, err: err}
	}
}

func explainCmd(ctx context.Context, api API, concept string) tea.Cmd {
	return func() tea.Msg {
		explanation, err := api.Explain(ctx, concept)
		return explainedMsg{concept: concept, explanation: explanation, err: err}
	}
}

func similarCmd(ctx context.Context, api API, problem string) tea.Cmd {
	return func() tea.Msg {
		problems, err := api.GenerateSimilar(ctx, problem)
		return similarMsg{problems: problems, err: err}
	}
}

func diagramCmd(ctx context.Context, api API, concepts []string) tea.Cmd {
	return func() tea.Msg {
		diagram, err := api.VisualizeConcepts(ctx, concepts)
		return diagramMsg{diagram: diagram, err: err}
	}
}
