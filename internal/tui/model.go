// Package tui is a terminal client for a running jmath server. It mirrors
// the web page: each action has its own loading flag, results are applied
// as they arrive and nothing is cancelled.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/jmath/jmath/internal/client"
	"github.com/jmath/jmath/internal/tutor"
	"github.com/jmath/jmath/internal/ui/components"
)

// API is the subset of client.Client the model needs.
type API interface {
	Solve(ctx context.Context, problem string) ([]tutor.SolutionStep, error)
	Explain(ctx context.Context, concept string) (string, error)
	GenerateSimilar(ctx context.Context, problem string) ([]string, error)
	VisualizeConcepts(ctx context.Context, concepts []string) (string, error)
}

var _ API = (*client.Client)(nil)

type focus int

const (
	focusInput focus = iota
	focusSteps
	focusSimilar
)

const placeholder = "예: x^2 - 5x + 6 = 0의 해를 구하시오."

// Model is the root Bubble Tea model.
type Model struct {
	ctx context.Context
	api API

	input    components.TextInput
	focus    focus
	width    int
	height   int
	frame    int
	ticking  bool
	original string

	steps    []tutor.SolutionStep
	stepMenu components.Menu
	similar  []string
	simMenu  components.Menu
	diagram  string
	err      string

	solving     bool
	explaining  bool
	generating  bool
	visualizing bool

	modalOpen   bool
	concept     string
	explanation string
}

// New creates a Model that talks to api. ctx bounds every request.
func New(ctx context.Context, api API) Model {
	return Model{
		ctx:   ctx,
		api:   api,
		input: components.NewTextInput(placeholder, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case spinnerTickMsg:
		if !m.loading() {
			m.ticking = false
			return m, nil
		}
		m.frame++
		return m, spinnerTick()

	case solvedMsg:
		m.solving = false
		if msg.err != nil {
			m.err = errText(msg.err)
			return m, nil
		}
		m.setSteps(msg.steps)
		if len(m.steps) > 0 {
			m.setFocus(focusSteps)
		}
		return m, nil

	case explainRequestMsg:
		return m.explain(msg.concept)

	case explainedMsg:
		m.explaining = false
		if msg.err != nil {
			m.explanation = fmt.Sprintf("'%s'에 대한 설명을 불러오는 데 실패했습니다: %s", msg.concept, errText(msg.err))
			return m, nil
		}
		m.explanation = msg.explanation
		return m, nil

	case similarMsg:
		m.generating = false
		if msg.err != nil {
			m.err = errText(msg.err)
			return m, nil
		}
		m.setSimilar(msg.problems)
		return m, nil

	case pickSimilarMsg:
		m.input.SetValue(msg.problem)
		m.clearAllOutputs()
		return m, m.setFocus(focusInput)

	case diagramMsg:
		m.visualizing = false
		if msg.err != nil {
			m.err = errText(msg.err)
			return m, nil
		}
		m.diagram = msg.diagram
		return m, nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modalOpen {
		switch key {
		case "esc", "enter", "q":
			m.modalOpen = false
		}
		return m, nil
	}

	switch key {
	case "tab":
		return m, m.setFocus(m.nextFocus())
	case "esc":
		return m, m.setFocus(focusInput)
	}

	switch m.focus {
	case focusInput:
		if key == "enter" {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case focusSteps, focusSimilar:
		switch key {
		case "s":
			return m.generateSimilar()
		case "v":
			return m.visualize()
		}
		var cmd tea.Cmd
		if m.focus == focusSteps {
			m.stepMenu, cmd = m.stepMenu.Update(msg)
		} else {
			m.simMenu, cmd = m.simMenu.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.input.Blank() || m.solving {
		return m, nil
	}
	problem := m.input.Value()

	m.solving = true
	m.clearAllOutputs()
	m.original = problem
	spin := m.startSpinner()
	return m, tea.Batch(solveCmd(m.ctx, m.api, problem), spin)
}

func (m Model) explain(concept string) (tea.Model, tea.Cmd) {
	if m.solving || m.explaining {
		return m, nil
	}
	m.concept = concept
	m.modalOpen = true
	m.explaining = true
	m.explanation = ""
	spin := m.startSpinner()
	return m, tea.Batch(explainCmd(m.ctx, m.api, concept), spin)
}

func (m Model) generateSimilar() (tea.Model, tea.Cmd) {
	if len(m.steps) == 0 || m.solving || m.generating {
		return m, nil
	}
	m.generating = true
	m.err = ""
	m.diagram = ""
	spin := m.startSpinner()
	return m, tea.Batch(similarCmd(m.ctx, m.api, m.original), spin)
}

func (m Model) visualize() (tea.Model, tea.Cmd) {
	if len(m.steps) == 0 || m.solving || m.visualizing {
		return m, nil
	}
	m.visualizing = true
	m.err = ""
	m.setSimilar(nil)
	concepts := tutor.CoreConcepts(m.steps)
	spin := m.startSpinner()
	return m, tea.Batch(diagramCmd(m.ctx, m.api, concepts), spin)
}

func (m *Model) clearAllOutputs() {
	m.setSteps(nil)
	m.err = ""
	m.setSimilar(nil)
	m.diagram = ""
}

func (m *Model) setSteps(steps []tutor.SolutionStep) {
	m.steps = steps
	items := make([]components.MenuItem, len(steps))
	for i, s := range steps {
		concept := s.CoreConcept
		items[i] = components.MenuItem{
			Label: concept,
			Action: func() tea.Cmd {
				return func() tea.Msg { return explainRequestMsg{concept: concept} }
			},
		}
	}
	m.stepMenu = components.NewMenu(items)
	m.stepMenu.Focused = m.focus == focusSteps
	if len(steps) == 0 && m.focus == focusSteps {
		m.setFocus(focusInput)
	}
}

func (m *Model) setSimilar(problems []string) {
	m.similar = problems
	items := make([]components.MenuItem, len(problems))
	for i, p := range problems {
		problem := p
		items[i] = components.MenuItem{
			Label: problem,
			Action: func() tea.Cmd {
				return func() tea.Msg { return pickSimilarMsg{problem: problem} }
			},
		}
	}
	m.simMenu = components.NewMenu(items)
	m.simMenu.Focused = m.focus == focusSimilar
	if len(problems) == 0 && m.focus == focusSimilar {
		m.setFocus(focusInput)
	}
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.stepMenu.Focused = f == focusSteps
	m.simMenu.Focused = f == focusSimilar
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m Model) nextFocus() focus {
	order := []focus{focusInput}
	if len(m.steps) > 0 {
		order = append(order, focusSteps)
	}
	if len(m.similar) > 0 {
		order = append(order, focusSimilar)
	}
	for i, f := range order {
		if f == m.focus {
			return order[(i+1)%len(order)]
		}
	}
	return focusInput
}

func (m Model) loading() bool {
	return m.solving || m.explaining || m.generating || m.visualizing
}

// startSpinner must be called after the loading flag is set.
func (m *Model) startSpinner() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return spinnerTick()
}

// errText prefers the server's own message over the transport error.
func errText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// Run starts the Bubble Tea program against api.
func Run(ctx context.Context, api API) error {
	_, err := tea.NewProgram(New(ctx, api), tea.WithContext(ctx)).Run()
	return err
}
