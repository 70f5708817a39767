package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmath/jmath/internal/ui/components"
	"github.com/jmath/jmath/internal/ui/layout"
	"github.com/jmath/jmath/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the whole screen, or "" before the first resize.
func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.status(), m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	var content string
	if m.modalOpen {
		contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.renderModal())
	} else {
		content = m.renderBody()
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m Model) status() string {
	if !m.loading() {
		return ""
	}
	return spinnerFrames[m.frame%len(spinnerFrames)] + " "
}

func (m Model) spinner() string {
	return theme.ConceptBadge.Render(spinnerFrames[m.frame%len(spinnerFrames)])
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if w > 96 {
		w = 96
	}
	return w
}

func (m Model) renderBody() string {
	width := m.cardWidth()
	var sections []string

	solveLabel := "풀어보기"
	if m.solving {
		solveLabel = m.spinner() + " AI가 풀이 중..."
	}
	sections = append(sections,
		theme.Card.Width(width).Render(m.input.View()),
		theme.Hint.Render("  Enter: "+solveLabel),
	)

	if m.err != "" {
		sections = append(sections, theme.ErrorCard.Width(width).Render(
			lipgloss.NewStyle().Bold(true).Render("오류 발생")+"\n"+m.err,
		))
	}

	if len(m.steps) > 0 {
		sections = append(sections, m.renderSolution(width))
	}

	if len(m.similar) > 0 {
		sections = append(sections, theme.Card.Width(width).Render(
			theme.SectionTitle.Render("유사 문제")+"\n"+strings.TrimRight(m.simMenu.View(), "\n"),
		))
	}

	if m.visualizing || m.diagram != "" {
		body := m.diagram
		if m.visualizing {
			body = m.spinner() + " 분석 중..."
		}
		sections = append(sections, theme.Card.Width(width).Render(
			theme.SectionTitle.Render("개념 관계도")+"\n"+body,
		))
	}

	return strings.Join(sections, "\n")
}

func (m Model) renderSolution(width int) string {
	var b strings.Builder
	b.WriteString(theme.SectionTitle.Render("풀이 결과"))
	b.WriteString("\n")

	descWidth := width - 10
	if descWidth < 20 {
		descWidth = 20
	}
	for i, s := range m.steps {
		desc := lipgloss.NewStyle().Width(descWidth).Render(s.Description)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			theme.StepNumber.Render(fmt.Sprint(s.StepNumber)), " ", desc))
		b.WriteString("\n")

		badge := fmt.Sprintf("궁금해요 (%s)", s.CoreConcept)
		if m.focus == focusSteps && i == m.stepMenu.Selected {
			b.WriteString("    " + theme.Selected.Render("▸ "+badge))
		} else {
			b.WriteString("      " + theme.ConceptBadge.Render(badge))
		}
		b.WriteString("\n\n")
	}

	similar := components.Button{
		Key: "s", Label: "유사 문제로 연습하기", BusyLabel: "생성 중...",
		Color: theme.Secondary, Busy: m.generating, Disabled: m.solving,
	}
	diagram := components.Button{
		Key: "v", Label: "개념 관계 보기", BusyLabel: "분석 중...",
		Color: theme.Accent, Busy: m.visualizing, Disabled: m.solving,
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, similar.View(), " ", diagram.View()))

	return theme.Card.Width(width).Render(b.String())
}

func (m Model) renderModal() string {
	width := m.cardWidth() - 8
	if width < 30 {
		width = 30
	}

	title := lipgloss.NewStyle().Foreground(theme.Concept).Bold(true).
		Render(fmt.Sprintf("'%s'에 대한 설명", m.concept))

	body := m.explanation
	if m.explaining {
		body = m.spinner()
	}

	return theme.Modal.Width(width).Render(
		title + "\n\n" + lipgloss.NewStyle().Width(width-6).Render(body) + "\n\n" + theme.Hint.Render("Esc: 닫기"),
	)
}

func (m Model) keyHints() []layout.KeyHint {
	quit := layout.KeyHint{Key: "Ctrl+C", Description: "종료"}
	if m.modalOpen {
		return []layout.KeyHint{{Key: "Esc", Description: "닫기"}, quit}
	}

	switch m.focus {
	case focusSteps:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "단계 선택"},
			{Key: "Enter", Description: "궁금해요"},
			{Key: "s", Description: "유사 문제"},
			{Key: "v", Description: "개념 관계"},
			{Key: "Tab", Description: "이동"},
			quit,
		}
	case focusSimilar:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "문제 선택"},
			{Key: "Enter", Description: "이 문제 풀기"},
			{Key: "Tab", Description: "이동"},
			quit,
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "풀어보기"},
		{Key: "Tab", Description: "결과로 이동"},
		quit,
	}
}
