package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jmath/jmath/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	CompactWidthThreshold = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"터미널 창이 너무 작습니다.\n\n최소 %d x %d\n현재 %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the title bar. The tagline is dropped on narrow
// terminals.
func RenderHeader(status string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(" J-Math")
	if !IsCompactWidth(width) {
		left += theme.Subtitle.Render("  AI 튜터와 함께하는 개인화된 수학 학습 플랫폼")
	}

	right := lipgloss.NewStyle().
		Foreground(theme.Concept).
		Render(status)

	innerWidth := width - 4
	if innerWidth < 0 {
		innerWidth = 0
	}
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(" " + strings.Join(parts, "   "))
}

// RenderFrame composes header, content and footer. Content taller than the
// space between them is cut from the top so the newest output stays
// visible.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	lines := strings.Split(content, "\n")
	if len(lines) > contentHeight {
		lines = lines[len(lines)-contentHeight:]
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(strings.Join(lines, "\n"))

	return header + "\n" + body + "\n" + footer
}
