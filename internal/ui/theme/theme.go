package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, the same dark slate and accent colors as the web page.
var (
	Primary   = lipgloss.Color("#2563EB") // Blue, solve
	Secondary = lipgloss.Color("#16A34A") // Green, similar problems
	Accent    = lipgloss.Color("#9333EA") // Purple, concept map
	Concept   = lipgloss.Color("#67E8F9") // Cyan, concept badges and explanations
	Error     = lipgloss.Color("#FECACA")
	ErrorBg   = lipgloss.Color("#7F1D1D")
	Text      = lipgloss.Color("#F3F4F6")
	TextDim   = lipgloss.Color("#9CA3AF")
	BgDark    = lipgloss.Color("#111827")
	BgCard    = lipgloss.Color("#1F2937")
	Border    = lipgloss.Color("#374151")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	SectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			MarginBottom(1)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	ErrorCard = lipgloss.NewStyle().
			Foreground(Error).
			Background(ErrorBg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#B91C1C")).
			Padding(0, 1)

	Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Concept).
		Padding(1, 2)
)

// Solution steps
var (
	StepNumber = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	ConceptBadge = lipgloss.NewStyle().
			Foreground(Concept)

	Selected = lipgloss.NewStyle().
			Foreground(Concept).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Buttons
var (
	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// ButtonActive returns the enabled style for a button drawn in c.
func ButtonActive(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(c).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Bold(true).
		Padding(0, 2)
}
