package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jmath/jmath/internal/ui/theme"
)

// MenuItem is one selectable row.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a cursor. It only reacts to keys while
// Focused.
type Menu struct {
	Items    []MenuItem
	Selected int
	Focused  bool
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Len returns the number of items.
func (m Menu) Len() int {
	return len(m.Items)
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.Focused {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu. The cursor is only drawn while focused.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		if m.Focused && i == m.Selected {
			b.WriteString(theme.Selected.Render("▸ " + item.Label))
		} else {
			b.WriteString(theme.Unselected.Render("  " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
