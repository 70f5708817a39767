package components

import (
	"image/color"

	"github.com/jmath/jmath/internal/ui/theme"
)

// Button is a labelled action with a busy label shown while its request is
// in flight.
type Button struct {
	Key       string
	Label     string
	BusyLabel string
	Color     color.Color
	Busy      bool
	Disabled  bool
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Busy && b.BusyLabel != "" {
		label = b.BusyLabel
	}
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}

	if b.Disabled || b.Busy {
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive(b.Color).Render(label)
}
