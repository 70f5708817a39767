package tutor

// Capability identifies one of the four things jmath can ask the model.
type Capability int

const (
	Solve Capability = iota
	Explain
	Similar
	Visualize
)

var capabilityNames = [...]string{"Solve", "Explain", "Similar", "Visualize"}

func (c Capability) String() string {
	if c < 0 || int(c) >= len(capabilityNames) {
		return "Unknown"
	}
	return capabilityNames[c]
}

// Title is reported to the upstream as the calling application's name.
func (c Capability) Title() string {
	switch c {
	case Explain:
		return "J-Math (Explanation)"
	case Similar:
		return "J-Math (Similar Problems)"
	case Visualize:
		return "J-Math (Concept Map)"
	default:
		return "J-Math"
	}
}

// Purpose labels completion events in the audit log.
func (c Capability) Purpose() string {
	switch c {
	case Explain:
		return "explain"
	case Similar:
		return "similar"
	case Visualize:
		return "visualize"
	default:
		return "solve"
	}
}

// wantsJSON reports whether the capability's completion is parsed as JSON.
func (c Capability) wantsJSON() bool {
	return c == Solve || c == Similar
}
