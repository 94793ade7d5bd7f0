package scale

// Result is the generated colour for one role on one surface.
type Result struct {
	// Hex is the colour to apply. Roles carrying opacity use an rgba()
	// display string here instead of a plain hex value.
	Hex string `json:"hex"`

	// BlendedHex is the fully opaque equivalent used for contrast
	// computation when Hex carries opacity; empty otherwise.
	BlendedHex string `json:"blendedHex,omitempty"`

	// Alpha is the foreground opacity in (0, 1]. Zero means the role is
	// fully opaque; the alpha search never yields less than 1%.
	Alpha float64 `json:"alpha,omitempty"`

	// ContrastRatio of the effective colour against the surface, truncated
	// to two decimal places.
	ContrastRatio float64 `json:"contrastRatio"`

	// WCAG holds the pass/fail flags derived from ContrastRatio.
	WCAG WCAGFlags `json:"wcag"`

	// SourceStep is the palette step that supplied the underlying colour;
	// zero when no step applies.
	SourceStep Step `json:"sourceStep,omitempty"`
}

// StepScales holds the eight role results for one surface step.
type StepScales struct {
	Surface  Result `json:"surface"`
	High     Result `json:"high"`
	Medium   Result `json:"medium"`
	Low      Result `json:"low"`
	Heavy    Result `json:"heavy"`
	Bold     Result `json:"bold"`
	BoldA11Y Result `json:"boldA11Y"`
	Minimal  Result `json:"minimal"`
}

// RoleNames lists the eight roles in presentation order.
var RoleNames = []string{"surface", "high", "medium", "low", "heavy", "bold", "boldA11Y", "minimal"}

// Role returns the result for the named role. ok is false for unknown names.
func (s *StepScales) Role(name string) (Result, bool) {
	switch name {
	case "surface":
		return s.Surface, true
	case "high":
		return s.High, true
	case "medium":
		return s.Medium, true
	case "low":
		return s.Low, true
	case "heavy":
		return s.Heavy, true
	case "bold":
		return s.Bold, true
	case "boldA11Y":
		return s.BoldA11Y, true
	case "minimal":
		return s.Minimal, true
	}
	return Result{}, false
}
