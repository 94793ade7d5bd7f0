// Package scale derives the eight accessible colour roles (Surface, High,
// Medium, Low, Heavy, Bold, BoldA11Y, Minimal) for each step of a 24-step
// lightness palette, with WCAG 2.0 contrast guarantees where the palette
// permits them.
package scale

// Step is an ordinal position in the palette's fixed lightness sequence,
// running from 200 (darkest permissible colour) to 2500 (lightest) in
// increments of 100. Steps are identifiers, not colours.
type Step int

// Sentinel steps. The contrasting colour for any surface is always one of
// these two, chosen by the surface's light/dark classification.
const (
	Darkest  Step = 200
	Lightest Step = 2500
)

// stepCount is the number of steps in the sequence.
const stepCount = 24

// Steps returns the full ordered step sequence, darkest to lightest.
func Steps() []Step {
	steps := make([]Step, 0, stepCount)
	for s := Darkest; s <= Lightest; s += 100 {
		steps = append(steps, s)
	}
	return steps
}

// Index returns the zero-based position of a step in the sequence, or -1 for
// a value outside it. Indices are the coordinate system all directional walks
// operate in.
func Index(s Step) int {
	if s < Darkest || s > Lightest || s%100 != 0 {
		return -1
	}
	return int(s-Darkest) / 100
}

// FromIndex returns the step at a zero-based index. Indices outside [0, 23]
// are clamped to the nearest boundary, never wrapped.
func FromIndex(i int) Step {
	return Step(clampIndex(i))*100 + Darkest
}

// clampIndex clamps an index to the valid [0, 23] range.
func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > stepCount-1 {
		return stepCount - 1
	}
	return i
}
