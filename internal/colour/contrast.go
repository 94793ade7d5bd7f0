package colour

import "math"

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). Meets WCAG AA standard for normal text at 4.5:1, large
// text at 3:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// TruncateRatio truncates a contrast ratio to two decimal places. Ratios are
// truncated rather than rounded before every threshold comparison so that a
// value like 4.499 can never pass the 4.5 bar.
func TruncateRatio(r float64) float64 {
	return math.Trunc(r*100) / 100
}
