package colour

import "math"

// Blend composites fg over bg at the given opacity and returns the opaque
// result. Standard "over" operator: result = fg*alpha + bg*(1-alpha) per
// channel. Alpha is clamped to [0, 1].
func Blend(fg, bg RGB, alpha float64) RGB {
	alpha = math.Max(0, math.Min(1, alpha))

	over := func(f, b uint8) uint8 {
		v := float64(f)*alpha + float64(b)*(1-alpha)
		return uint8(math.Round(math.Max(0, math.Min(255, v))))
	}

	return RGB{
		R: over(fg.R, bg.R),
		G: over(fg.G, bg.G),
		B: over(fg.B, bg.B),
	}
}

// MinAlphaForContrast scans opacities from 1% to 100% in 1% increments and
// returns the smallest alpha at which fg blended over bg reaches the target
// contrast ratio against bg. Ratios are truncated before comparison, so an
// alpha is never accepted on a value that only rounds up to the target.
// ok is false when even full opacity falls short; the returned alpha is then
// 1.0 and callers are expected to look for a substitute foreground instead.
func MinAlphaForContrast(fg, bg RGB, target float64) (alpha float64, ok bool) {
	for i := 1; i <= 100; i++ {
		a := float64(i) / 100
		blended := Blend(fg, bg, a)
		if TruncateRatio(ContrastRatio(blended, bg)) >= target {
			return a, true
		}
	}
	return 1.0, false
}
