package scale

// WCAG 2.0 contrast thresholds. Normal text needs 4.5:1 for AA and 7:1 for
// AAA; large text and graphical objects need 3:1 for AA, large text 4.5:1
// for AAA.
const (
	aaNormal  = 4.5
	aaaNormal = 7.0
	aaLarge   = 3.0
)

// TextFlags holds the AA/AAA pass flags for one text size.
type TextFlags struct {
	AA  bool `json:"aa"`
	AAA bool `json:"aaa"`
}

// GraphicsFlags holds the pass flag for graphical objects and UI components.
type GraphicsFlags struct {
	AA bool `json:"aa"`
}

// WCAGFlags reports which WCAG contrast thresholds a ratio satisfies.
type WCAGFlags struct {
	NormalText TextFlags     `json:"normalText"`
	LargeText  TextFlags     `json:"largeText"`
	Graphics   GraphicsFlags `json:"graphics"`
}

// flagsForRatio derives the WCAG flags from an already-truncated ratio. The
// flags are exactly the threshold comparisons, nothing more.
func flagsForRatio(ratio float64) WCAGFlags {
	return WCAGFlags{
		NormalText: TextFlags{AA: ratio >= aaNormal, AAA: ratio >= aaaNormal},
		LargeText:  TextFlags{AA: ratio >= aaLarge, AAA: ratio >= aaNormal},
		Graphics:   GraphicsFlags{AA: ratio >= aaLarge},
	}
}
