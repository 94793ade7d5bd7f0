package scale

import (
	"math"

	"github.com/tonelab/tonelab/internal/colour"
)

// Direction classifies which family of contrasting colours a surface needs.
type Direction string

const (
	// DirectionDark means the surface is light and takes dark foregrounds
	// anchored at step 200.
	DirectionDark Direction = "dark"

	// DirectionLight means the surface is dark and takes light foregrounds
	// anchored at step 2500.
	DirectionLight Direction = "light"
)

// Contrasting returns the sentinel step supplying the base foreground colour
// for this direction.
func (d Direction) Contrasting() Step {
	if d == DirectionDark {
		return Darkest
	}
	return Lightest
}

// DirectionFor classifies a surface colour. A surface that white text cannot
// read on (contrast against pure white below 4.5:1) is light and needs dark
// foregrounds; any other surface is dark and needs light foregrounds. This
// one classification governs the sentinel choice for all eight roles.
func DirectionFor(surface colour.RGB) Direction {
	if colour.TruncateRatio(colour.ContrastRatio(surface, colour.White)) < aaNormal {
		return DirectionDark
	}
	return DirectionLight
}

// DefaultPrimaryStep seeds the Bold walks when the caller does not designate
// a primary step.
const DefaultPrimaryStep Step = 600

// heavyDarkCap is the lightest step Heavy may resolve to on a light surface.
const heavyDarkCap Step = 800

// GenerateScalesForStep derives the eight role colours for the surface at
// step. It returns nil when the palette has no valid colour at step; that is
// the only nil outcome in the engine, and callers must check it rather than
// substitute a default surface. The caller's palette is only read.
func GenerateScalesForStep(step Step, p Palette, primary Step) *StepScales {
	surface, ok := p.Colour(step)
	if !ok {
		return nil
	}
	if Index(primary) < 0 {
		primary = DefaultPrimaryStep
	}

	dir := DirectionFor(surface)
	work := withSentinel(p, dir)

	// Low feeds Medium, and the two Bold variants feed Heavy, so those run
	// first; everything else is independent.
	low := generateLow(surface, work, dir)
	bold := generateBold(surface, work, dir, primary, aaLarge)
	boldA11Y := generateBold(surface, work, dir, primary, aaNormal)

	return &StepScales{
		Surface:  opaqueResult(surface, surface, step),
		High:     generateHigh(surface, work, dir),
		Medium:   generateMedium(surface, work, dir, low),
		Low:      low,
		Heavy:    generateHeavy(surface, work, dir, primary, bold, boldA11Y),
		Bold:     bold,
		BoldA11Y: boldA11Y,
		Minimal:  generateMinimal(surface, work, step, dir),
	}
}

// GenerateAllScales derives role scales for every step of the palette. Each
// step is computed independently against the shared palette; steps without a
// valid surface colour map to nil entries, since partial palettes are
// expected input rather than an error.
func GenerateAllScales(p Palette, primary Step) map[Step]*StepScales {
	out := make(map[Step]*StepScales, stepCount)
	for _, s := range Steps() {
		out[s] = GenerateScalesForStep(s, p, primary)
	}
	return out
}

// opaqueResult builds the Result for a fully opaque colour against the
// surface.
func opaqueResult(c, surface colour.RGB, source Step) Result {
	ratio := colour.TruncateRatio(colour.ContrastRatio(c, surface))
	return Result{
		Hex:           c.Hex(),
		ContrastRatio: ratio,
		WCAG:          flagsForRatio(ratio),
		SourceStep:    source,
	}
}

// alphaResult builds the Result for a translucent foreground over the
// surface. Hex keeps the foreground hue at its alpha; contrast is always
// computed from the opaque blended equivalent.
func alphaResult(fg, surface colour.RGB, alpha float64, source Step) Result {
	blended := colour.Blend(fg, surface, alpha)
	ratio := colour.TruncateRatio(colour.ContrastRatio(blended, surface))
	return Result{
		Hex:           fg.RGBAString(alpha),
		BlendedHex:    blended.Hex(),
		Alpha:         alpha,
		ContrastRatio: ratio,
		WCAG:          flagsForRatio(ratio),
		SourceStep:    source,
	}
}

// generateHigh yields the contrasting colour at full opacity, no search.
func generateHigh(surface colour.RGB, work Palette, dir Direction) Result {
	cc, _ := work.Colour(dir.Contrasting())
	return opaqueResult(cc, surface, dir.Contrasting())
}

// generateLow yields the de-emphasised text colour: the contrasting colour at
// the smallest 1%-granularity opacity still reading at 4.5:1 on the surface.
// When the contrasting colour cannot reach 4.5:1 even fully opaque, the whole
// palette is scanned for the first qualifying substitute; failing that, the
// single best-contrast step is kept fully opaque with its WCAG flags showing
// the miss.
func generateLow(surface colour.RGB, work Palette, dir Direction) Result {
	ccStep := dir.Contrasting()
	cc, _ := work.Colour(ccStep)

	full := colour.TruncateRatio(colour.ContrastRatio(cc, surface))
	if full >= aaNormal {
		alpha, _ := colour.MinAlphaForContrast(cc, surface, aaNormal)
		return alphaResult(cc, surface, alpha, ccStep)
	}

	best := Result{}
	bestRatio := -1.0
	for _, s := range Steps() {
		c, ok := work.Colour(s)
		if !ok {
			continue
		}
		ratio := colour.TruncateRatio(colour.ContrastRatio(c, surface))
		if ratio >= aaNormal {
			return opaqueResult(c, surface, s)
		}
		if ratio > bestRatio {
			bestRatio = ratio
			best = opaqueResult(c, surface, s)
		}
	}
	return best
}

// generateMedium sits between High and Low: the same foreground, with
// opacity at the arithmetic midpoint between fully opaque and Low's resolved
// alpha, recomputed from the same call's Low result. A Low that fell back to
// an opaque substitute counts as alpha 1.0, which makes Medium opaque too.
func generateMedium(surface colour.RGB, work Palette, dir Direction, low Result) Result {
	ccStep := dir.Contrasting()
	cc, _ := work.Colour(ccStep)

	lowAlpha := low.Alpha
	if lowAlpha == 0 {
		lowAlpha = 1.0
	}
	alpha := math.Round((1.0+lowAlpha)/2*100) / 100
	if alpha >= 1.0 {
		return opaqueResult(cc, surface, ccStep)
	}
	return alphaResult(cc, surface, alpha, ccStep)
}

// generateBold walks the step index from the primary step toward the
// contrasting sentinel, one step at a time, and returns the first palette
// colour meeting the threshold (3:1 for Bold, 4.5:1 for BoldA11Y). Light
// surfaces walk down toward 200; dark surfaces first shift the start by the
// primary-dependent offset, then walk up toward 2500. Undefined steps are
// skipped, never treated as black or white. An exhausted walk falls back to
// the contrasting colour itself, even when that colour misses the threshold.
func generateBold(surface colour.RGB, work Palette, dir Direction, primary Step, threshold float64) Result {
	idx := Index(primary)
	delta := -1
	if dir == DirectionLight {
		idx = clampIndex(idx + lightStartOffset(primary))
		delta = 1
	}

	for ; idx >= 0 && idx < stepCount; idx += delta {
		s := FromIndex(idx)
		c, ok := work.Colour(s)
		if !ok {
			continue
		}
		if colour.TruncateRatio(colour.ContrastRatio(c, surface)) >= threshold {
			return opaqueResult(c, surface, s)
		}
	}

	cc, _ := work.Colour(dir.Contrasting())
	return opaqueResult(cc, surface, dir.Contrasting())
}

// lightStartOffset nudges a walk's starting index toward the light end
// before it begins. Lighter primaries need less of a head start.
func lightStartOffset(primary Step) int {
	switch {
	case primary >= 1900:
		return 0
	case primary >= 1300:
		return 1
	case primary >= 700:
		return 2
	default:
		return 3
	}
}

// generateHeavy yields the strongest fill colour. The two directions take
// distinct branches: light surfaces push the Bold step halfway toward 200,
// rounding the midpoint up to the next hundred, snapping to a defined step,
// and never resolving lighter than 800; dark surfaces reuse BoldA11Y
// outright unless it resolved more than 3 index positions from the offset
// primary, in which case step 2500 wins regardless.
func generateHeavy(surface colour.RGB, work Palette, dir Direction, primary Step, bold, boldA11Y Result) Result {
	if dir == DirectionLight {
		newBase := clampIndex(Index(primary) + lightStartOffset(primary))
		resolved := Index(boldA11Y.SourceStep)
		if resolved >= 0 && abs(resolved-newBase) > 3 {
			cc, _ := work.Colour(Lightest)
			return opaqueResult(cc, surface, Lightest)
		}
		return boldA11Y
	}

	b := bold.SourceStep
	if Index(b) < 0 {
		b = Darkest
	}
	mid := Step(math.Ceil(float64(b+Darkest)/2/100)) * 100
	snapped := nearestDefined(work, mid)
	if snapped > heavyDarkCap {
		snapped = nearestDefinedAtMost(work, heavyDarkCap)
	}
	c, _ := work.Colour(snapped)
	return opaqueResult(c, surface, snapped)
}

// generateMinimal picks the decorative near-surface colour exactly two index
// positions from the surface: toward the dark end on light surfaces, toward
// the light end on dark surfaces, clamped at the sequence boundary. No
// contrast threshold applies; the role is low-contrast on purpose. Undefined
// steps are skipped in the same direction.
func generateMinimal(surface colour.RGB, work Palette, step Step, dir Direction) Result {
	delta := -1
	if dir == DirectionLight {
		delta = 1
	}
	target := clampIndex(Index(step) + 2*delta)

	for i := target; i >= 0 && i < stepCount; i += delta {
		if c, ok := work.Colour(FromIndex(i)); ok {
			return opaqueResult(c, surface, FromIndex(i))
		}
	}
	// Unreachable with a sentinel-bearing working palette; kept so the
	// generator stays total.
	return Result{}
}

// nearestDefined snaps a step to the closest palette step carrying a valid
// colour, preferring the darker side on ties.
func nearestDefined(p Palette, target Step) Step {
	idx := clampIndex(Index(target))
	for d := 0; d < stepCount; d++ {
		if lo := idx - d; lo >= 0 {
			if _, ok := p.Colour(FromIndex(lo)); ok {
				return FromIndex(lo)
			}
		}
		if hi := idx + d; hi < stepCount {
			if _, ok := p.Colour(FromIndex(hi)); ok {
				return FromIndex(hi)
			}
		}
	}
	return target
}

// nearestDefinedAtMost walks down from limit to the nearest defined step at
// or below it.
func nearestDefinedAtMost(p Palette, limit Step) Step {
	for i := Index(limit); i >= 0; i-- {
		if _, ok := p.Colour(FromIndex(i)); ok {
			return FromIndex(i)
		}
	}
	return limit
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
