package scale

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/tonelab/tonelab/internal/colour"
)

// Palette maps steps to 6-digit hex colours. Partial palettes are valid
// input everywhere in the engine; a missing entry or an empty string means
// the step is undefined. The engine never mutates a caller's palette.
type Palette map[Step]string

// Colour returns the parsed colour at a step. ok is false when the step is
// undefined or carries a malformed hex string; callers treat both the same
// way and skip the step.
func (p Palette) Colour(s Step) (colour.RGB, bool) {
	hex, exists := p[s]
	if !exists || !colour.IsValidHex(hex) {
		return colour.RGB{}, false
	}
	c, err := colour.ParseHex(hex)
	if err != nil {
		return colour.RGB{}, false
	}
	return c, true
}

// withSentinel returns a copy of p guaranteed to carry a usable contrasting
// colour at the sentinel step for dir, injecting pure black or white when
// the real one is undefined or invalid. The caller's palette is never
// written; the copy is discarded after the generating call.
func withSentinel(p Palette, dir Direction) Palette {
	work := make(Palette, len(p)+1)
	for s, hex := range p {
		work[s] = hex
	}

	sentinel := dir.Contrasting()
	if _, ok := work.Colour(sentinel); !ok {
		if dir == DirectionDark {
			work[sentinel] = colour.Black.Hex()
		} else {
			work[sentinel] = colour.White.Hex()
		}
	}
	return work
}

// Document is the on-disk palette file format:
//
//	{"primaryStep": 600, "steps": {"200": "#0b0b0f", ...}}
//
// primaryStep is optional and defaults to 600.
type Document struct {
	PrimaryStep int               `json:"primaryStep,omitempty"`
	Steps       map[string]string `json:"steps"`
}

// LoadFile reads a palette document from path. Step keys must be values from
// the 24-step sequence; colour values are carried as-is, so a partial or even
// invalid colour survives loading and is handled by the engine per step.
func LoadFile(path string) (Palette, Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read palette file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("failed to parse palette file: %w", err)
	}

	palette := make(Palette, len(doc.Steps))
	for key, hex := range doc.Steps {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid step key %q in palette file", key)
		}
		if Index(Step(n)) < 0 {
			return nil, 0, fmt.Errorf("step %d is outside the 200-2500 sequence", n)
		}
		palette[Step(n)] = hex
	}

	primary := DefaultPrimaryStep
	if doc.PrimaryStep != 0 {
		if Index(Step(doc.PrimaryStep)) < 0 {
			return nil, 0, fmt.Errorf("primary step %d is outside the 200-2500 sequence", doc.PrimaryStep)
		}
		primary = Step(doc.PrimaryStep)
	}

	return palette, primary, nil
}

// SaveFile writes a palette document to path.
func SaveFile(path string, p Palette, primary Step) error {
	doc := Document{
		PrimaryStep: int(primary),
		Steps:       make(map[string]string, len(p)),
	}
	for s, hex := range p {
		doc.Steps[strconv.Itoa(int(s))] = hex
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	return nil
}
