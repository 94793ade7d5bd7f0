// Package colour provides colour parsing, WCAG contrast math, and alpha
// compositing for the scale engine.
package colour

import (
	"fmt"
	"regexp"
	"strconv"
)

// RGB represents an opaque colour in sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common sentinel colours.
var (
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 255, G: 255, B: 255}
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValidHex reports whether s is a 6-digit hex colour string ("#rrggbb").
// Shorthand (#rgb) and alpha (#rrggbbaa) forms are not accepted.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex parses a 6-digit hex colour string into an RGB value.
func ParseHex(s string) (RGB, error) {
	if !IsValidHex(s) {
		return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the colour as a hex string (e.g., "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBAString returns the CSS rgba() display string for the colour at the
// given opacity. The hue is preserved; only the alpha channel varies.
func (c RGB) RGBAString(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(alpha, 'g', -1, 64))
}
