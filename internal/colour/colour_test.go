package colour

import "testing"

func TestIsValidHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want bool
	}{
		{
			name: "lowercase hex",
			hex:  "#1a2b3c",
			want: true,
		},
		{
			name: "uppercase hex",
			hex:  "#AABBCC",
			want: true,
		},
		{
			name: "black",
			hex:  "#000000",
			want: true,
		},
		{
			name: "empty string",
			hex:  "",
			want: false,
		},
		{
			name: "missing hash",
			hex:  "1a2b3c",
			want: false,
		},
		{
			name: "shorthand form",
			hex:  "#abc",
			want: false,
		},
		{
			name: "alpha form",
			hex:  "#1a2b3cff",
			want: false,
		},
		{
			name: "non-hex characters",
			hex:  "#1a2b3g",
			want: false,
		},
		{
			name: "trailing garbage",
			hex:  "#1a2b3c ",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidHex(tt.hex); got != tt.want {
				t.Errorf("IsValidHex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{
			name: "red",
			hex:  "#ff0000",
			want: RGB{R: 255, G: 0, B: 0},
		},
		{
			name: "mixed case",
			hex:  "#1A2b3C",
			want: RGB{R: 26, G: 43, B: 60},
		},
		{
			name: "white",
			hex:  "#ffffff",
			want: RGB{R: 255, G: 255, B: 255},
		},
		{
			name:    "invalid",
			hex:     "#xyzzy!",
			wantErr: true,
		},
		{
			name:    "empty",
			hex:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#1a2b3c", "#6b7aff"} {
		c, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) returned error: %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("round trip of %q = %q", hex, got)
		}
	}
}

func TestRGBAString(t *testing.T) {
	tests := []struct {
		name  string
		c     RGB
		alpha float64
		want  string
	}{
		{
			name:  "half black",
			c:     RGB{R: 0, G: 0, B: 0},
			alpha: 0.5,
			want:  "rgba(0, 0, 0, 0.5)",
		},
		{
			name:  "low alpha",
			c:     RGB{R: 107, G: 122, B: 255},
			alpha: 0.46,
			want:  "rgba(107, 122, 255, 0.46)",
		},
		{
			name:  "opaque",
			c:     RGB{R: 255, G: 255, B: 255},
			alpha: 1,
			want:  "rgba(255, 255, 255, 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.RGBAString(tt.alpha); got != tt.want {
				t.Errorf("RGBAString() = %q, want %q", got, tt.want)
			}
		})
	}
}
