package image

import (
	goimage "image"
	gocolor "image/color"
	"testing"

	"github.com/tonelab/tonelab/internal/colour"
)

// sheetImage builds a synthetic swatch sheet: count solid vertical bands of
// the given colours, each cellWidth pixels wide.
func sheetImage(colours []colour.RGB, cellWidth, height int) goimage.Image {
	img := goimage.NewRGBA(goimage.Rect(0, 0, len(colours)*cellWidth, height))
	for i, c := range colours {
		for x := i * cellWidth; x < (i+1)*cellWidth; x++ {
			for y := 0; y < height; y++ {
				img.Set(x, y, gocolor.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
			}
		}
	}
	return img
}

func TestSampleSwatches(t *testing.T) {
	want := []colour.RGB{
		{R: 10, G: 10, B: 10},
		{R: 200, G: 50, B: 50},
		{R: 50, G: 200, B: 50},
		{R: 240, G: 240, B: 240},
	}
	img := sheetImage(want, 20, 16)

	got, err := SampleSwatches(img, len(want))
	if err != nil {
		t.Fatalf("SampleSwatches returned error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("sampled %d swatches, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("swatch %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSampleSwatchesErrors(t *testing.T) {
	img := sheetImage([]colour.RGB{{R: 1, G: 2, B: 3}}, 4, 4)

	if _, err := SampleSwatches(img, 0); err == nil {
		t.Error("expected error for zero count")
	}
	if _, err := SampleSwatches(img, 100); err == nil {
		t.Error("expected error for image narrower than count")
	}
}

func TestSortByLightness(t *testing.T) {
	colours := []colour.RGB{
		{R: 240, G: 240, B: 240},
		{R: 10, G: 10, B: 10},
		{R: 128, G: 128, B: 128},
	}

	SortByLightness(colours)

	if colours[0] != (colour.RGB{R: 10, G: 10, B: 10}) {
		t.Errorf("first colour = %+v, want darkest", colours[0])
	}
	if colours[2] != (colour.RGB{R: 240, G: 240, B: 240}) {
		t.Errorf("last colour = %+v, want lightest", colours[2])
	}
}
