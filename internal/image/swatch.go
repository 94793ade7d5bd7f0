package image

import (
	"fmt"
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tonelab/tonelab/internal/colour"
)

// SampleSwatches samples count colours evenly spaced along the horizontal
// midline of a swatch sheet image. Each sample is averaged over a small
// window so anti-aliased swatch borders do not skew the colour.
func SampleSwatches(img image.Image, count int) ([]colour.RGB, error) {
	if count <= 0 {
		return nil, fmt.Errorf("swatch count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if bounds.Dx() < count {
		return nil, fmt.Errorf("image is %d pixels wide, need at least %d", bounds.Dx(), count)
	}

	cell := float64(bounds.Dx()) / float64(count)
	midY := bounds.Min.Y + bounds.Dy()/2

	swatches := make([]colour.RGB, 0, count)
	for i := 0; i < count; i++ {
		// Centre of the i-th cell.
		x := bounds.Min.X + int(cell*(float64(i)+0.5))
		swatches = append(swatches, averageAround(img, x, midY))
	}
	return swatches, nil
}

// averageAround averages a 3x3 window around (x, y), clamped to the image
// bounds.
func averageAround(img image.Image, x, y int) colour.RGB {
	bounds := img.Bounds()
	var rSum, gSum, bSum, n uint32

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			px, py := x+dx, y+dy
			if px < bounds.Min.X || px >= bounds.Max.X || py < bounds.Min.Y || py >= bounds.Max.Y {
				continue
			}
			r, g, b, _ := img.At(px, py).RGBA()
			rSum += r >> 8
			gSum += g >> 8
			bSum += b >> 8
			n++
		}
	}
	if n == 0 {
		return colour.RGB{}
	}
	return colour.RGB{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
	}
}

// SortByLightness orders colours darkest to lightest using perceptual (Lab)
// lightness, so sampled swatches land on the palette's 200..2500 axis in the
// right order regardless of how the sheet was laid out.
func SortByLightness(colours []colour.RGB) {
	sort.SliceStable(colours, func(i, j int) bool {
		li, _, _ := toColorful(colours[i]).Lab()
		lj, _, _ := toColorful(colours[j]).Lab()
		return li < lj
	})
}

func toColorful(c colour.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
