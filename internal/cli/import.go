// Package cli provides the command-line interface for Tonelab.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonelab/tonelab/internal/image"
	"github.com/tonelab/tonelab/internal/scale"
)

var (
	// Import command flags
	importOutput  string
	importPrimary int
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <image>",
	Short: "Import a 24-swatch sheet image as a palette file",
	Long: `Sample a swatch sheet image into a 24-step palette file.

The image is sampled at 24 evenly spaced points along its horizontal
midline, one per swatch. Samples are ordered by perceptual lightness and
assigned to steps 200 (darkest) through 2500 (lightest), so the sheet's
swatch order does not matter.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  tonelab import swatches.png
  tonelab import --output brand.json --primary 900 swatches.webp`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "palette.json", "output palette file")
	importCmd.Flags().IntVarP(&importPrimary, "primary", "p", int(scale.DefaultPrimaryStep), "primary step recorded in the palette file")
}

// runImport executes the import command.
func runImport(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	if scale.Index(scale.Step(importPrimary)) < 0 {
		return fmt.Errorf("invalid primary step: %d", importPrimary)
	}

	loader := image.NewFileLoader()
	img, err := loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "path", args[0], "width", bounds.Dx(), "height", bounds.Dy())

	steps := scale.Steps()
	swatches, err := image.SampleSwatches(img, len(steps))
	if err != nil {
		return fmt.Errorf("failed to sample swatches: %w", err)
	}
	image.SortByLightness(swatches)

	palette := make(scale.Palette, len(steps))
	for i, s := range steps {
		palette[s] = swatches[i].Hex()
	}

	if err := scale.SaveFile(importOutput, palette, scale.Step(importPrimary)); err != nil {
		return err
	}
	logger.Debug("palette written", "path", importOutput, "steps", len(palette))

	fmt.Printf("Imported %d swatches to %s\n", len(palette), importOutput)
	return nil
}
