// Package cli provides the command-line interface for Tonelab.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tonelab/tonelab/internal/scale"
)

var (
	// Generate command flags
	generateStep    int
	generatePrimary int
	generateRole    string
	generateFormat  string
	generateOutput  string
	generatePreview bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <palette.json>",
	Short: "Generate accessible colour scales from a palette file",
	Long: `Generate the eight colour roles for every step of a palette.

The palette file maps steps (200-2500) to hex colours:

  {"primaryStep": 600, "steps": {"200": "#0b0b12", "300": "#13131f", ...}}

Partial palettes are fine; steps without a colour are reported as undefined
rather than failing the run. Roles that miss their WCAG target on a given
surface are marked as failing so the palette can be tuned.

Examples:
  # Generate scales for all 24 steps
  tonelab generate palette.json

  # Only the scales for surface step 2300
  tonelab generate --step 2300 palette.json

  # Override the palette's primary step for the bold walks
  tonelab generate --primary 900 palette.json

  # Single role across all steps
  tonelab generate --role low palette.json

  # Machine-readable output
  tonelab generate --format json --output scales.json palette.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&generateStep, "step", "s", 0, "generate for a single surface step (200-2500)")
	generateCmd.Flags().IntVarP(&generatePrimary, "primary", "p", 0, "primary step seeding the bold walks (overrides the palette file)")
	generateCmd.Flags().StringVarP(&generateRole, "role", "r", "", "limit output to one role (surface, high, medium, low, heavy, bold, boldA11Y, minimal)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "table", "output format (table, json)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file (default: stdout)")
	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "force colour previews even when stdout is not a terminal")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	palette, primary, err := scale.LoadFile(args[0])
	if err != nil {
		return err
	}
	logger.Debug("palette loaded", "path", args[0], "steps", len(palette), "primary", int(primary))

	if generatePrimary != 0 {
		if scale.Index(scale.Step(generatePrimary)) < 0 {
			return fmt.Errorf("invalid primary step: %d", generatePrimary)
		}
		primary = scale.Step(generatePrimary)
	}

	if generateRole != "" && !slices.Contains(scale.RoleNames, generateRole) {
		return fmt.Errorf("unknown role: %q (valid: %v)", generateRole, scale.RoleNames)
	}

	var scales map[scale.Step]*scale.StepScales
	if generateStep != 0 {
		s := scale.Step(generateStep)
		if scale.Index(s) < 0 {
			return fmt.Errorf("invalid step: %d", generateStep)
		}
		scales = map[scale.Step]*scale.StepScales{
			s: scale.GenerateScalesForStep(s, palette, primary),
		}
	} else {
		scales = scale.GenerateAllScales(palette, primary)
	}

	var output string
	switch generateFormat {
	case "json":
		data, err := json.MarshalIndent(scales, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode scales: %w", err)
		}
		output = string(data) + "\n"
	case "table":
		preview := generatePreview || (generateOutput == "" && term.IsTerminal(int(os.Stdout.Fd())))
		output = renderScalesTable(scales, generateRole, preview)
	default:
		return fmt.Errorf("invalid format: %s (valid: table, json)", generateFormat)
	}

	if generateOutput != "" {
		if err := os.WriteFile(generateOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("output written", "path", generateOutput)
		return nil
	}

	fmt.Print(output)
	return nil
}
