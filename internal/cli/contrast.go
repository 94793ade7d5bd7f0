// Package cli provides the command-line interface for Tonelab.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonelab/tonelab/internal/colour"
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Check the WCAG contrast ratio of a colour pair",
	Long: `Compute the WCAG 2.0 contrast ratio between two colours and report which
accessibility thresholds the pair satisfies.

Colours are 6-digit hex strings. The ratio is truncated to two decimal
places before threshold comparison, so a pair never passes on rounding.

Examples:
  tonelab contrast "#1a1a2e" "#e0e0f0"
  tonelab contrast "#6b7aff" "#050014"`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := colour.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	ratio := colour.TruncateRatio(colour.ContrastRatio(fg, bg))

	fmt.Printf("contrast ratio: %.2f\n\n", ratio)
	table := NewTable([]string{"CHECK", "THRESHOLD", "RESULT"})
	table.AddRow([]string{"normal text AA", "4.50", passFail(ratio >= 4.5)})
	table.AddRow([]string{"normal text AAA", "7.00", passFail(ratio >= 7.0)})
	table.AddRow([]string{"large text AA", "3.00", passFail(ratio >= 3.0)})
	table.AddRow([]string{"large text AAA", "4.50", passFail(ratio >= 4.5)})
	table.AddRow([]string{"graphics AA", "3.00", passFail(ratio >= 3.0)})
	fmt.Print(table.Render())

	return nil
}
