// Package cli provides the command-line interface for Tonelab.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/tonelab/tonelab/internal/version"
)

var (
	// Global verbosity flag
	globalVerbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "tonelab",
		Short: "An accessible colour scale generator",
		Long: `Tonelab derives a full set of WCAG-compliant colour roles (surface, high,
medium, low, heavy, bold, boldA11Y, minimal) from a single 24-step colour
palette.

Feed it a palette file and it computes, for every step, the foreground and
fill colours that keep text readable on that step, with contrast ratios and
pass/fail flags for the WCAG AA and AAA thresholds.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(importCmd)
}

// newLogger builds the CLI logger. Output stays on stderr so piped command
// output remains clean; --verbose lifts the level to Debug.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if globalVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonelab",
		Output: os.Stderr,
		Level:  level,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
