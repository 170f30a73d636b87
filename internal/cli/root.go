// Package cli provides the command-line interface for specplot.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specplot/specplot/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "specplot",
		Short: "Align instrument spectrum exports into chart-ready data",
		Long: `specplot ingests instrument-exported text files of paired
(wavelength, absorbance) measurements, aligns them onto a shared
wavelength axis, and emits a multi-series chart payload.

It handles:
  - Mixed encodings (GBK, UTF-8, Big5, UTF-16), tried in order
  - Variable-length, locale-dependent preambles before the data
  - Stray malformed rows, footers, and trailing blanks

Files that fail to parse are excluded and reported; alignment uses
strict inner-join semantics, so only wavelengths present in every
surviving file appear in the output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAlignCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
