package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specplot/specplot/pkg/inspect"
	"github.com/specplot/specplot/pkg/spectrum"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Config string
	Output string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <spectrum-file>...",
		Short: "Diagnose spectrum files without aligning them",
		Long: `Inspect spectrum export files and report, per file:

  - Which encoding candidate decoded it
  - Where the header line sits and which token matched
  - How many data rows parse and how many get skipped
  - The wavelength range covered

Use this to understand why a file is being excluded from alignment
before adjusting the engine config.

Example:
  specplot inspect sample.txt
  specplot inspect --output json exports/*.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Style/engine config file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	files, err := spectrum.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding spectrum files: %w", err)
	}

	inspector := inspect.New(
		inspect.WithEncodings(cfg.Engine.ResolvedEncodings()),
		inspect.WithHeaderTokens(cfg.Engine.HeaderTokens),
	)

	results := make([]*inspect.Result, 0, len(files))
	for _, file := range files {
		result, err := inspector.InspectFile(ctx, file)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", file, err)
		}
		results = append(results, result)
		if !result.Usable() {
			ExitCode = 1
		}
	}

	switch opts.Output {
	case "json":
		return outputInspectJSON(results)
	default:
		return outputInspectText(results)
	}
}

func outputInspectText(results []*inspect.Result) error {
	fmt.Println("=== Spectrum File Inspection ===")
	fmt.Println()

	for _, r := range results {
		fmt.Printf("File: %s\n", r.File)

		if !r.Decoded() {
			fmt.Println("  Encoding: none matched")
			fmt.Println("  Tip: the file may use an encoding outside the configured candidates.")
			fmt.Println()
			continue
		}
		fmt.Printf("  Encoding: %s\n", r.Encoding)

		if !r.HeaderFound() {
			fmt.Println("  Header: not found")
			fmt.Println("  Tip: add the file's column header to engine.header_tokens.")
			fmt.Println()
			continue
		}
		fmt.Printf("  Header: line %d (token %q)\n", r.HeaderLine, r.HeaderToken)
		fmt.Printf("  Rows: %d valid, %d skipped\n", r.ValidRows, r.SkippedRows)

		if r.ValidRows > 0 {
			fmt.Printf("  Wavelengths: %g to %g\n", r.XMin, r.XMax)
			fmt.Printf("  Sample row: %s\n", r.SampleRow)
		} else {
			fmt.Println("  Tip: header found, but no line after it parses as \"number,number\".")
		}
		fmt.Println()
	}

	return nil
}

func outputInspectJSON(results []*inspect.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
