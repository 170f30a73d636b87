package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/specplot/specplot/pkg/align"
	"github.com/specplot/specplot/pkg/chart"
	"github.com/specplot/specplot/pkg/config"
	"github.com/specplot/specplot/pkg/output"
	"github.com/specplot/specplot/pkg/spectrum"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AlignOptions holds command-line options for the align command.
type AlignOptions struct {
	Config  string
	Output  string
	OutFile string
	Verbose bool
	Quiet   bool
}

// NewAlignCommand creates the align command.
func NewAlignCommand() *cobra.Command {
	opts := &AlignOptions{}

	cmd := &cobra.Command{
		Use:   "align <spectrum-file|glob>...",
		Short: "Align spectrum files onto a shared wavelength axis",
		Long: `Parse spectrum export files and align them onto one shared
wavelength axis using strict inner-join semantics.

Each file is decoded against the configured encoding candidates, its
preamble is skipped up to the header line, and the numeric pairs that
follow become one series. Files that fail to parse are reported on
stderr and excluded; the remaining files are aligned.

Exit codes:
  0 - All files parsed and aligned
  1 - Alignment succeeded but some files were excluded
  2 - Configuration or runtime error (including alignment failure)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Style/engine config file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json|csv)")
	cmd.Flags().StringVarP(&opts.OutFile, "out-file", "O", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-series statistics")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runAlign(cmd *cobra.Command, args []string, opts *AlignOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	// Expand file globs; order as supplied is significant (it seeds
	// the join and fixes column order).
	files, err := spectrum.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding spectrum files: %w", err)
	}

	uploads, err := spectrum.LoadUploads(files)
	if err != nil {
		return err
	}

	parser := spectrum.NewParser(
		spectrum.WithEncodings(cfg.Engine.ResolvedEncodings()),
		spectrum.WithHeaderTokens(cfg.Engine.HeaderTokens),
	)

	spectra, failures := parser.ParseAll(uploads)

	// Per-file failures exclude the file but never abort the batch.
	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "Skipping %v\n", failure)
	}

	table, err := align.Align(spectra)
	if err != nil {
		return fmt.Errorf("aligning spectra: %w", err)
	}

	report := output.NewReport(chart.Build(table, cfg.Style), failures, files, started)

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(opts.OutFile)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := formatter.Format(ctx, report, w); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.HasFailures() {
		ExitCode = 1
	}

	return nil
}

// loadConfig loads the named config, or the defaults when no file is
// given.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("validating default config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func createFormatter(opts *AlignOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	case "csv":
		return output.NewCSVFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, json, or csv)", opts.Output)
	}
}

// openOutput returns stdout or the named file plus a close function.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path) // #nosec G304 -- user-chosen output path is expected
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
