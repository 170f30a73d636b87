package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "specplot: %d series aligned on %d keys, %d file(s) excluded\n",
		report.Summary.SeriesCount,
		report.Summary.RowCount,
		report.Summary.FilesFailed)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Spectrum Alignment Report ===")
	fmt.Fprintln(w)

	c := report.Chart
	fmt.Fprintf(w, "Shared keys: %d (%g to %g)\n", len(c.Keys), c.XRange.Min, c.XRange.Max)
	fmt.Fprintf(w, "Series: %d\n", len(c.Series))
	for _, s := range c.Series {
		if f.opts.Verbose {
			min, max := s.Values[0], s.Values[0]
			for _, v := range s.Values[1:] {
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
			fmt.Fprintf(w, "  - %s (%d values, %g to %g)\n", s.Name, len(s.Values), min, max)
		} else {
			fmt.Fprintf(w, "  - %s\n", s.Name)
		}
	}
	fmt.Fprintln(w)

	if report.HasFailures() {
		fmt.Fprintf(w, "Excluded files: %d\n", len(report.Failures))
		for _, failure := range report.Failures {
			fmt.Fprintf(w, "  - %s: %s\n", failure.File, failure.Error)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d file(s) parsed, %d excluded, %d aligned rows\n",
		report.Summary.FilesParsed,
		report.Summary.FilesFailed,
		report.Summary.RowCount)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Y range: %g to %g\n", c.YRange.Min, c.YRange.Max)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}
