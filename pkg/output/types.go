// Package output provides formatting of alignment results for the
// terminal, for downstream tooling, and for spreadsheet import.
package output

import (
	"time"

	"github.com/specplot/specplot/pkg/chart"
	"github.com/specplot/specplot/pkg/spectrum"
)

// Report is the complete alignment output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Chart is the renderer-facing payload.
	Chart *chart.Chart `json:"chart"`

	// Failures lists per-file parse errors. Failed files are excluded
	// from the chart, never fatal to the batch.
	Failures []FileFailure `json:"failures,omitempty"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// FilesParsed is the number of uploads that parsed successfully.
	FilesParsed int `json:"files_parsed"`

	// FilesFailed is the number of uploads excluded by parse errors.
	FilesFailed int `json:"files_failed"`

	// SeriesCount is the number of aligned value columns.
	SeriesCount int `json:"series_count"`

	// RowCount is the number of shared wavelength keys.
	RowCount int `json:"row_count"`
}

// FileFailure describes one excluded upload.
type FileFailure struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Sources lists the files that were read.
	Sources []string `json:"sources"`

	// AlignedAt is when the alignment completed.
	AlignedAt time.Time `json:"aligned_at"`

	// Duration is how long parsing and alignment took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from an assembled chart and the per-file
// failures collected during parsing.
func NewReport(c *chart.Chart, failures []*spectrum.FileError, sources []string, started time.Time) *Report {
	report := &Report{
		Chart: c,
		Metadata: Metadata{
			Sources:   sources,
			AlignedAt: time.Now(),
			Duration:  time.Since(started),
		},
		Summary: Summary{
			FilesParsed: len(c.Series),
			FilesFailed: len(failures),
			SeriesCount: len(c.Series),
			RowCount:    len(c.Keys),
		},
	}

	for _, fe := range failures {
		report.Failures = append(report.Failures, FileFailure{
			File:  fe.Name,
			Error: fe.Err.Error(),
		})
	}

	return report
}

// HasFailures returns true if any upload was excluded.
func (r *Report) HasFailures() bool {
	return r.Summary.FilesFailed > 0
}
