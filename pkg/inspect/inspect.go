// Package inspect provides per-file diagnosis of spectrum exports:
// which encoding decodes the file, where the data segment starts, and
// how many rows survive extraction.
package inspect

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/specplot/specplot/pkg/spectrum"
)

// Result holds the diagnosis of a single file.
type Result struct {
	// File is the inspected path.
	File string `json:"file"`

	// Encoding names the first candidate that decoded the file, or is
	// empty when none matched.
	Encoding string `json:"encoding,omitempty"`

	// HeaderLine is the 1-based line number of the header, 0 if absent.
	HeaderLine int `json:"header_line,omitempty"`

	// HeaderToken is the token that matched the header line.
	HeaderToken string `json:"header_token,omitempty"`

	// TotalLines counts the lines after the header.
	TotalLines int `json:"total_lines"`

	// ValidRows counts the lines that parse as numeric pairs.
	ValidRows int `json:"valid_rows"`

	// SkippedRows counts the lines dropped as empty or malformed.
	SkippedRows int `json:"skipped_rows"`

	// XMin/XMax are the wavelength extrema of the valid rows.
	XMin float64 `json:"x_min,omitempty"`
	XMax float64 `json:"x_max,omitempty"`

	// SampleRow is the first valid data row, as it appears in the file.
	SampleRow string `json:"sample_row,omitempty"`
}

// Decoded reports whether any encoding candidate matched.
func (r *Result) Decoded() bool {
	return r.Encoding != ""
}

// HeaderFound reports whether a header token was located.
func (r *Result) HeaderFound() bool {
	return r.HeaderLine > 0
}

// Usable reports whether the file would survive a full parse.
func (r *Result) Usable() bool {
	return r.Decoded() && r.HeaderFound() && r.ValidRows > 0
}

// Inspector analyzes spectrum files against the configured candidates.
type Inspector struct {
	encodings    []spectrum.Encoding
	headerTokens []string
}

// Option configures the Inspector.
type Option func(*Inspector)

// WithEncodings overrides the decode candidate order.
func WithEncodings(encs []spectrum.Encoding) Option {
	return func(in *Inspector) {
		if len(encs) > 0 {
			in.encodings = encs
		}
	}
}

// WithHeaderTokens overrides the header markers scanned for.
func WithHeaderTokens(tokens []string) Option {
	return func(in *Inspector) {
		if len(tokens) > 0 {
			in.headerTokens = tokens
		}
	}
}

// New creates an Inspector with the default candidates.
func New(opts ...Option) *Inspector {
	in := &Inspector{
		encodings:    spectrum.DefaultEncodings(),
		headerTokens: spectrum.DefaultHeaderTokens(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// InspectFile reads and diagnoses one file.
func (in *Inspector) InspectFile(_ context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("reading spectrum file: %w", err)
	}
	return in.Inspect(spectrum.Upload{Name: filepath.Base(path), Data: data}), nil
}

// Inspect diagnoses an in-memory upload. Unlike Parse it never returns
// an error for unusable content; the Result describes how far the file
// got through the pipeline.
func (in *Inspector) Inspect(u spectrum.Upload) *Result {
	result := &Result{File: u.Name}

	var text string
	for _, e := range in.encodings {
		if decoded, ok := e.Decode(u.Data); ok {
			text = decoded
			result.Encoding = e.Name
			break
		}
	}
	if !result.Decoded() {
		return result
	}

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	headerIdx := -1
scan:
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, token := range in.headerTokens {
			if strings.Contains(lower, strings.ToLower(token)) {
				headerIdx = i
				result.HeaderLine = i + 1
				result.HeaderToken = token
				break scan
			}
		}
	}
	if headerIdx < 0 {
		return result
	}

	for _, line := range lines[headerIdx+1:] {
		result.TotalLines++
		trimmed := strings.TrimSpace(line)
		x, ok := rowX(trimmed)
		if !ok {
			result.SkippedRows++
			continue
		}
		if result.ValidRows == 0 {
			result.SampleRow = trimmed
			result.XMin, result.XMax = x, x
		} else {
			if x < result.XMin {
				result.XMin = x
			}
			if x > result.XMax {
				result.XMax = x
			}
		}
		result.ValidRows++
	}

	return result
}

// rowX reports whether a trimmed line is a valid data row and returns
// its x-value.
func rowX(trimmed string) (float64, bool) {
	if trimmed == "" || !strings.Contains(trimmed, ",") {
		return 0, false
	}
	fields := strings.Split(trimmed, ",")
	if len(fields) < 2 {
		return 0, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}
	return x, true
}
