package spectrum

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultHeaderTokens returns the built-in header markers. The data
// segment of an export begins on the line after the first line
// containing any of these tokens (matched case-insensitively).
func DefaultHeaderTokens() []string {
	return []string{"波长", "wavelength"}
}

// Parser decodes and parses spectrum uploads. The zero value is not
// usable; create one with NewParser.
type Parser struct {
	encodings    []Encoding
	headerTokens []string
}

// Option configures the Parser.
type Option func(*Parser)

// WithEncodings overrides the decode candidate order.
func WithEncodings(encs []Encoding) Option {
	return func(p *Parser) {
		if len(encs) > 0 {
			p.encodings = encs
		}
	}
}

// WithHeaderTokens overrides the header markers scanned for.
func WithHeaderTokens(tokens []string) Option {
	return func(p *Parser) {
		if len(tokens) > 0 {
			p.headerTokens = tokens
		}
	}
}

// NewParser creates a Parser with the default encodings and header tokens.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		encodings:    DefaultEncodings(),
		headerTokens: DefaultHeaderTokens(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts the point series from one upload.
//
// The pipeline is decode, locate the data start, then extract pairs.
// Malformed or empty data lines are skipped, not fatal: exports often
// carry footers, trailing blanks, or the odd mangled row, and losing
// the whole file over one line helps nobody. Errors are ErrNoHeader,
// ErrNoData, or a *DecodeError.
func (p *Parser) Parse(u Upload) (*Spectrum, error) {
	text, encName := p.decode(u.Data)
	if encName == "" {
		tried := make([]string, len(p.encodings))
		for i, e := range p.encodings {
			tried[i] = e.Name
		}
		return nil, &DecodeError{Tried: tried}
	}

	lines := splitLines(text)

	start, ok := p.findDataStart(lines)
	if !ok {
		return nil, ErrNoHeader
	}

	points := extractPoints(lines[start:])
	if len(points) == 0 {
		return nil, ErrNoData
	}

	return &Spectrum{
		Name:   strings.TrimSuffix(u.Name, filepath.Ext(u.Name)),
		Points: points,
	}, nil
}

// ParseAll parses every upload, collecting per-file failures instead of
// aborting the batch. Spectra come back in upload order.
func (p *Parser) ParseAll(uploads []Upload) ([]*Spectrum, []*FileError) {
	var spectra []*Spectrum
	var failures []*FileError

	for _, u := range uploads {
		sp, err := p.Parse(u)
		if err != nil {
			failures = append(failures, &FileError{Name: u.Name, Err: err})
			continue
		}
		spectra = append(spectra, sp)
	}

	return spectra, failures
}

// decode tries each candidate in order and returns the decoded text and
// the name of the first candidate that succeeded.
func (p *Parser) decode(data []byte) (string, string) {
	for _, e := range p.encodings {
		if text, ok := e.Decode(data); ok {
			return text, e.Name
		}
	}
	return "", ""
}

// findDataStart scans from the top for the first line containing a
// header token and returns the index of the line after it. The scan is
// unbounded and takes the first match only.
func (p *Parser) findDataStart(lines []string) (int, bool) {
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, token := range p.headerTokens {
			if strings.Contains(lower, strings.ToLower(token)) {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// extractPoints parses comma-separated numeric pairs from data lines.
// Lines that are empty, comma-less, short, or non-numeric are skipped.
// Fields beyond the first two are ignored.
func extractPoints(lines []string) []Point {
	var points []Point

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !strings.Contains(trimmed, ",") {
			continue
		}

		fields := strings.Split(trimmed, ",")
		if len(fields) < 2 {
			continue
		}

		x, err := parseFinite(fields[0])
		if err != nil {
			continue
		}
		y, err := parseFinite(fields[1])
		if err != nil {
			continue
		}

		points = append(points, Point{X: x, Y: y})
	}

	return points
}

// parseFinite parses a float and rejects NaN and infinities, which
// strconv would otherwise accept as spelled-out literals.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

// splitLines splits decoded text on newlines, tolerating both LF and
// CRLF endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
