package output

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
)

// CSVFormatter writes the aligned table as CSV: the key column first,
// then one column per series. The output is spreadsheet-ready and is
// the lossless interchange form of the chart data.
type CSVFormatter struct {
	opts FormatOptions
}

// NewCSVFormatter creates a new CSV formatter with the given options.
func NewCSVFormatter(opts FormatOptions) *CSVFormatter {
	return &CSVFormatter{opts: opts}
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format renders the aligned table as CSV. The header row uses the
// configured x-axis label for the key column and series names for the
// value columns.
func (f *CSVFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	c := report.Chart
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(c.Series)+1)
	label := c.Style.XLabel
	if label == "" {
		label = "wavelength"
	}
	header = append(header, label)
	for _, s := range c.Series {
		header = append(header, s.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, key := range c.Keys {
		row[0] = strconv.FormatFloat(key, 'g', -1, 64)
		for j, s := range c.Series {
			row[j+1] = strconv.FormatFloat(s.Values[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
