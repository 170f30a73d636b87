// Package chart assembles the renderer-facing payload: the aligned
// table, the pass-through style, and auto-fit axis ranges.
package chart

import (
	"github.com/specplot/specplot/pkg/align"
	"github.com/specplot/specplot/pkg/config"
)

// Series is one named line in the chart, aligned with Chart.Keys.
type Series struct {
	// Name is the series display name, derived from the upload name.
	Name string `json:"name"`

	// Values holds the y-values, index-for-index with the key column.
	Values []float64 `json:"values"`
}

// Chart is the complete payload handed to a rendering backend. The
// style block is carried opaquely; only the axis ranges are derived
// here, and only when the config leaves them unset.
type Chart struct {
	Keys   []float64          `json:"keys"`
	Series []Series           `json:"series"`
	XRange config.AxisRange   `json:"x_range"`
	YRange config.AxisRange   `json:"y_range"`
	Style  config.StyleConfig `json:"style"`
}

// Build attaches the style to the aligned table and fills in axis
// ranges. Explicit ranges in the style win; otherwise the ranges
// auto-fit the data extrema. The table must be non-empty, which Align
// guarantees.
func Build(table *align.Table, style config.StyleConfig) *Chart {
	c := &Chart{
		Keys:   table.Keys,
		Series: make([]Series, 0, len(table.Columns)),
		Style:  style,
	}

	for _, col := range table.Columns {
		c.Series = append(c.Series, Series{Name: col.Name, Values: col.Values})
	}

	if style.XRange != nil {
		c.XRange = *style.XRange
	} else {
		c.XRange = extrema(table.Keys)
	}

	if style.YRange != nil {
		c.YRange = *style.YRange
	} else {
		r := extrema(table.Columns[0].Values)
		for _, col := range table.Columns[1:] {
			cr := extrema(col.Values)
			if cr.Min < r.Min {
				r.Min = cr.Min
			}
			if cr.Max > r.Max {
				r.Max = cr.Max
			}
		}
		c.YRange = r
	}

	return c
}

func extrema(values []float64) config.AxisRange {
	r := config.AxisRange{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r
}
