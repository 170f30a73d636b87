// Package config provides configuration loading and validation for specplot.
package config

import "github.com/specplot/specplot/pkg/spectrum"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Style  StyleConfig  `yaml:"style"`
}

// EngineConfig selects the parser's decode and header-scan candidates.
// Both lists are ordered; earlier entries win.
type EngineConfig struct {
	// Encodings names the decode candidates, tried in order.
	Encodings []string `yaml:"encodings"`

	// HeaderTokens are the markers that delimit preamble from data.
	HeaderTokens []string `yaml:"header_tokens"`

	// resolved is populated during validation.
	resolved []spectrum.Encoding
}

// ResolvedEncodings returns the encoding candidates resolved during
// validation.
func (e *EngineConfig) ResolvedEncodings() []spectrum.Encoding {
	return e.resolved
}

// LineStyle enumerates the recognized line styles.
type LineStyle string

const (
	LineSolid   LineStyle = "solid"
	LineDashed  LineStyle = "dashed"
	LineDashDot LineStyle = "dashdot"
	LineDotted  LineStyle = "dotted"
)

// MarkerShape enumerates the recognized data-point markers.
type MarkerShape string

const (
	MarkerNone         MarkerShape = "none"
	MarkerCircle       MarkerShape = "circle"
	MarkerSquare       MarkerShape = "square"
	MarkerTriangleUp   MarkerShape = "triangle-up"
	MarkerTriangleDown MarkerShape = "triangle-down"
	MarkerDiamond      MarkerShape = "diamond"
	MarkerStar         MarkerShape = "star"
	MarkerPlus         MarkerShape = "plus"
	MarkerCross        MarkerShape = "cross"
)

// AxisRange pins an axis to an explicit interval instead of auto-fit.
type AxisRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// StyleConfig is the style surface handed through to the renderer. The
// engine validates only enum membership and numeric sanity here; it
// never derives behavior from these values.
type StyleConfig struct {
	Title  string `yaml:"title" json:"title"`
	XLabel string `yaml:"x_label" json:"x_label"`
	YLabel string `yaml:"y_label" json:"y_label"`

	TitleFontSize  int `yaml:"title_font_size" json:"title_font_size"`
	LabelFontSize  int `yaml:"label_font_size" json:"label_font_size"`
	LegendFontSize int `yaml:"legend_font_size" json:"legend_font_size"`

	LineWidth  float64     `yaml:"line_width" json:"line_width"`
	MarkerSize float64     `yaml:"marker_size" json:"marker_size"`
	LineStyle  LineStyle   `yaml:"line_style" json:"line_style"`
	Marker     MarkerShape `yaml:"marker" json:"marker"`

	ShowGrid    bool    `yaml:"show_grid" json:"show_grid"`
	GridOpacity float64 `yaml:"grid_opacity" json:"grid_opacity"`
	Background  string  `yaml:"background" json:"background"`

	// XRange/YRange pin the axes; nil means auto-fit from data extrema.
	XRange *AxisRange `yaml:"x_range,omitempty" json:"x_range,omitempty"`
	YRange *AxisRange `yaml:"y_range,omitempty" json:"y_range,omitempty"`

	// Figure size in inches, export resolution in DPI.
	FigWidth  float64 `yaml:"fig_width" json:"fig_width"`
	FigHeight float64 `yaml:"fig_height" json:"fig_height"`
	DPI       int     `yaml:"dpi" json:"dpi"`
}
