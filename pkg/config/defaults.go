package config

import (
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvEncodings    = "SPECPLOT_ENCODINGS"
	EnvHeaderTokens = "SPECPLOT_HEADER_TOKENS"
)

// DefaultConfig returns a configuration with sensible defaults. The
// style defaults mirror what the tool renders when the user touches
// nothing.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Encodings:    []string{"gbk", "utf-8", "big5", "utf-16"},
			HeaderTokens: []string{"波长", "wavelength"},
		},
		Style: StyleConfig{
			Title:          "Absorbance Spectra",
			XLabel:         "Wavelength (nm)",
			YLabel:         "Absorbance",
			TitleFontSize:  14,
			LabelFontSize:  12,
			LegendFontSize: 10,
			LineWidth:      2.0,
			MarkerSize:     4,
			LineStyle:      LineSolid,
			Marker:         MarkerNone,
			ShowGrid:       true,
			GridOpacity:    0.3,
			Background:     "#FFFFFF",
			FigWidth:       12,
			FigHeight:      6,
			DPI:            300,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if encs := os.Getenv(EnvEncodings); encs != "" {
		c.Engine.Encodings = splitList(encs)
	}
	if tokens := os.Getenv(EnvHeaderTokens); tokens != "" {
		c.Engine.HeaderTokens = splitList(tokens)
	}
}

// splitList splits a comma-separated environment value, dropping empty
// entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
