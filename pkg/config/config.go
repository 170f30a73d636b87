package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/specplot/specplot/pkg/spectrum"
)

// colorPattern matches the #RRGGBB hex form the renderer accepts.
var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Load reads and validates a configuration file. Missing fields keep
// their defaults.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and resolves the engine's
// encoding candidates.
func Validate(cfg *Config) error {
	if err := validateEngine(&cfg.Engine); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := validateStyle(&cfg.Style); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	return nil
}

func validateEngine(ec *EngineConfig) error {
	if len(ec.Encodings) == 0 {
		return errors.New("encodings: at least one encoding is required")
	}

	resolved, err := spectrum.EncodingsByName(ec.Encodings)
	if err != nil {
		return fmt.Errorf("encodings: %w", err)
	}
	ec.resolved = resolved

	if len(ec.HeaderTokens) == 0 {
		return errors.New("header_tokens: at least one header token is required")
	}
	for i, token := range ec.HeaderTokens {
		if token == "" {
			return fmt.Errorf("header_tokens[%d]: token must not be empty", i)
		}
	}

	return nil
}

func validateStyle(st *StyleConfig) error {
	if st.TitleFontSize <= 0 || st.LabelFontSize <= 0 || st.LegendFontSize <= 0 {
		return errors.New("font sizes must be positive")
	}

	if st.LineWidth <= 0 {
		return errors.New("line_width must be positive")
	}
	if st.MarkerSize < 0 {
		return errors.New("marker_size must not be negative")
	}

	switch st.LineStyle {
	case LineSolid, LineDashed, LineDashDot, LineDotted:
	default:
		return fmt.Errorf("invalid line_style %q (must be solid, dashed, dashdot, or dotted)", st.LineStyle)
	}

	switch st.Marker {
	case MarkerNone, MarkerCircle, MarkerSquare, MarkerTriangleUp, MarkerTriangleDown,
		MarkerDiamond, MarkerStar, MarkerPlus, MarkerCross:
	default:
		return fmt.Errorf("invalid marker %q", st.Marker)
	}

	if st.GridOpacity < 0 || st.GridOpacity > 1 {
		return fmt.Errorf("grid_opacity must be between 0 and 1, got %g", st.GridOpacity)
	}

	if !colorPattern.MatchString(st.Background) {
		return fmt.Errorf("invalid background color %q (use #RRGGBB)", st.Background)
	}

	if err := validateRange("x_range", st.XRange); err != nil {
		return err
	}
	if err := validateRange("y_range", st.YRange); err != nil {
		return err
	}

	if st.FigWidth <= 0 || st.FigHeight <= 0 {
		return errors.New("figure dimensions must be positive")
	}
	if st.DPI <= 0 {
		return errors.New("dpi must be positive")
	}

	return nil
}

func validateRange(name string, r *AxisRange) error {
	if r == nil {
		return nil
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%s: min (%g) must be less than max (%g)", name, r.Min, r.Max)
	}
	return nil
}
