package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specplot/specplot/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a specplot configuration file without running alignment.

Checks:
  - YAML syntax
  - Encoding candidate names
  - Header token presence
  - Style enum values (line style, marker shape)
  - Numeric sanity (font sizes, opacity, axis ranges, figure size, DPI)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Encodings:     %v\n", cfg.Engine.Encodings)
	fmt.Printf("  Header tokens: %v\n", cfg.Engine.HeaderTokens)
	fmt.Printf("  Line style:    %s\n", cfg.Style.LineStyle)
	fmt.Printf("  Marker:        %s\n", cfg.Style.Marker)
	fmt.Printf("  Figure:        %gx%g in @ %d DPI\n", cfg.Style.FigWidth, cfg.Style.FigHeight, cfg.Style.DPI)

	if cfg.Style.XRange != nil {
		fmt.Printf("  X range:       %g to %g\n", cfg.Style.XRange.Min, cfg.Style.XRange.Max)
	} else {
		fmt.Printf("  X range:       auto\n")
	}
	if cfg.Style.YRange != nil {
		fmt.Printf("  Y range:       %g to %g\n", cfg.Style.YRange.Min, cfg.Style.YRange.Max)
	} else {
		fmt.Printf("  Y range:       auto\n")
	}

	return nil
}
