package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textkit-dev/textkit/pkg/config"
	"github.com/textkit-dev/textkit/pkg/lines"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a textkit configuration file without running the pipeline.

Checks:
  - YAML syntax
  - Step op names and arguments
  - Output format
  - Source file existence (warning only)`,
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Sources: %d pattern(s)\n", len(cfg.Sources))
	fmt.Fprintf(out, "  Steps:   %d\n", len(cfg.Steps))

	if len(cfg.Steps) > 0 {
		fmt.Fprintf(out, "\nSteps:\n")
		for i, step := range cfg.Steps {
			line := fmt.Sprintf("  %d. %s", i+1, step.Op)
			if step.Target != "" {
				line += fmt.Sprintf(" %q -> %q", step.Target, step.With)
			}
			fmt.Fprintln(out, line)
		}
	}

	// Source existence is a warning, not an error.
	files, err := lines.ExpandGlobs(cfg.Sources)
	if err != nil {
		fmt.Fprintf(out, "\nWarning: Error expanding source patterns: %v\n", err)
		return nil
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		fmt.Fprintf(out, "\nWarning: No files match source patterns\n")
	} else {
		fmt.Fprintf(out, "\nFiles matched: %d\n", len(existing))
		for _, f := range existing {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}

	return nil
}
