// Package commands implements the textkit subcommands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textkit-dev/textkit/pkg/config"
	"github.com/textkit-dev/textkit/pkg/lines"
	"github.com/textkit-dev/textkit/pkg/msg"
	"github.com/textkit-dev/textkit/pkg/output"
	"github.com/textkit-dev/textkit/pkg/pipeline"
)

// ApplyOptions holds command-line options for the apply command.
type ApplyOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
}

// NewApplyCommand creates the apply command.
func NewApplyCommand() *cobra.Command {
	opts := &ApplyOptions{}

	cmd := &cobra.Command{
		Use:   "apply <config-file>",
		Short: "Run a transform pipeline over configured sources",
		Long: `Read logical lines from the sources named in the configuration file,
apply its transform steps to each line, tokenize the results, and print a
report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json); overrides the config")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show inputs and tokens, not just outputs")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runApply(cmd *cobra.Command, args []string, opts *ApplyOptions) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := commandLogger(opts.Verbose)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	files, err := lines.ExpandGlobs(cfg.Sources)
	if err != nil {
		return fmt.Errorf("expanding sources: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matched patterns: %v", cfg.Sources)
	}
	logger.Log("reading %d source file(s)", len(files))

	runner, err := pipeline.NewRunner(cfg, pipeline.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}

	source := lines.NewFileSource(files, cfg.CommentMarker)
	defer source.Close()

	result, err := runner.Run(ctx, source)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	report := output.NewReport(result, configPath, files)

	format := opts.Output
	if format == "" {
		format = cfg.Output
	}
	formatter, err := createFormatter(format, opts.Verbose, opts.Quiet)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func createFormatter(format string, verbose, quiet bool) (output.Formatter, error) {
	formatOpts := output.FormatOptions{Verbose: verbose, Quiet: quiet}

	switch format {
	case "", "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}

// commandLogger builds the diagnostics logger for a command run. Verbose
// raises the level so pipeline debug messages reach stderr.
func commandLogger(verbose bool) *msg.Logger {
	level := msg.LevelOff
	if verbose {
		level = msg.LevelDebug
	}
	return msg.New(msg.WithWriter(os.Stderr), msg.WithLevel(level))
}
