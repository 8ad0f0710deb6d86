package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textkit-dev/textkit/pkg/sniff"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	SampleSize int
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "Guess a file's comment marker and delimiters",
		Long: `Sample the leading lines of a file and guess which comment marker and
delimiter characters it uses. The guesses are printed in a form suitable for
a textkit configuration file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.SampleSize, "sample-size", 100, "Number of lines to sample")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	path := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s := sniff.New(sniff.WithSampleSize(opts.SampleSize))
	result, err := s.SniffFile(ctx, path)
	if err != nil {
		return fmt.Errorf("detecting format: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sampled %d line(s) from %s\n\n", result.SampledLines, path)

	if result.CommentMarker == "" {
		fmt.Fprintln(out, "No comment marker detected")
	} else {
		fmt.Fprintf(out, "comment_marker: %q  (%d line(s))\n", result.CommentMarker, result.MarkerLines)
	}

	best := result.BestDelimiters()
	if best == "" {
		fmt.Fprintln(out, "No delimiters detected")
		return nil
	}
	fmt.Fprintf(out, "delimiters: %q\n", best)

	for _, ds := range result.Delimiters {
		if ds.Count == 0 {
			continue
		}
		fmt.Fprintf(out, "  %q x %d\n", ds.Delimiter, ds.Count)
	}

	return nil
}
