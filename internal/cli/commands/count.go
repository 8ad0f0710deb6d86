package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textkit-dev/textkit/pkg/lines"
	"github.com/textkit-dev/textkit/pkg/numfmt"
)

// CountOptions holds command-line options for the count command.
type CountOptions struct {
	Marker string
}

// NewCountCommand creates the count command.
func NewCountCommand() *cobra.Command {
	opts := &CountOptions{}

	cmd := &cobra.Command{
		Use:   "count <file>...",
		Short: "Count logical lines in files",
		Long: `Count the logical lines in each file: comment-only and blank lines are
excluded, and backslash-continued lines count once. Pass an empty --marker
to count raw lines instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Marker, "marker", "m", lines.DefaultCommentMarker,
		"Comment marker character set")

	return cmd
}

func runCount(cmd *cobra.Command, args []string, opts *CountOptions) error {
	out := cmd.OutOrStdout()
	total := 0
	for _, path := range args {
		f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}

		n, err := lines.Count(f, opts.Marker)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("counting %s: %w", path, err)
		}
		if closeErr != nil {
			return closeErr
		}

		fmt.Fprintf(out, "%s\t%s\n", numfmt.Comma(int64(n)), path)
		total += n
	}

	if len(args) > 1 {
		fmt.Fprintf(out, "%s\ttotal\n", numfmt.Comma(int64(total)))
	}
	return nil
}
