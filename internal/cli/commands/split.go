package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/textkit-dev/textkit/pkg/lines"
	"github.com/textkit-dev/textkit/pkg/strutil"
)

// SplitOptions holds command-line options for the split command.
type SplitOptions struct {
	Delims    string
	KeepEmpty bool
	Marker    string
}

// NewSplitCommand creates the split command.
func NewSplitCommand() *cobra.Command {
	opts := &SplitOptions{}

	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Tokenize text into one token per output line",
		Long: `Split the argument text into tokens. Without an argument, logical lines
are read from standard input and each line's tokens are printed on one
output line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Delims, "delims", "d", strutil.DefaultDelimiters,
		"Delimiter character set")
	cmd.Flags().BoolVar(&opts.KeepEmpty, "keep-empty", false,
		"Keep empty tokens from adjacent delimiters")
	cmd.Flags().StringVarP(&opts.Marker, "marker", "m", lines.DefaultCommentMarker,
		"Comment marker used when reading standard input")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string, opts *SplitOptions) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		tokens := strutil.AppendTokens(nil, args[0], opts.Delims, !opts.KeepEmpty)
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
		return nil
	}

	r := lines.NewReader(cmd.InOrStdin(), lines.WithCommentMarker(opts.Marker))
	for {
		line, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		tokens := strutil.AppendTokens(nil, line, opts.Delims, !opts.KeepEmpty)
		fmt.Fprintln(out, strings.Join(tokens, "\t"))
	}
}
