package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/textkit-dev/textkit/pkg/lines"
	"github.com/textkit-dev/textkit/pkg/strutil"
)

// NewStandardizeCommand creates the standardize command.
func NewStandardizeCommand() *cobra.Command {
	var marker string

	cmd := &cobra.Command{
		Use:   "standardize [text]...",
		Short: "Standardize text: condense, upper-case, strip surrounds",
		Long: `Standardize turns text like "[ hallo   world ]" into "HALLO WORLD":
whitespace runs collapse to single spaces, ASCII letters fold to upper case,
and balanced surrounding brackets are stripped.

Arguments are standardized as one string. Without arguments, logical lines
are read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStandardize(cmd, args, marker)
		},
	}

	cmd.Flags().StringVarP(&marker, "marker", "m", lines.DefaultCommentMarker,
		"Comment marker used when reading standard input")

	return cmd
}

func runStandardize(cmd *cobra.Command, args []string, marker string) error {
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		fmt.Fprintln(out, strutil.Standardize(strings.Join(args, " ")))
		return nil
	}

	r := lines.NewReader(cmd.InOrStdin(), lines.WithCommentMarker(marker))
	for {
		line, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, strutil.Standardize(line))
	}
}
