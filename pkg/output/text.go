package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/textkit-dev/textkit/pkg/numfmt"
	"github.com/textkit-dev/textkit/pkg/stopwatch"
)

// TextFormatter renders reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatSummary(report, w)
	}

	for _, rec := range report.Records {
		if f.opts.Verbose {
			fmt.Fprintf(w, "%s:%d: %q -> %q\n", rec.Source, rec.LineNum, rec.Input, rec.Output)
			if len(rec.Tokens) > 0 {
				fmt.Fprintf(w, "  tokens: %s\n", strings.Join(rec.Tokens, " | "))
			}
			continue
		}
		fmt.Fprintln(w, rec.Output)
	}

	fmt.Fprintln(w, "---")
	return f.formatSummary(report, w)
}

func (f *TextFormatter) formatSummary(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "%s lines, %s tokens in %s\n",
		numfmt.Comma(int64(report.Summary.LinesProcessed)),
		numfmt.Comma(int64(report.Summary.TokensProduced)),
		stopwatch.FormatSeconds(report.Metadata.Duration.Seconds()))
	return nil
}
