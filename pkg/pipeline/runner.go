package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/textkit-dev/textkit/pkg/config"
	"github.com/textkit-dev/textkit/pkg/lines"
	"github.com/textkit-dev/textkit/pkg/msg"
	"github.com/textkit-dev/textkit/pkg/stopwatch"
	"github.com/textkit-dev/textkit/pkg/strutil"
)

// Record is the outcome of running the pipeline over one logical line.
type Record struct {
	// Source and LineNum locate the input line.
	Source  string `json:"source"`
	LineNum int    `json:"line_num"`

	// Input is the logical line before any transforms.
	Input string `json:"input"`

	// Output is the line after all transforms.
	Output string `json:"output"`

	// Tokens is Output split on the configured delimiter set.
	Tokens []string `json:"tokens"`
}

// Result is the complete outcome of a pipeline run.
type Result struct {
	// Records holds one entry per logical line, in input order.
	Records []Record

	// LinesProcessed counts the logical lines read.
	LinesProcessed int

	// TokensProduced counts all tokens across records.
	TokensProduced int

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}

// Runner executes a compiled pipeline over a line source.
type Runner struct {
	steps     []Step
	delims    string
	skipEmpty bool
	logger    *msg.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger routes the runner's progress diagnostics to the given logger.
func WithLogger(l *msg.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner compiles the configured steps into a Runner.
func NewRunner(cfg *config.Config, opts ...RunnerOption) (*Runner, error) {
	steps, err := CompileSteps(cfg.Steps)
	if err != nil {
		return nil, fmt.Errorf("compiling steps: %w", err)
	}

	delims := cfg.Delimiters
	if delims == "" {
		delims = strutil.DefaultDelimiters
	}

	r := &Runner{
		steps:     steps,
		delims:    delims,
		skipEmpty: cfg.SkipEmptyTokens(),
		logger:    msg.Default,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run drains the source, applying every step to each logical line and
// tokenizing the result. Stops early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, source lines.Source) (*Result, error) {
	sw := stopwatch.New("pipeline")
	result := &Result{StartedAt: time.Now()}

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}

		out := line.Text
		for _, step := range r.steps {
			out = step.Apply(out)
		}

		tokens := strutil.AppendTokens(nil, out, r.delims, r.skipEmpty)
		result.Records = append(result.Records, Record{
			Source:  line.Source,
			LineNum: line.LineNum,
			Input:   line.Text,
			Output:  out,
			Tokens:  tokens,
		})
		result.LinesProcessed++
		result.TokensProduced += len(tokens)
	}

	result.Duration = time.Duration(sw.Elapsed() * float64(time.Second))
	r.logger.Debug("pipeline done: %d lines, %d tokens in %s",
		result.LinesProcessed, result.TokensProduced, sw)

	return result, nil
}
