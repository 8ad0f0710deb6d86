// Package output renders pipeline results for people and machines.
package output

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/textkit-dev/textkit/pkg/pipeline"
)

// Formatter renders a report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes per-line inputs alongside outputs.
	Verbose bool

	// Quiet reduces output to the summary line.
	Quiet bool
}

// Report is the complete output of a run.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// Records holds the per-line results.
	Records []pipeline.Record `json:"records"`

	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// LinesProcessed is the number of logical lines read.
	LinesProcessed int `json:"lines_processed"`

	// TokensProduced is the total token count across records.
	TokensProduced int `json:"tokens_produced"`
}

// Metadata provides context about the run.
type Metadata struct {
	// ConfigFile is the configuration path used, if any.
	ConfigFile string `json:"config_file,omitempty"`

	// Sources lists the inputs that were read.
	Sources []string `json:"sources,omitempty"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from a pipeline result.
func NewReport(result *pipeline.Result, configFile string, sources []string) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Records: result.Records,
		Summary: Summary{
			LinesProcessed: result.LinesProcessed,
			TokensProduced: result.TokensProduced,
		},
		Metadata: Metadata{
			ConfigFile: configFile,
			Sources:    sources,
			StartedAt:  result.StartedAt,
			Duration:   result.Duration,
		},
	}
}
