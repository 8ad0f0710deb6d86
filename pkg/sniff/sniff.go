// Package sniff guesses the comment marker and delimiter set of a text file
// by sampling its leading lines.
package sniff

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Known comment markers, tried in order. Multi-character markers are counted
// when the whole sequence starts a trimmed line or follows content.
var knownMarkers = []string{"#", "//", ";", "--", "%"}

// Candidate delimiter characters scored by frequency.
const candidateDelims = "\t,;:| "

// Result holds the outcome of sampling an input.
type Result struct {
	// CommentMarker is the best-guess marker, or "" when nothing scored.
	CommentMarker string

	// MarkerLines counts sampled lines that start with or contain the
	// winning marker.
	MarkerLines int

	// Delimiters lists candidate delimiter characters by descending score.
	Delimiters []DelimiterScore

	// SampledLines is the number of raw lines examined.
	SampledLines int
}

// DelimiterScore is a candidate delimiter with its occurrence count across
// the sample.
type DelimiterScore struct {
	Delimiter string
	Count     int
}

// BestDelimiters returns the delimiter characters that scored at least half
// as well as the leader, concatenated into a delimiter set string.
func (r *Result) BestDelimiters() string {
	if len(r.Delimiters) == 0 {
		return ""
	}
	top := r.Delimiters[0].Count
	var b strings.Builder
	for _, ds := range r.Delimiters {
		if ds.Count*2 >= top && ds.Count > 0 {
			b.WriteString(ds.Delimiter)
		}
	}
	return b.String()
}

// Sniffer samples inputs to guess their shape.
type Sniffer struct {
	sampleSize int
}

// Option configures a Sniffer.
type Option func(*Sniffer)

// WithSampleSize sets the number of raw lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(s *Sniffer) {
		if n > 0 {
			s.sampleSize = n
		}
	}
}

// New creates a Sniffer.
func New(opts ...Option) *Sniffer {
	s := &Sniffer{sampleSize: 100}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SniffFile samples a file and returns its guessed shape.
func (s *Sniffer) SniffFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	raw, err := s.sample(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.SniffLines(raw), nil
}

// SniffLines analyzes a slice of raw lines.
func (s *Sniffer) SniffLines(raw []string) *Result {
	result := &Result{SampledLines: len(raw)}
	if len(raw) == 0 {
		return result
	}

	// Score comment markers by how many lines open with one.
	markerHits := make(map[string]int)
	for _, line := range raw {
		trimmed := strings.TrimLeft(line, " \t")
		for _, marker := range knownMarkers {
			if strings.HasPrefix(trimmed, marker) {
				markerHits[marker]++
				break
			}
		}
	}
	for _, marker := range knownMarkers {
		if markerHits[marker] > result.MarkerLines {
			result.CommentMarker = marker
			result.MarkerLines = markerHits[marker]
		}
	}

	// Score delimiter candidates by raw frequency outside comments.
	delimHits := make(map[string]int)
	for _, line := range raw {
		if result.CommentMarker != "" {
			if i := strings.Index(line, result.CommentMarker); i >= 0 {
				line = line[:i]
			}
		}
		for _, d := range candidateDelims {
			delimHits[string(d)] += strings.Count(line, string(d))
		}
	}
	for _, d := range candidateDelims {
		result.Delimiters = append(result.Delimiters, DelimiterScore{
			Delimiter: string(d),
			Count:     delimHits[string(d)],
		})
	}
	sort.SliceStable(result.Delimiters, func(i, j int) bool {
		return result.Delimiters[i].Count > result.Delimiters[j].Count
	})

	return result
}

func (s *Sniffer) sample(ctx context.Context, f *os.File) ([]string, error) {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var raw []string
	for len(raw) < s.sampleSize && scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw = append(raw, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sampling %s: %w", f.Name(), err)
	}
	return raw, nil
}
