package lines

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Line is a logical line with its origin metadata.
type Line struct {
	// Text is the cleaned logical line content. Never empty.
	Text string

	// Source names where the line came from (a file path, or "-" for stdin).
	Source string

	// LineNum is the 1-based raw line number at which the logical line
	// ended in its source.
	LineNum int
}

// Source provides an iterator over logical lines.
// Implementations must be safe for sequential access (not concurrent).
type Source interface {
	// Next returns the next logical line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}

// FileSource implements Source for reading logical lines from files.
type FileSource struct {
	files  []string
	marker string

	currentFile   *os.File
	currentReader *Reader
	currentSource string
	fileIndex     int
}

// NewFileSource creates a Source that reads logical lines from the given
// files in order, using the given comment marker.
func NewFileSource(files []string, marker string) *FileSource {
	return &FileSource{
		files:     files,
		marker:    marker,
		fileIndex: -1,
	}
}

// Next returns the next logical line.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.currentReader == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		text, err := s.currentReader.Read()
		if err == nil {
			return &Line{
				Text:    text,
				Source:  s.currentSource,
				LineNum: s.currentReader.LineNum(),
			}, nil
		}
		if err != io.EOF {
			return nil, fmt.Errorf("reading %s: %w", s.currentSource, err)
		}

		// Current file exhausted, try next.
		if err := s.closeCurrentFile(); err != nil {
			return nil, err
		}
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening file %s: %w", path, err)
	}

	s.currentFile = f
	s.currentReader = NewReader(f, WithCommentMarker(s.marker))
	s.currentSource = path

	return nil
}

func (s *FileSource) closeCurrentFile() error {
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		s.currentReader = nil
		return err
	}
	return nil
}

// ReaderSource adapts a Reader into a Source, e.g. for stdin.
type ReaderSource struct {
	reader *Reader
	name   string
}

// NewReaderSource wraps an io.Reader as a Source with the given source name.
func NewReaderSource(src io.Reader, name string, opts ...Option) *ReaderSource {
	return &ReaderSource{reader: NewReader(src, opts...), name: name}
}

// Next returns the next logical line, or io.EOF.
func (s *ReaderSource) Next(ctx context.Context) (*Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := s.reader.Read()
	if err != nil {
		return nil, err
	}
	return &Line{Text: text, Source: s.name, LineNum: s.reader.LineNum()}, nil
}

// Close is a no-op; the caller owns the underlying reader.
func (s *ReaderSource) Close() error { return nil }

// ChainSource concatenates several Sources into one stream: all lines of the
// first, then all lines of the second, and so on.
type ChainSource struct {
	sources []Source
	index   int
}

// NewChainSource creates a Source that drains each given source in turn.
func NewChainSource(sources ...Source) *ChainSource {
	return &ChainSource{sources: sources}
}

// Next returns the next logical line across the chained sources.
// Returns io.EOF when every source is exhausted.
func (c *ChainSource) Next(ctx context.Context) (*Line, error) {
	for c.index < len(c.sources) {
		line, err := c.sources[c.index].Next(ctx)
		if err == io.EOF {
			c.index++
			continue
		}
		return line, err
	}
	return nil, io.EOF
}

// Close releases every chained source, reporting the first error seen.
func (c *ChainSource) Close() error {
	var firstErr error
	for _, src := range c.sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
