// Package lines provides comment-aware logical line reading.
//
// A logical line is a raw line with any trailing comment removed, surrounding
// whitespace trimmed, blank results skipped, and backslash-continued lines
// merged into one.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/textkit-dev/textkit/pkg/strutil"
)

// DefaultCommentMarker starts a trailing comment that runs to end of line.
const DefaultCommentMarker = "#"

// ErrNotSeekable is returned by Rewind when the underlying reader cannot
// seek back to the start.
var ErrNotSeekable = errors.New("lines: underlying reader is not seekable")

// Reader reads logical lines from an io.Reader.
type Reader struct {
	src     io.Reader
	scanner *bufio.Scanner
	marker  string
	lineNum int
}

// Option configures a Reader.
type Option func(*Reader)

// WithCommentMarker sets the comment marker characters. A trailing comment
// begins at the first occurrence of any character in the set. An empty
// marker disables comment stripping.
func WithCommentMarker(marker string) Option {
	return func(r *Reader) { r.marker = marker }
}

// NewReader creates a Reader over src using DefaultCommentMarker.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{
		src:    src,
		marker: DefaultCommentMarker,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.scanner = newScanner(src)
	return r
}

// newScanner builds the raw line scanner. Same buffer sizing everywhere:
// 64KB initial, 1MB max line.
func newScanner(src io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(src)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return s
}

// Read returns the next logical line. It reports io.EOF when the stream has
// no more content; a returned line is never empty.
func (r *Reader) Read() (string, error) {
	for {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", fmt.Errorf("lines: reading: %w", err)
			}
			return "", io.EOF
		}
		r.lineNum++

		line := r.clean(r.scanner.Text())
		if line == "" {
			continue
		}

		// A trailing backslash joins this line with the next logical one.
		if line[len(line)-1] == '\\' {
			line = strutil.TrimRight(line[:len(line)-1])
			cont, err := r.Read()
			if err != nil && err != io.EOF {
				return "", err
			}
			line = joinContinuation(line, cont)
			// A lone backslash with nothing following collapses to nothing.
			if line == "" {
				continue
			}
		}

		return line, nil
	}
}

// clean strips the trailing comment and surrounding whitespace from a raw
// line.
func (r *Reader) clean(raw string) string {
	if r.marker != "" {
		if i := strings.IndexAny(raw, r.marker); i >= 0 {
			raw = raw[:i]
		}
	}
	return strutil.Trim(raw)
}

// LineNum reports how many raw lines have been consumed so far.
func (r *Reader) LineNum() int { return r.lineNum }

// Rewind repositions the reader at the start of the stream. It fails with
// ErrNotSeekable when the source does not implement io.Seeker.
func (r *Reader) Rewind() error {
	seeker, ok := r.src.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("lines: rewinding: %w", err)
	}
	r.scanner = newScanner(r.src)
	r.lineNum = 0
	return nil
}

// Count reports how many logical lines the stream holds, then rewinds it to
// the start as a side effect. An empty marker counts raw lines instead.
func Count(src io.ReadSeeker, marker string) (int, error) {
	n := 0
	if marker == "" {
		scanner := newScanner(src)
		for scanner.Scan() {
			n++
		}
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("lines: counting: %w", err)
		}
	} else {
		r := NewReader(src, WithCommentMarker(marker))
		for {
			if _, err := r.Read(); err != nil {
				if err == io.EOF {
					break
				}
				return 0, err
			}
			n++
		}
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("lines: rewinding after count: %w", err)
	}
	return n, nil
}

// joinContinuation merges a line head with its continuation, separated by a
// single space when both are non-empty.
func joinContinuation(head, cont string) string {
	switch {
	case head == "":
		return cont
	case cont == "":
		return head
	default:
		return head + " " + cont
	}
}
