// Package msg is a small logging facade. Calls capture their source location
// and hand an immutable Message to a single pluggable handler.
//
// A Logger owns its handler, output writer, and level, so independent
// configurations can coexist; the package-level Log and Debug helpers use a
// shared Default logger. Reconfiguring a logger is not synchronized - callers
// that swap handlers from multiple goroutines must serialize externally.
package msg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Tags used by the package-level helpers.
const (
	TagLog   = "LOG"
	TagDebug = "DBG"
)

// Level controls which messages a Logger dispatches.
type Level int

const (
	// LevelOff drops everything.
	LevelOff Level = iota
	// LevelLog dispatches Log messages only.
	LevelLog
	// LevelDebug dispatches Log and Debug messages.
	LevelDebug
)

// Message captures where a log call happened plus an optional payload.
// Immutable once constructed; consumed exactly once by the active handler.
type Message struct {
	// Function is the fully qualified name of the calling function,
	// shortened to its last path element (e.g. "pipeline.Run").
	Function string

	// File is the basename of the source file.
	File string

	// Line is the source line number.
	Line int

	// Tag classifies the message, e.g. "LOG" or "DBG".
	Tag string

	// Payload is the formatted message body. May be empty.
	Payload string
}

// String renders the message in the canonical form:
//
//	[TAG] function 'F' (file, line N): payload
func (m Message) String() string {
	s := fmt.Sprintf("[%s] function '%s' (%s, line %d)", m.Tag, m.Function, m.File, m.Line)
	if m.Payload != "" {
		s += ": " + m.Payload
	}
	return s
}

// Handler consumes dispatched messages. Exactly one handler is active per
// Logger at a time.
type Handler func(Message)

// Logger dispatches messages to its handler. The zero value is not usable;
// create loggers with New.
type Logger struct {
	handler Handler
	out     io.Writer
	level   Level
}

// LoggerOption configures a Logger at construction.
type LoggerOption func(*Logger)

// WithWriter sets the writer used by the default handler.
func WithWriter(w io.Writer) LoggerOption {
	return func(l *Logger) { l.out = w }
}

// WithHandler installs a custom handler.
func WithHandler(h Handler) LoggerOption {
	return func(l *Logger) { l.handler = h }
}

// WithLevel sets the dispatch level.
func WithLevel(level Level) LoggerOption {
	return func(l *Logger) { l.level = level }
}

// New creates a Logger. Without options it writes Log-level messages to
// standard output via the default handler.
func New(opts ...LoggerOption) *Logger {
	l := &Logger{out: os.Stdout, level: LevelLog}
	for _, opt := range opts {
		opt(l)
	}
	if l.handler == nil {
		l.handler = l.defaultHandler
	}
	return l
}

// Default is the logger used by the package-level helpers.
var Default = New()

// SetHandler replaces the logger's handler for all subsequent dispatches.
func (l *Logger) SetHandler(h Handler) { l.handler = h }

// UseDefaultHandler restores the built-in print-to-writer handler.
func (l *Logger) UseDefaultHandler() { l.handler = l.defaultHandler }

// SetOutput redirects the default handler's writer.
func (l *Logger) SetOutput(w io.Writer) { l.out = w }

// SetLevel changes the dispatch level.
func (l *Logger) SetLevel(level Level) { l.level = level }

// Log formats and dispatches a LOG message with the caller's location.
func (l *Logger) Log(format string, args ...any) {
	if l.level < LevelLog {
		return
	}
	l.dispatch(at(2, TagLog, format, args...))
}

// Debug formats and dispatches a DBG message with the caller's location.
// Dropped unless the logger's level is LevelDebug.
func (l *Logger) Debug(format string, args ...any) {
	if l.level < LevelDebug {
		return
	}
	l.dispatch(at(2, TagDebug, format, args...))
}

// Dispatch sends an already-built message to the handler, bypassing the
// level check.
func (l *Logger) Dispatch(m Message) { l.dispatch(m) }

func (l *Logger) dispatch(m Message) { l.handler(m) }

func (l *Logger) defaultHandler(m Message) {
	fmt.Fprintln(l.out, m.String())
}

// Log formats and dispatches a LOG message through the Default logger.
func Log(format string, args ...any) {
	if Default.level < LevelLog {
		return
	}
	Default.dispatch(at(2, TagLog, format, args...))
}

// Debug formats and dispatches a DBG message through the Default logger.
func Debug(format string, args ...any) {
	if Default.level < LevelDebug {
		return
	}
	Default.dispatch(at(2, TagDebug, format, args...))
}

// at builds a Message for the caller `skip` frames up the stack.
func at(skip int, tag, format string, args ...any) Message {
	m := Message{Tag: tag}
	if format != "" {
		m.Payload = fmt.Sprintf(format, args...)
	}

	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		m.Function, m.File = "unknown", "unknown"
		return m
	}
	m.File = filepath.Base(file)
	m.Line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		m.Function = filepath.Base(fn.Name())
	}
	return m
}
