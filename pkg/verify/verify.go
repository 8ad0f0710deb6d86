// Package verify provides fail-fast condition checks for development-time
// invariants. A failed check prints a [VERIFY FAILED] banner with its source
// location to standard error and terminates the process with exit code 1.
// Failure is never a recoverable return value.
//
// Three gating policies exist:
//
//   - Always / AlwaysEq cannot be compiled out.
//   - That / ThatEq compile to no-ops under the "release" build tag.
//   - Debug / DebugEq are active only under the "debug" build tag.
package verify

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Swappable failure plumbing so tests can observe the fatal path.
var (
	exitFn          = os.Exit
	output io.Writer = os.Stderr
)

// Always checks cond and, when false, prints the failure message formatted
// from format/args and exits. Cannot be disabled by build tags.
func Always(cond bool, format string, args ...any) {
	if !cond {
		fail(2, fmt.Sprintf(format, args...))
	}
}

// AlwaysEq checks lhs == rhs and, on mismatch, prints both values alongside
// the failure message and exits. Cannot be disabled by build tags.
func AlwaysEq[T comparable](lhs, rhs T, format string, args ...any) {
	if lhs != rhs {
		failEq(2, lhs, rhs, fmt.Sprintf(format, args...))
	}
}

// That checks cond like Always, but compiles to a no-op under the "release"
// build tag. Use it for ordinary development-time invariants.
func That(cond bool, format string, args ...any) {
	if stdChecks && !cond {
		fail(2, fmt.Sprintf(format, args...))
	}
}

// ThatEq checks lhs == rhs like AlwaysEq, but is a no-op under the "release"
// build tag.
func ThatEq[T comparable](lhs, rhs T, format string, args ...any) {
	if stdChecks && lhs != rhs {
		failEq(2, lhs, rhs, fmt.Sprintf(format, args...))
	}
}

// Debug checks cond only when built with the "debug" tag. Use it for
// expensive checks that should never run in ordinary builds.
func Debug(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		fail(2, fmt.Sprintf(format, args...))
	}
}

// DebugEq checks lhs == rhs only when built with the "debug" tag.
func DebugEq[T comparable](lhs, rhs T, format string, args ...any) {
	if debugChecks && lhs != rhs {
		failEq(2, lhs, rhs, fmt.Sprintf(format, args...))
	}
}

// fail prints the failure banner for the caller `skip` frames up and exits.
func fail(skip int, payload string) {
	fn, file, line := caller(skip + 1)
	fmt.Fprintf(output, "\n[VERIFY FAILED] In function '%s' (%s, line %d)", fn, file, line)
	if payload != "" {
		fmt.Fprintf(output, ":\n%s", payload)
	}
	fmt.Fprint(output, "\n\n")
	exitFn(1)
}

func failEq(skip int, lhs, rhs any, payload string) {
	fn, file, line := caller(skip + 1)
	fmt.Fprintf(output, "\n[VERIFY FAILED] In function '%s' (%s, line %d)", fn, file, line)
	if payload != "" {
		fmt.Fprintf(output, ":\n%s", payload)
	}
	fmt.Fprintf(output, "\nlhs = %v\nrhs = %v\n\n", lhs, rhs)
	exitFn(1)
}

func caller(skip int) (fn, file string, line int) {
	pc, path, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown", 0
	}
	fn = "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = filepath.Base(f.Name())
	}
	return fn, filepath.Base(path), line
}
