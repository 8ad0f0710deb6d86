//go:build !release

package verify

import (
	"bytes"
	"strings"
	"testing"
)

// capture intercepts the fatal path for one test.
func capture(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1

	oldExit, oldOut := exitFn, output
	exitFn = func(c int) { code = c }
	output = &buf
	t.Cleanup(func() { exitFn, output = oldExit, oldOut })

	return &buf, &code
}

func TestAlwaysPassesQuietly(t *testing.T) {
	buf, code := capture(t)

	Always(true, "should not print")
	AlwaysEq(3, 3, "should not print")

	if buf.Len() != 0 || *code != -1 {
		t.Errorf("Got output %q, exit %d", buf.String(), *code)
	}
}

func TestAlwaysFailure(t *testing.T) {
	buf, code := capture(t)

	Always(false, "n = %d", 42)

	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
	got := buf.String()
	if !strings.Contains(got, "[VERIFY FAILED] In function '") {
		t.Errorf("Got %q, want banner", got)
	}
	if !strings.Contains(got, "verify_test.go") {
		t.Errorf("Got %q, want test file in location", got)
	}
	if !strings.Contains(got, "n = 42") {
		t.Errorf("Got %q, want formatted payload", got)
	}
}

func TestAlwaysEqFailurePrintsOperands(t *testing.T) {
	buf, code := capture(t)

	AlwaysEq("left", "right", "labels differ")

	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
	got := buf.String()
	if !strings.Contains(got, "lhs = left") || !strings.Contains(got, "rhs = right") {
		t.Errorf("Got %q, want operand dump", got)
	}
}

func TestThatActiveInDevBuilds(t *testing.T) {
	_, code := capture(t)

	That(false, "dev check")

	if *code != 1 {
		t.Errorf("exit code = %d, want 1 (non-release build)", *code)
	}
}

func TestDebugDisabledByDefault(t *testing.T) {
	if debugChecks {
		t.Skip("built with the debug tag")
	}
	buf, code := capture(t)

	Debug(false, "expensive check")
	DebugEq(1, 2, "expensive check")

	if buf.Len() != 0 || *code != -1 {
		t.Errorf("Got output %q, exit %d; want no-op", buf.String(), *code)
	}
}
