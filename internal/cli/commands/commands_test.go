package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// run executes a command with args and returns its captured output.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNewApplyCommand(t *testing.T) {
	cmd := NewApplyCommand()

	if cmd.Use != "apply <config-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	for _, flag := range []string{"output", "verbose", "quiet"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func applyFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "in.txt", "hello world # trailing\n")
	return writeFile(t, dir, "job.yaml", `
sources:
  - `+filepath.Join(dir, "in.txt")+`
steps:
  - upper
`)
}

func TestApplyCommand(t *testing.T) {
	got, err := run(t, NewApplyCommand(), applyFixture(t))
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}
	if !strings.Contains(got, "HELLO WORLD\n") {
		t.Errorf("Got %q, want transformed line", got)
	}
	if !strings.Contains(got, "1 lines, 2 tokens") {
		t.Errorf("Got %q, want summary line", got)
	}
}

func TestApplyCommand_JSON(t *testing.T) {
	got, err := run(t, NewApplyCommand(), "--output", "json", applyFixture(t))
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}

	var report struct {
		RunID   string `json:"run_id"`
		Records []struct {
			Output string   `json:"output"`
			Tokens []string `json:"tokens"`
		} `json:"records"`
	}
	if err := json.Unmarshal([]byte(got), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, got)
	}
	if report.RunID == "" {
		t.Error("RunID is empty")
	}
	if len(report.Records) != 1 || report.Records[0].Output != "HELLO WORLD" {
		t.Errorf("Records = %+v", report.Records)
	}
}

func TestApplyCommand_BadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "job.yaml", `steps: [upper]`)

	if _, err := run(t, NewApplyCommand(), configPath); err == nil {
		t.Error("apply error = nil, want missing sources failure")
	}
}

func TestCountCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.txt", "a\n# comment\n\nb \\\nc\n")

	got, err := run(t, NewCountCommand(), path)
	if err != nil {
		t.Fatalf("count error = %v", err)
	}
	if !strings.HasPrefix(got, "2\t") {
		t.Errorf("Got %q, want count 2", got)
	}
}

func TestCountCommand_EmptyMarker(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.txt", "a\n# comment\nb\n")

	got, err := run(t, NewCountCommand(), "--marker", "", path)
	if err != nil {
		t.Fatalf("count error = %v", err)
	}
	if !strings.HasPrefix(got, "3\t") {
		t.Errorf("Got %q, want raw count 3", got)
	}
}

func TestCountCommand_Total(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "x\n")
	b := writeFile(t, dir, "b.txt", "y\nz\n")

	got, err := run(t, NewCountCommand(), a, b)
	if err != nil {
		t.Fatalf("count error = %v", err)
	}
	if !strings.Contains(got, "3\ttotal") {
		t.Errorf("Got %q, want total line", got)
	}
}

func TestCountCommand_MissingFile(t *testing.T) {
	if _, err := run(t, NewCountCommand(), "no-such-file.txt"); err == nil {
		t.Error("count error = nil, want open failure")
	}
}

func TestSplitCommand_Args(t *testing.T) {
	got, err := run(t, NewSplitCommand(), "Hello, World")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}
	if got != "Hello\nWorld\n" {
		t.Errorf("Got %q, want tokens on separate lines", got)
	}
}

func TestSplitCommand_CustomDelims(t *testing.T) {
	got, err := run(t, NewSplitCommand(), "--delims", "|", "a|b c")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}
	if got != "a\nb c\n" {
		t.Errorf("Got %q", got)
	}
}

func TestSplitCommand_Stdin(t *testing.T) {
	cmd := NewSplitCommand()
	cmd.SetIn(strings.NewReader("a b # trailing\nc\n"))

	got, err := run(t, cmd)
	if err != nil {
		t.Fatalf("split error = %v", err)
	}
	if got != "a\tb\nc\n" {
		t.Errorf("Got %q", got)
	}
}

func TestStandardizeCommand_Args(t *testing.T) {
	got, err := run(t, NewStandardizeCommand(), "[ hallo   world ]  ")
	if err != nil {
		t.Fatalf("standardize error = %v", err)
	}
	if got != "HALLO WORLD\n" {
		t.Errorf("Got %q, want HALLO WORLD", got)
	}
}

func TestStandardizeCommand_Stdin(t *testing.T) {
	cmd := NewStandardizeCommand()
	cmd.SetIn(strings.NewReader("( foo  bar )\n# skipped\n"))

	got, err := run(t, cmd)
	if err != nil {
		t.Fatalf("standardize error = %v", err)
	}
	if got != "FOO BAR\n" {
		t.Errorf("Got %q", got)
	}
}

func TestDetectCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sample.conf", "# header\nkey: value, other\n")

	got, err := run(t, NewDetectCommand(), path)
	if err != nil {
		t.Fatalf("detect error = %v", err)
	}
	if !strings.Contains(got, `comment_marker: "#"`) {
		t.Errorf("Got %q, want detected marker", got)
	}
}

func TestValidateCommand_Success(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "in.txt", "data\n")
	configPath := writeFile(t, dir, "config.yaml", `
sources:
  - `+filepath.Join(dir, "*.txt")+`
steps:
  - standardize
`)

	got, err := run(t, NewValidateCommand(), configPath)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(got, "Configuration valid!") {
		t.Errorf("Got %q, want success banner", got)
	}
	if !strings.Contains(got, "standardize") {
		t.Errorf("Got %q, want step listing", got)
	}
}

func TestValidateCommand_BadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", `
sources: ["in.txt"]
steps: [frobnicate]
`)

	if _, err := run(t, NewValidateCommand(), configPath); err == nil {
		t.Error("validate error = nil, want unknown op failure")
	}
}

func TestNewVersionCommand(t *testing.T) {
	got, err := run(t, NewVersionCommand())
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(got, "textkit ") {
		t.Errorf("Got %q", got)
	}
}
