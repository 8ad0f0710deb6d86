package msg

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.Log("x = %d, y = %d", 10, 11)

	got := strings.TrimRight(buf.String(), "\n")
	if !strings.HasPrefix(got, "[LOG] function '") {
		t.Errorf("Got %q, want [LOG] banner", got)
	}
	if !strings.Contains(got, "(msg_test.go, line ") {
		t.Errorf("Got %q, want call-site file", got)
	}
	if !strings.HasSuffix(got, ": x = 10, y = 11") {
		t.Errorf("Got %q, want formatted payload suffix", got)
	}
}

func TestEmptyPayloadOmitsColon(t *testing.T) {
	m := Message{Function: "pkg.fn", File: "f.go", Line: 7, Tag: "LOG"}
	if got := m.String(); got != "[LOG] function 'pkg.fn' (f.go, line 7)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCustomHandler(t *testing.T) {
	var captured []Message
	l := New(WithHandler(func(m Message) { captured = append(captured, m) }))

	l.Log("hello %s", "world")

	if len(captured) != 1 {
		t.Fatalf("Got %d messages, want 1", len(captured))
	}
	m := captured[0]
	if m.Tag != TagLog || m.Payload != "hello world" {
		t.Errorf("Message = %+v", m)
	}
	if m.File != "msg_test.go" || m.Line == 0 {
		t.Errorf("Call site = %s:%d", m.File, m.Line)
	}
	if !strings.Contains(m.Function, "TestCustomHandler") {
		t.Errorf("Function = %q", m.Function)
	}
}

func TestHandlerSwapAndRestore(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	n := 0
	l.SetHandler(func(Message) { n++ })
	l.Log("swallowed")
	if n != 1 || buf.Len() != 0 {
		t.Errorf("n = %d, buf = %q", n, buf.String())
	}

	l.UseDefaultHandler()
	l.Log("printed")
	if buf.Len() == 0 {
		t.Error("default handler restored but nothing written")
	}
}

func TestLevels(t *testing.T) {
	var captured []Message
	h := func(m Message) { captured = append(captured, m) }

	l := New(WithHandler(h), WithLevel(LevelLog))
	l.Debug("dropped")
	l.Log("kept")

	l.SetLevel(LevelDebug)
	l.Debug("kept too")

	l.SetLevel(LevelOff)
	l.Log("dropped")

	if len(captured) != 2 {
		t.Fatalf("Got %d messages, want 2", len(captured))
	}
	if captured[0].Tag != TagLog || captured[1].Tag != TagDebug {
		t.Errorf("Tags = %s, %s", captured[0].Tag, captured[1].Tag)
	}
}

func TestPackageHelpers(t *testing.T) {
	old := *Default
	defer func() { *Default = old }()

	var captured []Message
	Default.SetHandler(func(m Message) { captured = append(captured, m) })
	Default.SetLevel(LevelDebug)

	Log("one")
	Debug("two")

	if len(captured) != 2 {
		t.Fatalf("Got %d messages, want 2", len(captured))
	}
	if captured[0].File != "msg_test.go" {
		t.Errorf("File = %q, want msg_test.go", captured[0].File)
	}
}

func TestZapHandler(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := New(WithHandler(NewZapHandler(zap.New(core))), WithLevel(LevelDebug))

	l.Log("info payload")
	l.Debug("debug payload")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Got %d zap entries, want 2", len(entries))
	}
	if entries[0].Level != zap.InfoLevel || entries[0].Message != "info payload" {
		t.Errorf("entry 0 = %v %q", entries[0].Level, entries[0].Message)
	}
	if entries[1].Level != zap.DebugLevel {
		t.Errorf("entry 1 level = %v", entries[1].Level)
	}
	if entries[0].ContextMap()["file"] != "msg_test.go" {
		t.Errorf("file field = %v", entries[0].ContextMap()["file"])
	}
}
