package strutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Hello, World", []string{"Hello", "World"}},
		{"a\tb;c:d e", []string{"a", "b", "c", "d", "e"}},
		{"a,,b", []string{"a", "b"}},
		{"   ", nil},
		{"", nil},
		{"single", []string{"single"}},
	}
	for _, tt := range tests {
		got := Split(tt.in)
		if len(got) == 0 {
			got = nil
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestSplitOn(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitOn("a|b|c", "|"))
	assert.Equal(t, []string{"a b", "c"}, SplitOn("a b|c", "|"))
}

func TestAppendTokensKeepsEmpty(t *testing.T) {
	got := AppendTokens(nil, "a,,b", ",", false)
	assert.Equal(t, []string{"a", "", "b"}, got)
}

func TestAppendTokensExtends(t *testing.T) {
	dst := []string{"x"}
	got := AppendTokens(dst, "a b", " ", true)
	assert.Equal(t, []string{"x", "a", "b"}, got)
}

func TestForEachTokenSpans(t *testing.T) {
	var spans []string
	ForEachToken(",a,", ",", func(tok string) { spans = append(spans, tok) })

	// Leading delimiter yields an empty span; a trailing one yields nothing.
	assert.Equal(t, []string{"", "a"}, spans)
}
