package strutil

import (
	"regexp"
	"strings"
)

// whitespace is the locale-independent classifier used by the trim family.
const whitespace = " \t\n\v\f\r"

var spaceRun = regexp.MustCompile(`\s+`)

// Upper returns s with ASCII lowercase letters upper-cased. All other bytes,
// including multi-byte UTF-8 sequences and invalid encodings, pass through
// unchanged.
func Upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c &^ 0x20
		}
	}
	return string(b)
}

// Lower returns s with ASCII uppercase letters lower-cased.
func Lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c | 0x20
		}
	}
	return string(b)
}

// TrimLeft returns s without leading whitespace.
func TrimLeft(s string) string { return strings.TrimLeft(s, whitespace) }

// TrimRight returns s without trailing whitespace.
func TrimRight(s string) string { return strings.TrimRight(s, whitespace) }

// Trim returns s without leading or trailing whitespace. Idempotent.
func Trim(s string) string { return strings.Trim(s, whitespace) }

// ReplaceFirst replaces the first occurrence of target in s.
func ReplaceFirst(s, target, replacement string) string {
	return strings.Replace(s, target, replacement, 1)
}

// ReplaceLast replaces the final occurrence of target in s.
func ReplaceLast(s, target, replacement string) string {
	i := strings.LastIndex(s, target)
	if i < 0 {
		return s
	}
	return s[:i] + replacement + s[i+len(target):]
}

// ReplaceAll replaces every occurrence of target in s.
func ReplaceAll(s, target, replacement string) string {
	return strings.ReplaceAll(s, target, replacement)
}

// EraseFirst removes the first occurrence of target from s.
func EraseFirst(s, target string) string { return ReplaceFirst(s, target, "") }

// EraseLast removes the final occurrence of target from s.
func EraseLast(s, target string) string { return ReplaceLast(s, target, "") }

// EraseAll removes every occurrence of target from s.
func EraseAll(s, target string) string { return ReplaceAll(s, target, "") }

// ReplaceSpace collapses every run of whitespace in s to the given
// replacement. When alsoTrim is set, leading and trailing whitespace is
// removed entirely first.
func ReplaceSpace(s, with string, alsoTrim bool) string {
	if alsoTrim {
		s = Trim(s)
	}
	return spaceRun.ReplaceAllString(s, with)
}

// Condense collapses every run of whitespace in s to a single space and trims
// the ends.
func Condense(s string) string { return ReplaceSpace(s, " ", true) }

// RemoveSurrounds strips balanced surrounding pairs from s, repeatedly, so
// "<<<text>>>" becomes "text". The recognized pairs are (), [], {}, <> plus
// any identical leading/trailing character. Stripping stops as soon as the
// first character is alphanumeric or the ends do not match.
func RemoveSurrounds(s string) string {
	for len(s) > 1 {
		first := s[0]
		if isAlnum(first) {
			return s
		}
		last := s[len(s)-1]
		var match bool
		switch first {
		case '(':
			match = last == ')'
		case '[':
			match = last == ']'
		case '{':
			match = last == '}'
		case '<':
			match = last == '>'
		default:
			match = last == first
		}
		if !match {
			return s
		}
		s = s[1 : len(s)-1]
	}
	return s
}

// Standardize condenses whitespace, upper-cases, strips balanced surrounds,
// and trims: "[ hallo   world ]  " becomes "HALLO WORLD".
func Standardize(s string) string {
	return Trim(RemoveSurrounds(Upper(Condense(s))))
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool { return strings.HasPrefix(s, prefix) }

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool { return strings.HasSuffix(s, suffix) }

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
