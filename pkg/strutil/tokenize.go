// Package strutil provides string tokenizing and transform helpers used
// throughout textkit. Transforms return new strings; inputs are never
// modified.
package strutil

import "strings"

// DefaultDelimiters is the delimiter set used by Split: whitespace plus the
// common list separators.
const DefaultDelimiters = "\t,;: "

// ForEachToken scans s and calls fn for every span between delimiter
// characters. Any character in delims ends a token. Adjacent delimiters
// produce empty spans; the caller decides whether to keep them.
// A trailing delimiter ends the scan without reporting a final empty span.
func ForEachToken(s, delims string, fn func(token string)) {
	for s != "" {
		i := strings.IndexAny(s, delims)
		if i < 0 {
			fn(s)
			return
		}
		fn(s[:i])
		s = s[i+1:]
	}
}

// AppendTokens appends the tokens of s to dst and returns the extended slice.
// Empty tokens are dropped unless skipEmpty is false.
func AppendTokens(dst []string, s, delims string, skipEmpty bool) []string {
	ForEachToken(s, delims, func(tok string) {
		if tok != "" || !skipEmpty {
			dst = append(dst, tok)
		}
	})
	return dst
}

// Split breaks s on DefaultDelimiters, dropping empty tokens.
func Split(s string) []string {
	return SplitOn(s, DefaultDelimiters)
}

// SplitOn breaks s on the given delimiter set, dropping empty tokens.
func SplitOn(s, delims string) []string {
	return AppendTokens(make([]string, 0, len(s)/2), s, delims, true)
}
