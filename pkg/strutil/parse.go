package strutil

import (
	"strconv"
	"strings"
)

// Numeric covers the types Possible can parse from a string prefix.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Possible tries to read a value of type T from the head of s. Leading '+'
// and space characters are skipped, then the longest valid numeric prefix is
// parsed, so Possible[int]("42abc") yields 42. The second return value is
// false when no number can be read.
func Possible[T Numeric](s string) (T, bool) {
	var zero T
	s = strings.TrimLeft(s, "+ ")

	switch any(zero).(type) {
	case float32, float64:
		prefix := floatPrefix(s)
		if prefix == "" {
			return zero, false
		}
		v, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return zero, false
		}
		return T(v), true
	case uint, uint8, uint16, uint32, uint64:
		prefix := digitPrefix(s, false)
		if prefix == "" {
			return zero, false
		}
		v, err := strconv.ParseUint(prefix, 10, intBits(any(zero)))
		if err != nil {
			return zero, false
		}
		return T(v), true
	default:
		prefix := digitPrefix(s, true)
		if prefix == "" || prefix == "-" {
			return zero, false
		}
		v, err := strconv.ParseInt(prefix, 10, intBits(any(zero)))
		if err != nil {
			return zero, false
		}
		return T(v), true
	}
}

// intBits reports the strconv bit size for the concrete integer type of v,
// so an out-of-range input is a parse miss rather than a silent wrap.
func intBits(v any) int {
	switch v.(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	case int, uint:
		return strconv.IntSize
	default:
		return 64
	}
}

// digitPrefix returns the leading run of decimal digits, with an optional
// minus sign when signed is set.
func digitPrefix(s string, signed bool) string {
	i := 0
	if signed && i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}

// floatPrefix returns the longest prefix of s that parses as a decimal
// floating point number: [-]digits[.digits][(e|E)[+|-]digits].
func floatPrefix(s string) string {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	intStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		// A bare trailing dot ("7.") is not consumed.
		if j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	return s[:i]
}
