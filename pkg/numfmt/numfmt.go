// Package numfmt renders large numbers with thousands separators. The
// functions take explicit arguments instead of mutating any global locale
// state, so they are safe to mix with other formatting.
package numfmt

import (
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
)

// Comma renders n with commas in the thousands spots: 1234567 -> "1,234,567".
func Comma(n int64) string {
	return humanize.Comma(n)
}

// CommaUint is Comma for unsigned values, including those above MaxInt64.
func CommaUint(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.BigComma(new(big.Int).SetUint64(n))
	}
	return humanize.Comma(int64(n))
}

// CommaFloat renders f with comma grouping and up to the given number of
// fractional digits: CommaFloat(123456789.9, 1) -> "123,456,789.9".
func CommaFloat(f float64, digits int) string {
	return humanize.CommafWithDigits(f, digits)
}

// Fprint writes the comma-grouped rendering of v to w. v may be any integer
// or float type; other types fall back to plain fmt formatting.
func Fprint(w io.Writer, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return fmt.Fprint(w, Comma(int64(n)))
	case int8:
		return fmt.Fprint(w, Comma(int64(n)))
	case int16:
		return fmt.Fprint(w, Comma(int64(n)))
	case int32:
		return fmt.Fprint(w, Comma(int64(n)))
	case int64:
		return fmt.Fprint(w, Comma(n))
	case uint:
		return fmt.Fprint(w, CommaUint(uint64(n)))
	case uint8:
		return fmt.Fprint(w, CommaUint(uint64(n)))
	case uint16:
		return fmt.Fprint(w, CommaUint(uint64(n)))
	case uint32:
		return fmt.Fprint(w, CommaUint(uint64(n)))
	case uint64:
		return fmt.Fprint(w, CommaUint(n))
	case float32:
		return fmt.Fprint(w, CommaFloat(float64(n), 6))
	case float64:
		return fmt.Fprint(w, CommaFloat(n, 6))
	default:
		return fmt.Fprint(w, v)
	}
}
