// Package stopwatch measures elapsed wall time with split and lap support.
//
// A stopwatch is always running; there is no pause. Click records a split,
// and a lap is the time between the two most recent splits.
package stopwatch

import (
	"fmt"
	"time"
)

// Clock supplies the current time. The default is time.Now, which carries a
// monotonic reading so elapsed times survive wall-clock adjustments.
type Clock func() time.Time

// Stopwatch measures time from a zero point set at construction or Reset.
// Not safe for concurrent use.
type Stopwatch struct {
	name  string
	clock Clock
	zero  time.Time
	split float64
	prior float64
}

// New creates a running stopwatch. The name, if non-empty, prefixes the
// String output.
func New(name string) *Stopwatch {
	return NewWithClock(name, time.Now)
}

// NewWithClock creates a running stopwatch reading time from clock.
func NewWithClock(name string, clock Clock) *Stopwatch {
	s := &Stopwatch{name: name, clock: clock}
	s.Reset()
	return s
}

// Name returns the stopwatch's name.
func (s *Stopwatch) Name() string { return s.name }

// SetName renames the stopwatch.
func (s *Stopwatch) SetName(name string) { s.name = name }

// Reset re-anchors the zero point to now and clears both splits.
func (s *Stopwatch) Reset() {
	s.zero = s.clock()
	s.split = 0
	s.prior = 0
}

// Elapsed returns the seconds passed since the zero point. Pure read.
func (s *Stopwatch) Elapsed() float64 {
	return s.clock().Sub(s.zero).Seconds()
}

// Click records a new split and returns it. The previous split becomes the
// prior one, so Lap is the time between the two most recent clicks.
func (s *Stopwatch) Click() float64 {
	tau := s.Elapsed()
	s.prior = s.split
	s.split = tau
	return s.split
}

// Split returns the elapsed seconds at the most recent Click. Zero before
// the first Click.
func (s *Stopwatch) Split() float64 { return s.split }

// Lap returns the seconds between the two most recent splits.
func (s *Stopwatch) Lap() float64 { return s.split - s.prior }

// FormatSeconds renders a time in seconds as a short human-readable string:
// milliseconds with two decimals below one second, seconds with two decimals
// otherwise.
//
//	FormatSeconds(0.011) == "11.00ms"
//	FormatSeconds(25.234) == "25.23s"
func FormatSeconds(seconds float64) string {
	if seconds < 1.0 {
		return fmt.Sprintf("%.2fms", seconds*1000.0)
	}
	return fmt.Sprintf("%.2fs", seconds)
}

// String renders the elapsed time, prefixed with "name: " when the stopwatch
// is named.
func (s *Stopwatch) String() string {
	tau := FormatSeconds(s.Elapsed())
	if s.name == "" {
		return tau
	}
	return fmt.Sprintf("%s: %s", s.name, tau)
}
