// Package util provides small helpers shared by the server packages.
package util

import (
	"fmt"
	"strings"
	"time"
)

// Duration is a time.Duration that is written to and read from configuration files as text,
// such as "1s" or "750ms".
type Duration time.Duration

// UnmarshalText ...
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration: cannot parse %q: %w", s, err)
	}
	if dur < 0 {
		return fmt.Errorf("duration: %q is negative", s)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText ...
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Ticks converts a number of server ticks to a Duration. A tick lasts 50 milliseconds.
func Ticks(n int) Duration {
	return Duration(time.Duration(n) * time.Second / 20)
}

// Std returns the Duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
