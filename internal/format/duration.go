// Package format provides human-readable rendering of durations and
// throughput figures.
package format

import (
	"fmt"
	"time"
)

// ExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This approach provides a more human-readable output for short
// durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func ExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Throughput renders a digits-per-second rate with a binary-free SI scale.
func Throughput(digits int, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	rate := float64(digits) / d.Seconds()
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.2f Gdigit/s", rate/1e9)
	case rate >= 1e6:
		return fmt.Sprintf("%.2f Mdigit/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.2f kdigit/s", rate/1e3)
	default:
		return fmt.Sprintf("%.0f digit/s", rate)
	}
}

// Count renders a digit or bit count with thousands separators.
func Count(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
