// ABOUTME: Duration formatting utilities for player clocks and API responses
// ABOUTME: Handles conversion between seconds, durations, and display strings

package duration

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatClock converts seconds to MM:SS. Invalid values format as 00:00.
func FormatClock(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "00:00"
	}

	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatDuration converts a duration to MM:SS
func FormatDuration(d time.Duration) string {
	return FormatClock(d.Seconds())
}

// SecondsToHumanReadable converts seconds to a human-readable format
func SecondsToHumanReadable(seconds int) string {
	if seconds < 60 {
		if seconds == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", seconds)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	parts := []string{}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	if secs > 0 && hours == 0 {
		parts = append(parts, plural(secs, "second"))
	}

	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
