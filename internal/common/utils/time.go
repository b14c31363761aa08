package utils

import (
	"fmt"
	"time"
)

// ParseDuration parses a duration string with support for days ("d") and weeks ("w").
//
// Falls back to time.ParseDuration for all standard formats.
//
//	ParseDuration("30m") // 30 minutes
//	ParseDuration("1d")  // 24 hours
//	ParseDuration("2w")  // 336 hours
func ParseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	var n int
	var unit string
	if c, err := fmt.Sscanf(s, "%d%s", &n, &unit); err == nil && c == 2 {
		switch unit {
		case "d":
			return time.Duration(n) * 24 * time.Hour, nil
		case "w":
			return time.Duration(n) * 7 * 24 * time.Hour, nil
		}
	}

	return 0, fmt.Errorf("invalid duration: %s", s)
}

// FormatDuration renders a duration in the largest unit that keeps it readable:
// seconds under a minute, minutes under an hour, hours with one decimal under a day,
// days with one decimal beyond.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%.1fh", d.Hours())
	}
	return fmt.Sprintf("%.1fd", d.Hours()/24)
}
