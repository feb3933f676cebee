// Package presenter formats check records for terminal output.
package presenter

import (
	"fmt"
	"time"
)

// FormatTimeSince formats the time elapsed since t as a human-readable string
// like "just now", "5 minutes ago", "2.5 hours ago", or "3 days ago".
func FormatTimeSince(t time.Time) string {
	return FormatAge(time.Since(t))
}

// FormatTimeSinceCompact formats the time elapsed since t for table columns,
// like "now", "5m ago", "2.5h ago", or "3d ago".
func FormatTimeSinceCompact(t time.Time) string {
	return FormatAgeCompact(time.Since(t))
}

// FormatAge formats an elapsed duration in the verbose style
func FormatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < 2*time.Minute:
		return "1 minute ago"
	case d < time.Hour:
		return fmt.Sprintf("%.0f minutes ago", d.Minutes())
	case d < 24*time.Hour:
		return fmt.Sprintf("%.1f hours ago", d.Hours())
	default:
		return fmt.Sprintf("%.0f days ago", d.Hours()/24)
	}
}

// FormatAgeCompact formats an elapsed duration in the compact style
func FormatAgeCompact(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%.0fm ago", d.Minutes())
	case d < 24*time.Hour:
		return fmt.Sprintf("%.1fh ago", d.Hours())
	default:
		return fmt.Sprintf("%.0fd ago", d.Hours()/24)
	}
}
