package utils

import (
	"fmt"
	"time"
)

// FormatRelativeTime maps an absolute instant to a human label relative to now.
// The bands match what the dashboard displays: "Just now", minutes, hours,
// "Yesterday", days, then the plain calendar date.
func FormatRelativeTime(ts, now time.Time) string {
	diff := now.Sub(ts)
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return ts.Format("1/2/2006")
	}
}
