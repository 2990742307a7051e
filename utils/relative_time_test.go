package utils

import (
	"testing"
	"time"
)

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"exactly now", now, "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"fifty-nine minutes", now.Add(-59 * time.Minute), "59m ago"},
		{"one hour", now.Add(-60 * time.Minute), "1h ago"},
		{"hours", now.Add(-7 * time.Hour), "7h ago"},
		{"twenty-three hours", now.Add(-23 * time.Hour), "23h ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"six days", now.Add(-6*24*time.Hour - time.Hour), "6 days ago"},
		{"calendar date", now.Add(-10 * 24 * time.Hour), "2/28/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRelativeTime(tt.ts, now); got != tt.want {
				t.Errorf("FormatRelativeTime(%v) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}
