package presenter

import (
	"testing"
	"time"
)

func TestFormatAge(t *testing.T) {
	tests := []struct {
		in      time.Duration
		verbose string
		compact string
	}{
		{-time.Second, "just now", "now"},
		{30 * time.Second, "just now", "now"},
		{90 * time.Second, "1 minute ago", "2m ago"},
		{5 * time.Minute, "5 minutes ago", "5m ago"},
		{150 * time.Minute, "2.5 hours ago", "2.5h ago"},
		{72 * time.Hour, "3 days ago", "3d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := FormatAge(tt.in); got != tt.verbose {
				t.Errorf("FormatAge(%v) = %q, expected %q", tt.in, got, tt.verbose)
			}
			if got := FormatAgeCompact(tt.in); got != tt.compact {
				t.Errorf("FormatAgeCompact(%v) = %q, expected %q", tt.in, got, tt.compact)
			}
		})
	}
}
