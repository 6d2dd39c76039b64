package mcp

import (
	"testing"
)

// TestDefaultTimeRange verifies time range defaults (last 30 days) and parsing.
func TestDefaultTimeRange(t *testing.T) {
	// Both empty → defaults to last 30 days
	start, end, err := defaultTimeRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff := end.Sub(start)
	if diff.Hours() < 719 || diff.Hours() > 721 { // ~720 hours = 30 days
		t.Errorf("default range = %.0f hours, want ~720", diff.Hours())
	}

	// Explicit dates
	start, end, err = defaultTimeRange("2025-08-01", "2025-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Year() != 2025 || start.Month() != 8 || start.Day() != 1 {
		t.Errorf("start = %v, want 2025-08-01", start)
	}
	if end.Year() != 2025 || end.Month() != 8 || end.Day() != 31 {
		t.Errorf("end = %v, want 2025-08-31", end)
	}

	// RFC3339
	start, _, err = defaultTimeRange("2025-06-15T10:30:00Z", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 10 || start.Minute() != 30 {
		t.Errorf("start = %v, want 10:30", start)
	}

	// Invalid
	_, _, err = defaultTimeRange("not-a-date", "")
	if err == nil {
		t.Error("expected error for invalid date")
	}
}

// TestParseFlexTime verifies both accepted formats and rejection of garbage.
func TestParseFlexTime(t *testing.T) {
	if _, err := parseFlexTime("2025-09-01"); err != nil {
		t.Errorf("date-only format rejected: %v", err)
	}
	if _, err := parseFlexTime("2025-09-01T08:00:00Z"); err != nil {
		t.Errorf("RFC3339 format rejected: %v", err)
	}
	if _, err := parseFlexTime("yesterday"); err == nil {
		t.Error("expected error for non-date input")
	}
}
