package common

import (
	"testing"
	"time"
)

// ---------- FormatDate ----------

func TestFormatDate_ZeroIsEmpty(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("expected empty string for zero time, got %q", got)
	}
}

func TestFormatDate_Layout(t *testing.T) {
	d := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := FormatDate(d); got != "2024-03-07" {
		t.Fatalf("unexpected format: %q", got)
	}
}

// ---------- ParseDate ----------

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate(" 2023-12-31 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(d) != "2023-12-31" {
		t.Fatalf("round trip mismatch: %v", d)
	}
}

func TestParseDate_Empty(t *testing.T) {
	d, err := ParseDate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("expected zero time, got %v", d)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if _, err := ParseDate("31/12/2023"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

// ---------- Today ----------

func TestToday_IsMidnightUTC(t *testing.T) {
	d := Today()
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 || d.Location() != time.UTC {
		t.Fatalf("expected midnight UTC, got %v", d)
	}
}
