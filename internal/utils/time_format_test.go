package utils

import (
	"testing"
	"time"
)

func TestParseDateMidnight(t *testing.T) {
	got, err := ParseDate("2024-01-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	if _, err := ParseDate("10/01/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
	if _, err := ParseDate("2024-01-10 12:00:00"); err == nil {
		t.Error("expected error for date with time component")
	}
}

func TestParseDatetimeLayouts(t *testing.T) {
	want := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	for _, value := range []string{
		"2024-01-02 15:04:05",
		"2024-01-02T15:04:05",
		"2024-01-02T15:04:05Z",
	} {
		got, err := ParseDatetime(value)
		if err != nil {
			t.Errorf("ParseDatetime(%q): %v", value, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDatetime(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestParseDatetimeAcceptsBareDate(t *testing.T) {
	got, err := ParseDatetime("2024-01-02")
	if err != nil {
		t.Fatalf("ParseDatetime: %v", err)
	}
	if !got.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestParseDatetimeRejectsGarbage(t *testing.T) {
	if _, err := ParseDatetime("yesterday"); err == nil {
		t.Error("expected error for unparseable datetime")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	moment := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	if got := FormatDate(moment); got != "2024-01-02" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDatetime(moment); got != "2024-01-02 15:04:05" {
		t.Errorf("FormatDatetime = %q", got)
	}
}
