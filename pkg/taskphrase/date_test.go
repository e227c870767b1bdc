package taskphrase

import (
	"testing"
	"time"

	"voice-todo/pkg/datemath"
)

func TestExtractDueDate(t *testing.T) {
	today := datemath.DateOf(refNow) // Saturday 2024-06-15

	tests := []struct {
		input string
		want  string
		match string
	}{
		{"call mom today", "2024-06-15", "today"},
		{"call mom tonight", "2024-06-15", "tonight"},
		{"call mom tomorrow", "2024-06-16", "tomorrow"},
		{"call mom monday", "2024-06-17", "monday"},
		{"call mom on saturday", "2024-06-22", "on saturday"},
		{"call mom next monday", "2024-06-24", "next monday"},
		{"call mom this monday", "2024-06-10", "this monday"},
		{"call mom this sunday", "2024-06-16", "this sunday"},
		{"call mom in 3 days", "2024-06-18", "in 3 days"},
		{"call mom in a day", "2024-06-16", "in a day"},
		{"call mom in 2 weeks", "2024-06-29", "in 2 weeks"},
		{"call mom in one month", "2024-07-15", "in one month"},
		{"call mom in 1 year", "2025-06-15", "in 1 year"},
		{"call mom two days from now", "2024-06-17", "two days from now"},
		{"call mom 3 weeks from now", "2024-07-06", "3 weeks from now"},
		{"call mom next week", "2024-06-17", "next week"},
		{"call mom next month", "2024-07-01", "next month"},
		{"call mom next year", "2025-01-01", "next year"},
		{"call mom this week", "2024-06-15", "this week"},
		{"call mom june 20th", "2024-06-20", "june 20th"},
		{"call mom june 15", "2024-06-15", "june 15"},
		{"call mom by june 1st", "2025-06-01", "by june 1st"},
		{"call mom march 3, 2026", "2026-03-03", "march 3, 2026"},
		{"call mom the 4th of july", "2024-07-04", "the 4th of july"},
		{"call mom on christmas", "2024-12-25", "on christmas"},
		{"call mom halloween 2030", "2030-10-31", "halloween 2030"},
		{"call mom on new year's day", "2025-01-01", "on new year's day"},
		{"call mom independence day", "2024-07-04", "independence day"},
		{"call mom 12/25/2024", "2024-12-25", "12/25/2024"},
		{"call mom 7-1-2025", "2025-07-01", "7-1-2025"},
		{"call mom 2024-09-01", "2024-09-01", "2024-09-01"},
		{"call mom 02/30/2024", "", ""},
		{"call mom february 30", "", ""},
		{"call mom sometime", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, match := extractDueDate(tt.input, today)
			if got != tt.want {
				t.Errorf("date = %q, want %q", got, tt.want)
			}
			if match != tt.match {
				t.Errorf("match = %q, want %q", match, tt.match)
			}
		})
	}
}

func TestExtractDueDate_OrderWins(t *testing.T) {
	today := datemath.DateOf(refNow)
	// "tomorrow" is earlier in the table than a weekday name.
	if got, _ := extractDueDate("tomorrow or friday", today); got != "2024-06-16" {
		t.Errorf("got %q, want 2024-06-16", got)
	}
	// An unresolvable explicit date falls through to later patterns.
	if got, _ := extractDueDate("13/45/2024 or 2024-08-01", today); got != "2024-08-01" {
		t.Errorf("got %q, want 2024-08-01", got)
	}
}

func TestExtractDueDate_MonthEndClamp(t *testing.T) {
	jan31 := datemath.DateOf(time.Date(2024, time.January, 31, 8, 0, 0, 0, time.UTC))
	if got, _ := extractDueDate("in 1 month", jan31); got != "2024-02-29" {
		t.Errorf("got %q, want 2024-02-29", got)
	}
}

func TestExtractDueDate_RejectsHugeOffsets(t *testing.T) {
	today := datemath.DateOf(refNow)
	if got, _ := extractDueDate("in 99999 days", today); got != "" {
		t.Errorf("got %q, want no date", got)
	}
	if got, _ := extractDueDate("in 9000 years", today); got != "" {
		t.Errorf("got %q, want no date", got)
	}
}
