package taskphrase

import (
	"testing"
	"time"
)

func TestExtractDueTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
		match string
	}{
		{"call at 2:30 pm", "14:30", "at 2:30 pm"},
		{"call at 12 am", "00:00", "at 12 am"},
		{"call at 12 pm", "12:00", "at 12 pm"},
		{"call at 12:15 am", "00:15", "at 12:15 am"},
		{"call at 14:30", "14:30", "at 14:30"},
		{"call at 3pm", "15:00", "at 3pm"},
		{"call 7am", "07:00", "7am"},
		{"call 10:15 p.m.", "22:15", "10:15 p.m."},
		{"call 18:45", "18:45", "18:45"},
		{"call at noon", "12:00", "at noon"},
		{"call at midnight", "00:00", "at midnight"},
		{"call in the morning", "09:00", "in the morning"},
		{"call in the night", "20:00", "in the night"},
		{"call this evening", "18:00", "this evening"},
		{"call afternoon", "14:00", "afternoon"},
		{"call tonight", "20:00", "tonight"},
		{"call in 2 hours", "12:00", "in 2 hours"},
		{"call in 30 minutes", "10:30", "in 30 minutes"},
		{"call in 15 hours", "01:00", "in 15 hours"},
		{"call at 13 pm", "", ""},
		{"call at 25:00", "", ""},
		{"call at 9:75", "", ""},
		{"buy 5 amps", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, match := extractDueTime(tt.input, refNow)
			if got != tt.want {
				t.Errorf("time = %q, want %q", got, tt.want)
			}
			if match != tt.match {
				t.Errorf("match = %q, want %q", match, tt.match)
			}
		})
	}
}

func TestClockTime(t *testing.T) {
	tests := []struct {
		hour, minute, mer string
		want              string
		ok                bool
	}{
		{"12", "00", "a", "00:00", true},
		{"12", "00", "p", "12:00", true},
		{"1", "05", "p", "13:05", true},
		{"11", "59", "a", "11:59", true},
		{"0", "30", "", "00:30", true},
		{"23", "59", "", "23:59", true},
		{"0", "00", "p", "", false},
		{"24", "00", "", "", false},
		{"7", "60", "", "", false},
	}
	for _, tt := range tests {
		got, ok := clockTime(tt.hour, tt.minute, tt.mer)
		if got != tt.want || ok != tt.ok {
			t.Errorf("clockTime(%s, %s, %q) = %q, %v; want %q, %v", tt.hour, tt.minute, tt.mer, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractDueTime_RelativeUsesReferenceClock(t *testing.T) {
	now := time.Date(2024, time.June, 15, 23, 50, 0, 0, time.UTC)
	if got, _ := extractDueTime("in 20 minutes", now); got != "00:10" {
		t.Errorf("got %q, want 00:10", got)
	}
}
