package datemath_test

import (
	"testing"
	"time"

	"voice-todo/pkg/datemath"
)

func mustDate(t *testing.T, y int, m time.Month, d int) datemath.Date {
	t.Helper()
	date, ok := datemath.NewDate(y, m, d)
	if !ok {
		t.Fatalf("NewDate(%d, %v, %d) rejected", y, m, d)
	}
	return date
}

func TestDateOf(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC; the calendar day must follow the local zone.
	loc := time.FixedZone("UTC-5", -5*60*60)
	got := datemath.DateOf(time.Date(2024, 6, 15, 23, 30, 0, 0, loc))
	if got.String() != "2024-06-15" {
		t.Errorf("DateOf() = %s, want 2024-06-15", got)
	}
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		name   string
		year   int
		month  time.Month
		day    int
		wantOK bool
	}{
		{name: "regular", year: 2024, month: time.June, day: 15, wantOK: true},
		{name: "leap day", year: 2024, month: time.February, day: 29, wantOK: true},
		{name: "non leap feb 29", year: 2023, month: time.February, day: 29, wantOK: false},
		{name: "feb 30", year: 2024, month: time.February, day: 30, wantOK: false},
		{name: "month 13", year: 2024, month: 13, day: 1, wantOK: false},
		{name: "day 0", year: 2024, month: time.May, day: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := datemath.NewDate(tt.year, tt.month, tt.day)
			if ok != tt.wantOK {
				t.Errorf("NewDate() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  datemath.Date
		want string
	}{
		{name: "add days", got: mustDate(t, 2024, time.June, 15).AddDays(3), want: "2024-06-18"},
		{name: "add days across month", got: mustDate(t, 2024, time.June, 29).AddDays(3), want: "2024-07-02"},
		{name: "add months", got: mustDate(t, 2024, time.June, 15).AddMonths(2), want: "2024-08-15"},
		{name: "add months across year", got: mustDate(t, 2024, time.November, 10).AddMonths(3), want: "2025-02-10"},
		{name: "add months clamps", got: mustDate(t, 2024, time.January, 31).AddMonths(1), want: "2024-02-29"},
		{name: "subtract months", got: mustDate(t, 2024, time.January, 15).AddMonths(-1), want: "2023-12-15"},
		{name: "add years", got: mustDate(t, 2024, time.June, 15).AddYears(1), want: "2025-06-15"},
		{name: "add years from leap day", got: mustDate(t, 2024, time.February, 29).AddYears(1), want: "2025-02-28"},
		{name: "start of week from saturday", got: mustDate(t, 2024, time.June, 15).StartOfWeek(), want: "2024-06-10"},
		{name: "start of week from sunday", got: mustDate(t, 2024, time.June, 16).StartOfWeek(), want: "2024-06-10"},
		{name: "start of week from monday", got: mustDate(t, 2024, time.June, 10).StartOfWeek(), want: "2024-06-10"},
		{name: "start of month", got: mustDate(t, 2024, time.June, 15).StartOfMonth(), want: "2024-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestNextWeekday(t *testing.T) {
	saturday := mustDate(t, 2024, time.June, 15)

	tests := []struct {
		name string
		wd   time.Weekday
		want string
	}{
		{name: "monday after saturday", wd: time.Monday, want: "2024-06-17"},
		{name: "sunday after saturday", wd: time.Sunday, want: "2024-06-16"},
		{name: "same weekday rolls a week", wd: time.Saturday, want: "2024-06-22"},
		{name: "friday after saturday", wd: time.Friday, want: "2024-06-21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := saturday.NextWeekday(tt.wd); got.String() != tt.want {
				t.Errorf("NextWeekday(%v) = %s, want %s", tt.wd, got, tt.want)
			}
		})
	}
}

func TestParseNames(t *testing.T) {
	if wd, ok := datemath.ParseWeekday("Monday"); !ok || wd != time.Monday {
		t.Errorf("ParseWeekday(Monday) = %v, %v", wd, ok)
	}
	if _, ok := datemath.ParseWeekday("funday"); ok {
		t.Errorf("ParseWeekday(funday) should fail")
	}
	if m, ok := datemath.ParseMonth("DECEMBER"); !ok || m != time.December {
		t.Errorf("ParseMonth(DECEMBER) = %v, %v", m, ok)
	}
	if _, ok := datemath.ParseMonth("smarch"); ok {
		t.Errorf("ParseMonth(smarch) should fail")
	}
}

func TestNewClock(t *testing.T) {
	c, err := datemath.NewClock("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid clock: %v", err)
	}
	if c.Now().Location() != c.Location() {
		t.Errorf("Now() not reported in clock location")
	}

	_, err = datemath.NewClock("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestFixedClock(t *testing.T) {
	ref := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	if got := datemath.FixedClock(ref).Now(); !got.Equal(ref) {
		t.Errorf("FixedClock.Now() = %v, want %v", got, ref)
	}
}
