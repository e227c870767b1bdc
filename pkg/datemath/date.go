package datemath

import (
	"strings"
	"time"
)

// DateFormatISO is the layout of Date.String.
const DateFormatISO = "2006-01-02"

// Date is a calendar day anchored at midnight UTC. Arithmetic on Date never crosses a DST boundary or a
// zone offset, so adding days always lands on the intended calendar day.
type Date struct {
	t time.Time
}

// DateOf returns the calendar day t falls on in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date and reports whether year/month/day name a real calendar day.
// February 30 or month 13 are rejected rather than normalized.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	if month < time.January || month > time.December || day < 1 || day > DaysIn(year, month) {
		return Date{}, false
	}
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, true
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) Time() time.Time       { return d.t }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Before(o Date) bool    { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool     { return d.t.Equal(o.t) }
func (d Date) String() string        { return d.t.Format(DateFormatISO) }

// AddDays shifts the date by n days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths shifts the month field by n. The day is clamped to the last day of the target month, so
// January 31 plus one month is the end of February.
func (d Date) AddMonths(n int) Date {
	total := int(d.Month()) - 1 + n
	year := d.Year() + floorDiv(total, 12)
	month := time.Month(floorMod(total, 12) + 1)
	day := min(d.Day(), DaysIn(year, month))
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// AddYears shifts the year field by n; February 29 clamps to February 28 in non-leap years.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// NextWeekday returns the first day strictly after d that falls on wd.
func (d Date) NextWeekday(wd time.Weekday) Date {
	days := (int(wd) - int(d.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return d.AddDays(days)
}

// StartOfWeek returns the Monday of d's Monday-Sunday week.
func (d Date) StartOfWeek() Date {
	return d.AddDays(-(ISOWeekday(d.Weekday()) - 1))
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{t: time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// ISOWeekday numbers weekdays Monday=1 through Sunday=7.
func ISOWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ParseWeekday maps an English weekday name (any case) to time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseMonth maps an English month name (any case) to time.Month.
func ParseMonth(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
