package taskphrase

import (
	"regexp"
	"strconv"
	"time"

	"voice-todo/pkg/datemath"
)

const (
	weekdayNames = `(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`
	monthNames   = `(january|february|march|april|may|june|july|august|september|october|november|december)`
	ordinal      = `(?:st|nd|rd|th)?`
	// leadIn swallows the preposition in front of an absolute date so it leaves the title with the date.
	leadIn = `(?:(?:on|by|due|until|before)\s+)?`
)

// resolveDate turns a submatch into a calendar date relative to today. ok=false means the words looked
// like a date but do not name a real one; the next pattern is tried.
type resolveDate func(m []string, today datemath.Date) (datemath.Date, bool)

type datePattern struct {
	name    string
	re      *regexp.Regexp
	resolve resolveDate
}

// datePatterns are tried in order; the first pattern that matches and resolves wins.
var datePatterns = []datePattern{
	{name: "today", re: regexp.MustCompile(`(?i)\b(?:today|tonight)\b`), resolve: func(_ []string, today datemath.Date) (datemath.Date, bool) {
		return today, true
	}},
	{name: "tomorrow", re: regexp.MustCompile(`(?i)\btomorrow\b`), resolve: func(_ []string, today datemath.Date) (datemath.Date, bool) {
		return today.AddDays(1), true
	}},
	{name: "next_weekday", re: regexp.MustCompile(`(?i)\b` + leadIn + `next ` + weekdayNames + `\b`), resolve: resolveNextWeekday},
	{name: "this_weekday", re: regexp.MustCompile(`(?i)\b` + leadIn + `this ` + weekdayNames + `\b`), resolve: resolveThisWeekday},
	{name: "weekday", re: regexp.MustCompile(`(?i)\b` + leadIn + weekdayNames + `\b`), resolve: resolveWeekday},

	{name: "relative_days", re: regexp.MustCompile(`(?i)\bin ` + countPattern + ` (days?)\b`), resolve: resolveRelative},
	{name: "relative_weeks", re: regexp.MustCompile(`(?i)\bin ` + countPattern + ` (weeks?)\b`), resolve: resolveRelative},
	{name: "relative_months", re: regexp.MustCompile(`(?i)\bin ` + countPattern + ` (months?)\b`), resolve: resolveRelative},
	{name: "relative_years", re: regexp.MustCompile(`(?i)\bin ` + countPattern + ` (years?)\b`), resolve: resolveRelative},
	{name: "days_from_now", re: regexp.MustCompile(`(?i)\b` + countPattern + ` (days?) from now\b`), resolve: resolveRelative},
	{name: "weeks_from_now", re: regexp.MustCompile(`(?i)\b` + countPattern + ` (weeks?) from now\b`), resolve: resolveRelative},
	{name: "months_from_now", re: regexp.MustCompile(`(?i)\b` + countPattern + ` (months?) from now\b`), resolve: resolveRelative},
	{name: "years_from_now", re: regexp.MustCompile(`(?i)\b` + countPattern + ` (years?) from now\b`), resolve: resolveRelative},

	{name: "next_week", re: regexp.MustCompile(`(?i)\bnext week\b`), resolve: func(_ []string, today datemath.Date) (datemath.Date, bool) {
		return today.StartOfWeek().AddDays(7), true
	}},
	{name: "next_month", re: regexp.MustCompile(`(?i)\bnext month\b`), resolve: func(_ []string, today datemath.Date) (datemath.Date, bool) {
		return today.StartOfMonth().AddMonths(1), true
	}},
	{name: "next_year", re: regexp.MustCompile(`(?i)\bnext year\b`), resolve: func(_ []string, today datemath.Date) (datemath.Date, bool) {
		return datemath.NewDate(today.Year()+1, time.January, 1)
	}},
	{name: "this_period", re: regexp.MustCompile(`(?i)\bthis (?:week|month|year)\b`), resolve: func(_ []string, today datemath.Date) (datemath.Date, bool) {
		return today, true
	}},

	{name: "month_day", re: regexp.MustCompile(`(?i)\b` + leadIn + monthNames + ` (\d{1,2})` + ordinal + `(?:,?\s+(\d{4}))?\b`), resolve: func(m []string, today datemath.Date) (datemath.Date, bool) {
		return resolveMonthDay(m[1], m[2], m[3], today)
	}},
	{name: "day_of_month", re: regexp.MustCompile(`(?i)\b` + leadIn + `(?:the )?(\d{1,2})` + ordinal + ` of ` + monthNames + `(?:,?\s+(\d{4}))?\b`), resolve: func(m []string, today datemath.Date) (datemath.Date, bool) {
		return resolveMonthDay(m[2], m[1], m[3], today)
	}},

	{name: "christmas", re: regexp.MustCompile(`(?i)\b` + leadIn + `christmas(?: day)?(?:\s+(\d{4}))?\b`), resolve: holiday(time.December, 25)},
	{name: "halloween", re: regexp.MustCompile(`(?i)\b` + leadIn + `halloween(?:\s+(\d{4}))?\b`), resolve: holiday(time.October, 31)},
	{name: "new_year", re: regexp.MustCompile(`(?i)\b` + leadIn + `new year'?s?(?: day)?(?:\s+(\d{4}))?\b`), resolve: holiday(time.January, 1)},
	{name: "july_fourth", re: regexp.MustCompile(`(?i)\b` + leadIn + `(?:fourth of july|independence day|july 4th)(?:\s+(\d{4}))?\b`), resolve: holiday(time.July, 4)},

	{name: "date_slash", re: regexp.MustCompile(`(?i)\b` + leadIn + `(\d{1,2})/(\d{1,2})/(\d{4})\b`), resolve: func(m []string, _ datemath.Date) (datemath.Date, bool) {
		return numericDate(m[3], m[1], m[2])
	}},
	{name: "date_dash", re: regexp.MustCompile(`(?i)\b` + leadIn + `(\d{1,2})-(\d{1,2})-(\d{4})\b`), resolve: func(m []string, _ datemath.Date) (datemath.Date, bool) {
		return numericDate(m[3], m[1], m[2])
	}},
	{name: "iso_date", re: regexp.MustCompile(`(?i)\b` + leadIn + `(\d{4})-(\d{1,2})-(\d{1,2})\b`), resolve: func(m []string, _ datemath.Date) (datemath.Date, bool) {
		return numericDate(m[1], m[2], m[3])
	}},
}

// extractDueDate returns the resolved date and the matched text, or empty strings.
func extractDueDate(lower string, today datemath.Date) (string, string) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		d, ok := p.resolve(m, today)
		if !ok || d.Year() < 1 || d.Year() > 9999 {
			continue
		}
		return d.String(), m[0]
	}
	return "", ""
}

func resolveWeekday(m []string, today datemath.Date) (datemath.Date, bool) {
	wd, ok := datemath.ParseWeekday(m[1])
	if !ok {
		return datemath.Date{}, false
	}
	return today.NextWeekday(wd), true
}

// resolveNextWeekday is one week past the bare weekday.
func resolveNextWeekday(m []string, today datemath.Date) (datemath.Date, bool) {
	d, ok := resolveWeekday(m, today)
	if !ok {
		return d, false
	}
	return d.AddDays(7), true
}

// resolveThisWeekday picks the day inside the current Monday-Sunday week, even when it already passed.
func resolveThisWeekday(m []string, today datemath.Date) (datemath.Date, bool) {
	wd, ok := datemath.ParseWeekday(m[1])
	if !ok {
		return datemath.Date{}, false
	}
	return today.StartOfWeek().AddDays(datemath.ISOWeekday(wd) - 1), true
}

func resolveRelative(m []string, today datemath.Date) (datemath.Date, bool) {
	n, ok := parseCount(m[1])
	if !ok {
		return datemath.Date{}, false
	}
	switch unit := m[2]; unit[0] {
	case 'd', 'D':
		return today.AddDays(n), true
	case 'w', 'W':
		return today.AddDays(7 * n), true
	case 'm', 'M':
		return today.AddMonths(n), true
	case 'y', 'Y':
		return today.AddYears(n), true
	}
	return datemath.Date{}, false
}

// resolveMonthDay uses the stated year, otherwise the next occurrence on or after today.
func resolveMonthDay(monthName, dayStr, yearStr string, today datemath.Date) (datemath.Date, bool) {
	month, ok := datemath.ParseMonth(monthName)
	if !ok {
		return datemath.Date{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return datemath.Date{}, false
	}
	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return datemath.Date{}, false
		}
		return datemath.NewDate(year, month, day)
	}
	return upcoming(month, day, today)
}

// holiday resolves a fixed-date holiday, honoring an explicit year in the first submatch.
func holiday(month time.Month, day int) resolveDate {
	return func(m []string, today datemath.Date) (datemath.Date, bool) {
		if len(m) > 1 && m[1] != "" {
			year, err := strconv.Atoi(m[1])
			if err != nil {
				return datemath.Date{}, false
			}
			return datemath.NewDate(year, month, day)
		}
		return upcoming(month, day, today)
	}
}

// upcoming returns month/day in today's year, or next year when that day is already behind us.
// A day that does not exist in the chosen year (February 29) is rejected rather than shifted.
func upcoming(month time.Month, day int, today datemath.Date) (datemath.Date, bool) {
	d, ok := datemath.NewDate(today.Year(), month, day)
	if !ok {
		return d, false
	}
	if d.Before(today) {
		return datemath.NewDate(today.Year()+1, month, day)
	}
	return d, true
}

func numericDate(yearStr, monthStr, dayStr string) (datemath.Date, bool) {
	year, errY := strconv.Atoi(yearStr)
	month, errM := strconv.Atoi(monthStr)
	day, errD := strconv.Atoi(dayStr)
	if errY != nil || errM != nil || errD != nil {
		return datemath.Date{}, false
	}
	return datemath.NewDate(year, time.Month(month), day)
}
