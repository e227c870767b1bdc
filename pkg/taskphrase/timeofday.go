package taskphrase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// meridiem matches am/pm and the dotted a.m./p.m. speech recognizers emit; the letter is captured.
const meridiem = `([ap])\.?m\b\.?`

type resolveTime func(m []string, now time.Time) (string, bool)

type timePattern struct {
	name    string
	re      *regexp.Regexp
	resolve resolveTime
}

// timePatterns are tried in order, independently of the date table.
var timePatterns = []timePattern{
	{name: "at_clock", re: regexp.MustCompile(`(?i)\bat (\d{1,2}):(\d{2})(?:\s*` + meridiem + `|\b)`), resolve: func(m []string, _ time.Time) (string, bool) {
		return clockTime(m[1], m[2], m[3])
	}},
	{name: "at_hour", re: regexp.MustCompile(`(?i)\bat (\d{1,2})\s*` + meridiem), resolve: func(m []string, _ time.Time) (string, bool) {
		return clockTime(m[1], "0", m[2])
	}},
	{name: "clock_meridiem", re: regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*` + meridiem), resolve: func(m []string, _ time.Time) (string, bool) {
		return clockTime(m[1], m[2], m[3])
	}},
	{name: "hour_meridiem", re: regexp.MustCompile(`(?i)\b(\d{1,2})\s*` + meridiem), resolve: func(m []string, _ time.Time) (string, bool) {
		return clockTime(m[1], "0", m[2])
	}},
	{name: "clock_24h", re: regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\b`), resolve: func(m []string, _ time.Time) (string, bool) {
		return clockTime(m[1], m[2], "")
	}},
	{name: "noon_midnight", re: regexp.MustCompile(`(?i)\b(?:at )?(noon|midnight)\b`), resolve: periodTime},
	{name: "in_the_period", re: regexp.MustCompile(`(?i)\bin the (morning|afternoon|evening|night)\b`), resolve: periodTime},
	{name: "period", re: regexp.MustCompile(`(?i)\b(?:this )?(morning|afternoon|evening|tonight)\b`), resolve: periodTime},
	{name: "relative_time", re: regexp.MustCompile(`(?i)\bin ` + countPattern + ` (hours?|minutes?|mins?)\b`), resolve: resolveRelativeTime},
}

var periodTimes = map[string]string{
	"noon":      "12:00",
	"midnight":  "00:00",
	"morning":   "09:00",
	"afternoon": "14:00",
	"evening":   "18:00",
	"night":     "20:00",
	"tonight":   "20:00",
}

// extractDueTime returns the resolved HH:MM and the matched text, or empty strings.
func extractDueTime(lower string, now time.Time) (string, string) {
	for _, p := range timePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if t, ok := p.resolve(m, now); ok {
			return t, m[0]
		}
	}
	return "", ""
}

// clockTime validates hour/minute and applies the 12-hour conversion when a meridiem letter is given:
// 12am is 00, 12pm is 12, any other pm hour gains 12.
func clockTime(hourStr, minuteStr, mer string) (string, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return "", false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 59 {
		return "", false
	}

	switch strings.ToLower(mer) {
	case "a":
		if hour < 1 || hour > 12 {
			return "", false
		}
		if hour == 12 {
			hour = 0
		}
	case "p":
		if hour < 1 || hour > 12 {
			return "", false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return "", false
		}
	}
	return formatClock(hour, minute), true
}

func periodTime(m []string, _ time.Time) (string, bool) {
	t, ok := periodTimes[strings.ToLower(m[1])]
	return t, ok
}

// resolveRelativeTime adds the offset to now's wall clock. The clock wraps at midnight; the due date is
// left to the date table.
func resolveRelativeTime(m []string, now time.Time) (string, bool) {
	n, ok := parseCount(m[1])
	if !ok {
		return "", false
	}
	var d time.Duration
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		d = time.Duration(n) * time.Hour
	} else {
		d = time.Duration(n) * time.Minute
	}
	at := now.Add(d)
	return formatClock(at.Hour(), at.Minute()), true
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
