package taskphrase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"voice-todo/pkg/normalize"
)

// cleanTitle removes every extracted span from the case-preserving text and tidies what is left.
func cleanTitle(text string, ex extraction) string {
	title := text

	if ex.descriptionIdx >= 0 {
		if loc := descriptionPatterns[ex.descriptionIdx].FindStringIndex(title); loc != nil {
			title = title[:loc[0]]
		}
	}

	for _, re := range triggerPatterns {
		title = re.ReplaceAllString(title, " ")
	}

	title = removeFirst(title, ex.dateMatch)
	title = removeFirst(title, ex.timeMatch)

	for _, p := range ex.priorityHits {
		title = wordPattern(p).ReplaceAllString(title, " ")
	}
	for _, l := range ex.categoryLabels {
		title = wordPattern(l).ReplaceAllString(title, " ")
	}

	title = normalize.CollapseSpaces(title)
	title = spaceBeforeSep.ReplaceAllString(title, "$1")
	title = trimFillers(title)

	return capitalizeFirst(title)
}

// removeFirst cuts the first case-insensitive occurrence of span.
func removeFirst(s, span string) string {
	if span == "" {
		return s
	}
	loc := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(span)).FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + " " + s[loc[1]:]
}

// trimFillers strips dangling punctuation and connective words from both ends until nothing changes.
func trimFillers(s string) string {
	for {
		prev := s
		s = leadingPunct.ReplaceAllString(s, "")
		s = trailingPunct.ReplaceAllString(s, "")
		s = leadingFiller.ReplaceAllString(s, "")
		s = trailingFiller.ReplaceAllString(s, "")
		s = strings.TrimSpace(s)
		if s == prev {
			return s
		}
	}
}

// capitalizeFirst upper-cases the first letter and keeps the rest. All-caps strings are returned as is
// so acronyms survive.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	if s == strings.ToUpper(s) && utf8.RuneCountInString(s) > 1 {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
