package taskphrase

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// triggerPatterns mark an explicit request to create a task. Every hit is removed from the title.
var triggerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:add|create|new)\s+(?:(?:` + triggerModifiers() + `)\s+){0,3}?(?:task|to do|to-do|todo|reminder)\b`),
	regexp.MustCompile(`(?i)\bremind me(?: to)?\b`),
	regexp.MustCompile(`(?i)\bi need to\b`),
	regexp.MustCompile(`(?i)\b(?:don'?t|do not) forget to\b`),
	regexp.MustCompile(`(?i)\bmake sure to\b`),
	regexp.MustCompile(`(?i)\bschedule\b`),
	regexp.MustCompile(`(?i)\bplan to\b`),
	regexp.MustCompile(`(?i)\bset (?:a )?reminder(?: to)?\b`),
}

type priorityTier struct {
	priority Priority
	keywords []string
}

// priorityTiers are evaluated top to bottom; the first tier with a hit wins.
var priorityTiers = []priorityTier{
	{priority: PriorityHigh, keywords: []string{"high priority", "top priority", "urgent", "important", "asap", "critical", "immediately", "now", "priority"}},
	{priority: PriorityMedium, keywords: []string{"medium priority", "soon", "moderate", "normal"}},
	{priority: PriorityLow, keywords: []string{"low priority", "when possible", "later", "eventually", "sometime"}},
}

type categoryRule struct {
	name string
	// labels only name the category and are stripped from the title.
	labels []string
	// keywords describe the task itself and stay in the title.
	keywords []string
}

// categoryRules are checked in declaration order; the first rule with a hit wins.
var categoryRules = []categoryRule{
	{name: "work", labels: []string{"work"}, keywords: []string{"office", "meeting", "project", "deadline", "presentation", "email", "report"}},
	{name: "personal", labels: []string{"personal"}, keywords: []string{"home", "family", "house", "kids", "chores"}},
	{name: "shopping", labels: []string{"shopping"}, keywords: []string{"buy", "purchase", "shop", "grocery", "groceries", "store", "market"}},
	{name: "learning", labels: []string{"learning"}, keywords: []string{"learn", "study", "read", "course", "book", "research", "homework"}},
	{name: "social", labels: []string{"social"}, keywords: []string{"call", "text", "meet", "visit", "party", "dinner", "lunch"}},
	{name: "health", labels: []string{"health"}, keywords: []string{"doctor", "dentist", "exercise", "gym", "workout", "medicine", "pharmacy"}},
	{name: "finance", labels: []string{"finance", "financial"}, keywords: []string{"pay", "bill", "bills", "rent", "tax", "taxes", "invoice", "budget", "bank"}},
}

// descriptionPatterns capture the free-text note after a marker; a bare marker is not a description.
// "with" needs its colon because it is an everyday preposition ("meeting with the team").
var descriptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bdescription\b:?\s*([^\s:].*)`),
	regexp.MustCompile(`(?i)\bnotes?\b:?\s*([^\s:].*)`),
	regexp.MustCompile(`(?i)\bdetails\b:?\s*([^\s:].*)`),
	regexp.MustCompile(`(?i)\bwith:\s*([^\s:].*)`),
}

var (
	leadingFiller  = regexp.MustCompile(`(?i)^(?:to|and|also|please|then)\b\s*`)
	trailingFiller = regexp.MustCompile(`(?i)\s*\b(?:to|and|also|please|on|by|at|for|due)$`)
	leadingPunct   = regexp.MustCompile(`^[\s:;,.\-]+`)
	trailingPunct  = regexp.MustCompile(`[\s:;,\-.!?]+$`)
	spaceBeforeSep = regexp.MustCompile(`\s+([,;:])`)
)

// triggerModifiers is the alternation of words allowed between "add" and "task". Only words the title
// pass strips anyway qualify (articles, "new", priority keywords, category labels), so "add dentist task"
// is not a trigger and keeps its content.
func triggerModifiers() string {
	words := []string{"a", "an", "new"}
	for _, tier := range priorityTiers {
		words = append(words, tier.keywords...)
	}
	for _, rule := range categoryRules {
		words = append(words, rule.labels...)
	}
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })

	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// countPattern matches a small count spoken as digits or words.
const countPattern = `(\d+|an?|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)`

var countWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

// maxCount bounds relative offsets so resolved dates stay within four-digit years.
const maxCount = 10000

func parseCount(s string) (int, bool) {
	s = strings.ToLower(s)
	if n, ok := countWords[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxCount {
		return 0, false
	}
	return n, true
}

var wordPatterns = map[string]*regexp.Regexp{}

func init() {
	add := func(phrases []string) {
		for _, p := range phrases {
			if _, ok := wordPatterns[p]; !ok {
				wordPatterns[p] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
			}
		}
	}
	for _, tier := range priorityTiers {
		add(tier.keywords)
	}
	for _, rule := range categoryRules {
		add(rule.labels)
		add(rule.keywords)
	}
}

// wordPattern returns the precompiled whole-word, case-insensitive pattern for a table phrase.
func wordPattern(phrase string) *regexp.Regexp {
	if re, ok := wordPatterns[phrase]; ok {
		return re
	}
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}
