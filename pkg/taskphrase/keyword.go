package taskphrase

import (
	"slices"
	"sort"
	"strings"
)

type phraseHit struct {
	start, end int
	phrase     string
	tier       int // index into priorityTiers
}

// extractPriority returns the first tier with any whole-word hit, scanning high, medium, low. "priority"
// and "now" are high keywords, so "low priority" and "two days from now" both read as high.
// The returned phrases are for title stripping only: overlapping hits are resolved longest first, so
// "low priority" is removed as one phrase instead of leaving "low" behind.
func extractPriority(lower string) (Priority, []string) {
	var hits []phraseHit
	collect := func(phrases []string, tier int) {
		for _, p := range phrases {
			for _, loc := range wordPattern(p).FindAllStringIndex(lower, -1) {
				hits = append(hits, phraseHit{start: loc[0], end: loc[1], phrase: p, tier: tier})
			}
		}
	}
	for i, tier := range priorityTiers {
		collect(tier.keywords, i)
	}

	priority := PriorityNone
	for i, tier := range priorityTiers {
		if slices.ContainsFunc(hits, func(h phraseHit) bool { return h.tier == i }) {
			priority = tier.priority
			break
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		li, lj := hits[i].end-hits[i].start, hits[j].end-hits[j].start
		if li != lj {
			return li > lj
		}
		return hits[i].start < hits[j].start
	})

	var kept []phraseHit
	for _, h := range hits {
		overlaps := false
		for _, k := range kept {
			if h.start < k.end && k.start < h.end {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, h)
		}
	}

	var phrases []string
	seen := make(map[string]bool)
	for _, k := range kept {
		if !seen[k.phrase] {
			seen[k.phrase] = true
			phrases = append(phrases, k.phrase)
		}
	}
	return priority, phrases
}

// extractCategory returns the first category with a label or keyword hit and the labels that hit.
func extractCategory(lower string) (string, []string) {
	for _, rule := range categoryRules {
		var labels []string
		for _, l := range rule.labels {
			if wordPattern(l).MatchString(lower) {
				labels = append(labels, l)
			}
		}
		if len(labels) > 0 {
			return rule.name, labels
		}
		for _, kw := range rule.keywords {
			if wordPattern(kw).MatchString(lower) {
				return rule.name, nil
			}
		}
	}
	return "", nil
}

// detectTrigger reports whether any trigger phrase occurs in the text.
func detectTrigger(lower string) bool {
	for _, re := range triggerPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// extractDescription returns the capitalized tail after the first marker in table order, and the index
// of the marker pattern so title cleanup can cut the same span.
func extractDescription(lower string) (string, int) {
	for i, re := range descriptionPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		tail := strings.TrimSpace(m[1])
		if tail == "" {
			continue
		}
		return capitalizeFirst(tail), i
	}
	return "", -1
}
