package taskphrase

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	scoreTitle         = 30
	scoreTrigger       = 20
	scoreImplied       = 10
	scorePriority      = 15
	scoreDueDate       = 15
	scoreDueTime       = 10
	scoreCategory      = 5
	scoreDescription   = 5
	penaltyShortInput  = 10
	bonusStructured    = 5
	shortInputRunes    = 10
	minTitleRunes      = 2
	maxConfidenceScore = 100
)

// scoreConfidence adds up the heuristic; reasons follow evaluation order. spoken is the trimmed,
// lowercased transcript before normalization and decides the short input penalty; lower is the
// normalized text the extractors read.
func scoreConfidence(spoken, lower, title string, ex extraction) (int, []string) {
	score := 0
	reasons := make([]string, 0, 8)

	if utf8.RuneCountInString(title) > minTitleRunes {
		score += scoreTitle
		reasons = append(reasons, "Clear task title identified")
	} else {
		reasons = append(reasons, "Task title unclear")
	}

	if ex.isTaskCommand {
		score += scoreTrigger
		reasons = append(reasons, "Clear task command detected")
	} else {
		score += scoreImplied
		reasons = append(reasons, "Implied task (no explicit command)")
	}

	if ex.priority != PriorityNone {
		score += scorePriority
		reasons = append(reasons, fmt.Sprintf("Priority detected: %s", ex.priority))
	}
	if ex.dueDate != "" {
		score += scoreDueDate
		reasons = append(reasons, fmt.Sprintf("Due date detected: %s", ex.dueDate))
	}
	if ex.dueTime != "" {
		score += scoreDueTime
		reasons = append(reasons, fmt.Sprintf("Due time detected: %s", ex.dueTime))
	}
	if ex.category != "" {
		score += scoreCategory
		reasons = append(reasons, fmt.Sprintf("Category detected: %s", ex.category))
	}
	if ex.description != "" {
		score += scoreDescription
		reasons = append(reasons, "Additional description found")
	}

	if utf8.RuneCountInString(spoken) < shortInputRunes {
		score -= penaltyShortInput
		reasons = append(reasons, "Very short input")
	}

	if strings.Contains(lower, ":") && ex.isTaskCommand {
		score += bonusStructured
		reasons = append(reasons, "Well-structured command")
	}

	return max(0, min(maxConfidenceScore, score)), reasons
}
