// Package taskphrase turns a spoken to-do command into a structured task.
//
// Parsing is a fixed pipeline over declarative tables: trigger detection, priority, category, due date,
// due time, description, title cleanup and confidence scoring. Ambiguity is settled by table order
// alone. Parse is a pure function of the transcript and the reference time; it never reads the system
// clock and is safe for concurrent use.
package taskphrase

import (
	"strings"
	"time"

	"voice-todo/pkg/datemath"
	"voice-todo/pkg/normalize"
)

// Parse extracts a task from transcript, resolving relative dates and times against now. Relative
// dates use now's calendar day in now's own location.
func Parse(transcript string, now time.Time) ParsedTask {
	text := normalize.Transcript(transcript)
	lower := strings.ToLower(text)

	if lower == "" {
		return ParsedTask{
			OriginalText:      transcript,
			ConfidenceReasons: []string{"Task title unclear", "Empty input"},
		}
	}

	ex := extraction{descriptionIdx: -1}
	ex.isTaskCommand = detectTrigger(lower)
	ex.priority, ex.priorityHits = extractPriority(lower)
	ex.category, ex.categoryLabels = extractCategory(lower)
	ex.dueDate, ex.dateMatch = extractDueDate(lower, datemath.DateOf(now))
	ex.dueTime, ex.timeMatch = extractDueTime(lower, now)
	ex.description, ex.descriptionIdx = extractDescription(lower)

	title := cleanTitle(text, ex)
	spoken := strings.TrimSpace(strings.ToLower(transcript))
	confidence, reasons := scoreConfidence(spoken, lower, title, ex)

	return ParsedTask{
		Title:             title,
		Priority:          ex.priority,
		Category:          ex.category,
		DueDate:           ex.dueDate,
		DueTime:           ex.dueTime,
		Description:       ex.description,
		IsValid:           title != "",
		OriginalText:      transcript,
		Confidence:        confidence,
		ConfidenceReasons: reasons,
	}
}
