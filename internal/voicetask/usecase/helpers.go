package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"voice-todo/internal/voicetask"
	"voice-todo/pkg/taskphrase"
)

// referenceTime returns the caller's reference time, or the service clock when none was given.
func (uc *implUseCase) referenceTime(given time.Time) time.Time {
	if given.IsZero() {
		return uc.clock.Now()
	}
	return given
}

// parse memoizes taskphrase.Parse. Sub-minute precision never changes a result, so the key uses the
// reference time truncated to the minute, with its offset.
func (uc *implUseCase) parse(ctx context.Context, transcript string, now time.Time) taskphrase.ParsedTask {
	key := now.Truncate(time.Minute).Format(time.RFC3339) + "\x00" + transcript
	if task, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "voicetask.usecase.parse: cache hit")
		task.ConfidenceReasons = slices.Clone(task.ConfidenceReasons)
		return task
	}

	task := taskphrase.Parse(transcript, now)
	uc.cache.Add(key, task)
	task.ConfidenceReasons = slices.Clone(task.ConfidenceReasons)
	return task
}

// decide maps a parse to what the voice flow does with it: invalid parses fall back to the raw
// transcript as a simple task.
func (uc *implUseCase) decide(task taskphrase.ParsedTask) (voicetask.Decision, string) {
	switch {
	case !task.IsValid:
		return voicetask.DecisionSimpleTask, strings.TrimSpace(task.OriginalText)
	case task.Confidence >= uc.threshold:
		return voicetask.DecisionAutoAccept, task.Title
	default:
		return voicetask.DecisionReview, task.Title
	}
}
