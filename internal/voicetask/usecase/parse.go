package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"voice-todo/internal/voicetask"
)

// Parse runs one transcript through the parser and decides how the caller should treat the result.
func (uc *implUseCase) Parse(ctx context.Context, input voicetask.ParseInput) (voicetask.ParseOutput, error) {
	if err := uc.checkLength(input.Transcript); err != nil {
		uc.l.Warnf(ctx, "voicetask.usecase.Parse: %v", err)
		return voicetask.ParseOutput{}, err
	}

	now := uc.referenceTime(input.Now)
	task := uc.parse(ctx, input.Transcript, now)
	decision, title := uc.decide(task)

	uc.l.Debugf(ctx, "voicetask.usecase.Parse: confidence=%d decision=%s", task.Confidence, decision)

	return voicetask.ParseOutput{
		Task:           task,
		Decision:       decision,
		SuggestedTitle: title,
		ReferenceTime:  now,
	}, nil
}

func (uc *implUseCase) checkLength(transcript string) error {
	if n := utf8.RuneCountInString(transcript); n > uc.maxLength {
		return fmt.Errorf("%w: %d characters, limit %d", voicetask.ErrTranscriptTooLong, n, uc.maxLength)
	}
	return nil
}
