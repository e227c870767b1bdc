package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"voice-todo/internal/voicetask"
)

// ParseBatch parses several transcripts against one shared reference time, so "tomorrow" means the same
// day for every item. Items keep the input order.
func (uc *implUseCase) ParseBatch(ctx context.Context, input voicetask.ParseBatchInput) (voicetask.ParseBatchOutput, error) {
	if len(input.Transcripts) == 0 {
		return voicetask.ParseBatchOutput{}, voicetask.ErrEmptyBatch
	}
	if len(input.Transcripts) > uc.batchMax {
		return voicetask.ParseBatchOutput{}, fmt.Errorf("%w: %d given, limit %d", voicetask.ErrBatchTooLarge, len(input.Transcripts), uc.batchMax)
	}
	for i, transcript := range input.Transcripts {
		if err := uc.checkLength(transcript); err != nil {
			return voicetask.ParseBatchOutput{}, fmt.Errorf("transcript %d: %w", i, err)
		}
	}

	now := uc.referenceTime(input.Now)
	out := voicetask.ParseBatchOutput{
		Items:         make([]voicetask.BatchItem, 0, len(input.Transcripts)),
		ReferenceTime: now,
	}

	for _, transcript := range input.Transcripts {
		task := uc.parse(ctx, transcript, now)
		decision, title := uc.decide(task)
		if task.IsValid {
			out.ValidCount++
		}
		out.Items = append(out.Items, voicetask.BatchItem{
			ID:             uuid.NewString(),
			Task:           task,
			Decision:       decision,
			SuggestedTitle: title,
		})
	}

	uc.l.Infof(ctx, "voicetask.usecase.ParseBatch: parsed %d transcripts, %d valid", len(out.Items), out.ValidCount)
	return out, nil
}
