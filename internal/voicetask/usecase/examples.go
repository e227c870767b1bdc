package usecase

import (
	"context"

	"voice-todo/internal/voicetask"
	"voice-todo/pkg/taskphrase"
)

func (uc *implUseCase) Examples(ctx context.Context) (voicetask.ExamplesOutput, error) {
	return voicetask.ExamplesOutput{Examples: taskphrase.Examples()}, nil
}
