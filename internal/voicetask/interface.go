package voicetask

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	ParseBatch(ctx context.Context, input ParseBatchInput) (ParseBatchOutput, error)
	Examples(ctx context.Context) (ExamplesOutput, error)
}
