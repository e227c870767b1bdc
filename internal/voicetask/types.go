package voicetask

import (
	"time"

	"voice-todo/pkg/taskphrase"
)

// Decision tells the caller what to do with a parse before creating the task.
type Decision string

const (
	// DecisionAutoAccept means the parse is confident enough to create the task as is.
	DecisionAutoAccept Decision = "auto_accept"
	// DecisionReview means the parse should be shown for editing first.
	DecisionReview Decision = "review"
	// DecisionSimpleTask means no usable title came out; the raw transcript becomes the title.
	DecisionSimpleTask Decision = "simple_task"
)

// --- UseCase Inputs ---

// ParseInput is one transcript. A zero Now means the service clock.
type ParseInput struct {
	Transcript string
	Now        time.Time
}

type ParseBatchInput struct {
	Transcripts []string
	Now         time.Time
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Task           taskphrase.ParsedTask
	Decision       Decision
	SuggestedTitle string
	ReferenceTime  time.Time
}

type BatchItem struct {
	ID             string
	Task           taskphrase.ParsedTask
	Decision       Decision
	SuggestedTitle string
}

type ParseBatchOutput struct {
	Items         []BatchItem
	ValidCount    int
	ReferenceTime time.Time
}

type ExamplesOutput struct {
	Examples []string
}
