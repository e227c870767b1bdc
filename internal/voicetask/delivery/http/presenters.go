package http

import (
	"time"

	"voice-todo/internal/voicetask"
	"voice-todo/pkg/response"
	"voice-todo/pkg/taskphrase"
)

// --- Request DTOs ---

type parseReq struct {
	Transcript string `json:"transcript"`
	// Now is an optional RFC3339 reference time; its offset decides the calendar day.
	Now string `json:"now"`
}

func (r parseReq) toInput(now time.Time) voicetask.ParseInput {
	return voicetask.ParseInput{
		Transcript: r.Transcript,
		Now:        now,
	}
}

type parseBatchReq struct {
	Transcripts []string `json:"transcripts" binding:"required"`
	Now         string   `json:"now"`
}

func (r parseBatchReq) toInput(now time.Time) voicetask.ParseBatchInput {
	return voicetask.ParseBatchInput{
		Transcripts: r.Transcripts,
		Now:         now,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Title             string   `json:"title"`
	Priority          string   `json:"priority,omitempty"`
	Category          string   `json:"category,omitempty"`
	DueDate           string   `json:"due_date,omitempty"`
	DueTime           string   `json:"due_time,omitempty"`
	Description       string   `json:"description,omitempty"`
	IsValid           bool     `json:"is_valid"`
	OriginalText      string   `json:"original_text"`
	Confidence        int      `json:"confidence"`
	ConfidenceReasons []string `json:"confidence_reasons"`
}

func newTaskResp(t taskphrase.ParsedTask) taskResp {
	return taskResp{
		Title:             t.Title,
		Priority:          string(t.Priority),
		Category:          t.Category,
		DueDate:           t.DueDate,
		DueTime:           t.DueTime,
		Description:       t.Description,
		IsValid:           t.IsValid,
		OriginalText:      t.OriginalText,
		Confidence:        t.Confidence,
		ConfidenceReasons: t.ConfidenceReasons,
	}
}

type parseResp struct {
	Task           taskResp          `json:"task"`
	Decision       string            `json:"decision"`
	SuggestedTitle string            `json:"suggested_title"`
	ReferenceTime  response.DateTime `json:"reference_time" swaggertype:"string"`
}

func (h *handler) newParseResp(out voicetask.ParseOutput) parseResp {
	return parseResp{
		Task:           newTaskResp(out.Task),
		Decision:       string(out.Decision),
		SuggestedTitle: out.SuggestedTitle,
		ReferenceTime:  response.DateTime(out.ReferenceTime),
	}
}

type batchItemResp struct {
	ID             string   `json:"id"`
	Task           taskResp `json:"task"`
	Decision       string   `json:"decision"`
	SuggestedTitle string   `json:"suggested_title"`
}

type parseBatchResp struct {
	Items         []batchItemResp   `json:"items"`
	Count         int               `json:"count"`
	ValidCount    int               `json:"valid_count"`
	ReferenceTime response.DateTime `json:"reference_time" swaggertype:"string"`
}

func (h *handler) newParseBatchResp(out voicetask.ParseBatchOutput) parseBatchResp {
	items := make([]batchItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = batchItemResp{
			ID:             item.ID,
			Task:           newTaskResp(item.Task),
			Decision:       string(item.Decision),
			SuggestedTitle: item.SuggestedTitle,
		}
	}
	return parseBatchResp{
		Items:         items,
		Count:         len(items),
		ValidCount:    out.ValidCount,
		ReferenceTime: response.DateTime(out.ReferenceTime),
	}
}

type examplesResp struct {
	Examples []string `json:"examples"`
}

func (h *handler) newExamplesResp(out voicetask.ExamplesOutput) examplesResp {
	return examplesResp{Examples: out.Examples}
}
