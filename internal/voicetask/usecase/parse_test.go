package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voice-todo/internal/voicetask"
)

func TestParse_Decisions(t *testing.T) {
	tests := []struct {
		name         string
		transcript   string
		wantDecision voicetask.Decision
		wantTitle    string
	}{
		{
			name:         "confident command is auto accepted",
			transcript:   "Add urgent task: Buy milk tomorrow at 2 PM",
			wantDecision: voicetask.DecisionAutoAccept,
			wantTitle:    "Buy milk",
		},
		{
			name:         "bare phrase needs review",
			transcript:   "Buy milk",
			wantDecision: voicetask.DecisionReview,
			wantTitle:    "Buy milk",
		},
		{
			name:         "no title falls back to transcript",
			transcript:   "  remind me to  ",
			wantDecision: voicetask.DecisionSimpleTask,
			wantTitle:    "remind me to",
		},
		{
			name:         "empty transcript",
			transcript:   "",
			wantDecision: voicetask.DecisionSimpleTask,
			wantTitle:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&mockLogger{})

			out, err := uc.Parse(context.Background(), voicetask.ParseInput{Transcript: tt.transcript})
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if out.Decision != tt.wantDecision {
				t.Errorf("Decision = %q, want %q (confidence %d)", out.Decision, tt.wantDecision, out.Task.Confidence)
			}
			if out.SuggestedTitle != tt.wantTitle {
				t.Errorf("SuggestedTitle = %q, want %q", out.SuggestedTitle, tt.wantTitle)
			}
			if !out.ReferenceTime.Equal(refNow) {
				t.Errorf("ReferenceTime = %v, want clock time %v", out.ReferenceTime, refNow)
			}
		})
	}
}

func TestParse_GivenReferenceTime(t *testing.T) {
	uc := newTestUseCase(&mockLogger{})
	given := time.Date(2024, time.December, 26, 8, 0, 0, 0, time.UTC)

	out, err := uc.Parse(context.Background(), voicetask.ParseInput{Transcript: "wrap gifts by Christmas", Now: given})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if out.Task.DueDate != "2025-12-25" {
		t.Errorf("DueDate = %q, want 2025-12-25", out.Task.DueDate)
	}
	if !out.ReferenceTime.Equal(given) {
		t.Errorf("ReferenceTime = %v, want %v", out.ReferenceTime, given)
	}
}

func TestParse_TooLong(t *testing.T) {
	l := &mockLogger{}
	uc := newTestUseCase(l)

	_, err := uc.Parse(context.Background(), voicetask.ParseInput{Transcript: strings.Repeat("a", 201)})
	if !errors.Is(err, voicetask.ErrTranscriptTooLong) {
		t.Fatalf("expected ErrTranscriptTooLong, got %v", err)
	}
	if len(l.warnings) != 1 {
		t.Errorf("expected one warning, got %d", len(l.warnings))
	}
}

func TestParse_LimitCountsRunes(t *testing.T) {
	uc := newTestUseCase(&mockLogger{})

	// 200 two-byte runes are within a 200 character limit.
	_, err := uc.Parse(context.Background(), voicetask.ParseInput{Transcript: strings.Repeat("\u00e9", 200)})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
}

func TestParse_CachedResultIsIsolated(t *testing.T) {
	uc := newTestUseCase(&mockLogger{})
	ctx := context.Background()
	input := voicetask.ParseInput{Transcript: "Remind me to pay rent tomorrow"}

	first, err := uc.Parse(ctx, input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if uc.cache.Len() != 1 {
		t.Fatalf("cache.Len() = %d, want 1", uc.cache.Len())
	}

	second, err := uc.Parse(ctx, input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if second.Task.Title != first.Task.Title || second.Task.DueDate != first.Task.DueDate {
		t.Errorf("cached parse differs: %+v vs %+v", second.Task, first.Task)
	}

	second.Task.ConfidenceReasons[0] = "mutated"
	third, _ := uc.Parse(ctx, input)
	if third.Task.ConfidenceReasons[0] == "mutated" {
		t.Error("mutating a returned result must not change the cache")
	}
}

func TestParse_CacheKeyIncludesZone(t *testing.T) {
	uc := newTestUseCase(&mockLogger{})
	ctx := context.Background()

	// Same instant, different calendar days.
	utc := time.Date(2024, time.June, 16, 2, 0, 0, 0, time.UTC)
	la := utc.In(time.FixedZone("PDT", -7*3600))

	a, _ := uc.Parse(ctx, voicetask.ParseInput{Transcript: "call bank tomorrow", Now: utc})
	b, _ := uc.Parse(ctx, voicetask.ParseInput{Transcript: "call bank tomorrow", Now: la})

	if a.Task.DueDate != "2024-06-17" {
		t.Errorf("UTC DueDate = %q, want 2024-06-17", a.Task.DueDate)
	}
	if b.Task.DueDate != "2024-06-16" {
		t.Errorf("PDT DueDate = %q, want 2024-06-16", b.Task.DueDate)
	}
}

func TestExamples(t *testing.T) {
	uc := newTestUseCase(&mockLogger{})

	out, err := uc.Examples(context.Background())
	if err != nil {
		t.Fatalf("Examples() error: %v", err)
	}
	if len(out.Examples) == 0 {
		t.Error("expected example commands")
	}
}
