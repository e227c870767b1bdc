package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"voice-todo/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// refNow is Saturday 2024-06-15 10:00 UTC.
var refNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func newTestUseCase(l *mockLogger) *implUseCase {
	return New(l, datemath.FixedClock(refNow), Config{
		MaxTranscriptLength: 200,
		AutoAcceptThreshold: 75,
		BatchLimit:          3,
		CacheSize:           16,
		CacheTTL:            time.Minute,
	})
}
