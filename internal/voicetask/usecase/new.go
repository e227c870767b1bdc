package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-todo/pkg/datemath"
	pkgLog "voice-todo/pkg/log"
	"voice-todo/pkg/taskphrase"
)

// Config carries the parser limits and cache sizing.
type Config struct {
	MaxTranscriptLength int
	AutoAcceptThreshold int
	BatchLimit          int
	CacheSize           int
	CacheTTL            time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	clock     datemath.Clock
	cache     *expirable.LRU[string, taskphrase.ParsedTask]
	maxLength int
	threshold int
	batchMax  int
}

// New creates a new voicetask UseCase instance.
func New(l pkgLog.Logger, clock datemath.Clock, cfg Config) *implUseCase {
	return &implUseCase{
		l:         l,
		clock:     clock,
		cache:     expirable.NewLRU[string, taskphrase.ParsedTask](cfg.CacheSize, nil, cfg.CacheTTL),
		maxLength: cfg.MaxTranscriptLength,
		threshold: cfg.AutoAcceptThreshold,
		batchMax:  cfg.BatchLimit,
	}
}
