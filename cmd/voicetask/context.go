package main

import (
	"fmt"
	"time"

	"voice-todo/internal/voicetask"
	"voice-todo/internal/voicetask/usecase"
	"voice-todo/pkg/datemath"
	"voice-todo/pkg/log"
)

const maxTranscriptLength = 1000

// commandContext holds the persistent flags shared by every subcommand.
type commandContext struct {
	now       string
	timezone  string
	threshold int
}

func (c *commandContext) validate() error {
	if c.threshold < 0 || c.threshold > 100 {
		return fmt.Errorf("--threshold must be in 0..100, got %d", c.threshold)
	}
	_, err := c.referenceTime()
	return err
}

// referenceTime is --now seen from --timezone, or the current time there.
func (c *commandContext) referenceTime() (time.Time, error) {
	clock, err := datemath.NewClock(c.timezone)
	if err != nil {
		return time.Time{}, err
	}
	if c.now == "" {
		return clock.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, c.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: want RFC3339 such as 2024-06-15T10:00:00Z", c.now)
	}
	return t.In(clock.Location()), nil
}

// useCase builds a use case pinned to the reference time so every transcript in one run shares it.
func (c *commandContext) useCase(batchLimit int) (voicetask.UseCase, error) {
	ref, err := c.referenceTime()
	if err != nil {
		return nil, err
	}
	return usecase.New(log.NewNop(), datemath.FixedClock(ref), usecase.Config{
		MaxTranscriptLength: maxTranscriptLength,
		AutoAcceptThreshold: c.threshold,
		BatchLimit:          max(1, batchLimit),
		CacheSize:           max(1, batchLimit),
		CacheTTL:            time.Minute,
	}), nil
}
