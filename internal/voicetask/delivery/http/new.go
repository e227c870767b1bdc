package http

import (
	"voice-todo/internal/voicetask"
	"voice-todo/pkg/log"
)

type handler struct {
	l  log.Logger
	uc voicetask.UseCase
}

// New creates a new HTTP handler for the voicetask domain.
func New(l log.Logger, uc voicetask.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
