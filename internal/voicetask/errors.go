package voicetask

import "errors"

var (
	ErrTranscriptTooLong    = errors.New("transcript too long")
	ErrInvalidReferenceTime = errors.New("invalid reference time")
	ErrEmptyBatch           = errors.New("no transcripts given")
	ErrBatchTooLarge        = errors.New("too many transcripts")
)
