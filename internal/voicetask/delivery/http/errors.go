package http

import (
	"errors"
	"net/http"

	"voice-todo/internal/voicetask"
	pkgErrors "voice-todo/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voicetask.ErrTranscriptTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, voicetask.ErrBatchTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, voicetask.ErrEmptyBatch),
		errors.Is(err, voicetask.ErrInvalidReferenceTime):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
