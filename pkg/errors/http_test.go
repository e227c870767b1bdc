package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "voice-todo/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        *pkgErrors.HTTPError
		wantStatus int
	}{
		{"payload too large", pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "too long"), http.StatusRequestEntityTooLarge},
		{"zero code", pkgErrors.NewHTTPError(0, "bad"), http.StatusBadRequest},
		{"success code is not an error", pkgErrors.NewHTTPError(http.StatusOK, "odd"), http.StatusBadRequest},
		{"internal", pkgErrors.ErrInternalServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.wantStatus {
				t.Errorf("StatusCode() = %d, want %d", got, tt.wantStatus)
			}
			if tt.err.Error() != tt.err.Message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.err.Message)
			}
		})
	}
}

func TestHTTPError_As(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.ErrTooManyRequests)

	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("expected errors.As to find the HTTPError")
	}
	if httpErr.StatusCode() != http.StatusTooManyRequests {
		t.Errorf("StatusCode() = %d, want 429", httpErr.StatusCode())
	}
}
