package errors

import "net/http"

// HTTPError is an error that carries the status code the delivery layer should answer with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError returns an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns Code, falling back to 400 for zero or out-of-range codes.
func (e *HTTPError) StatusCode() int {
	if e.Code < 400 || e.Code > 599 {
		return http.StatusBadRequest
	}
	return e.Code
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
