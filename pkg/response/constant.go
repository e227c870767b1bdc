package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 1

	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)
