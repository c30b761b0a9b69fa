package api

import (
	"errors"
	"net/http"

	"github.com/huangsam/awardgap/core"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"File is required"`
	Error      string `json:"error" example:"Bad Request"`
}

// Upload rejection messages.
const (
	msgFileRequired = "File is required"
	msgFileNotCSV   = "File must be a CSV file"
	msgInternal     = "Internal server error"
)

func newErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	}
}

// isInputError reports whether err was caused by the uploaded content rather than the store.
func isInputError(err error) bool {
	return errors.Is(err, core.ErrEmptyInput) ||
		errors.Is(err, core.ErrMalformedInput) ||
		errors.Is(err, core.ErrMissingColumns) ||
		errors.Is(err, core.ErrValidation)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, newErrorResponse(status, message))
}
