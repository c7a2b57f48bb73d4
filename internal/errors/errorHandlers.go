// File: research_hub_go_backend/internal/errors/errorHandlers.go

package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeBadRequest ErrorType = "BAD_REQUEST"
	ErrorTypeUpstream   ErrorType = "UPSTREAM_ERROR"
)

// Fixed validation messages returned to API callers.
const (
	MsgQueryRequired = "Query parameter is required"
	MsgInvalidSource = "Invalid source"
)

// CustomError represents a custom error with associated HTTP status code and type
type CustomError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Internal   error
}

// Error implements the error interface
func (e *CustomError) Error() string {
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Internal
}

// newError creates a new CustomError
func newError(errType ErrorType, message string, statusCode int, internal error) *CustomError {
	return &CustomError{
		Type:       errType,
		Message:    message,
		StatusCode: statusCode,
		Internal:   internal,
	}
}

// NewValidationError creates a bad request error for caller-supplied input
// that fails a precondition.
func NewValidationError(message string) *CustomError {
	return newError(ErrorTypeBadRequest, message, http.StatusBadRequest, nil)
}

// NewUpstreamError creates an internal server error carrying the text of
// the network, status or parse failure that caused it.
func NewUpstreamError(internal error) *CustomError {
	message := "An unexpected error occurred"
	if internal != nil {
		message = internal.Error()
	}
	return newError(ErrorTypeUpstream, message, http.StatusInternalServerError, internal)
}

// IsValidation reports whether err carries a validation failure.
func IsValidation(err error) bool {
	var customErr *CustomError
	return stderrors.As(err, &customErr) && customErr.Type == ErrorTypeBadRequest
}

// HandleError handles the custom error and sends an appropriate JSON response
func HandleError(c *gin.Context, err error) {
	var customErr *CustomError
	if !stderrors.As(err, &customErr) {
		customErr = NewUpstreamError(err)
	}

	if customErr.StatusCode >= http.StatusInternalServerError {
		log.Error().
			Err(customErr.Internal).
			Str("url", c.Request.URL.String()).
			Str("request_id", c.GetString("request_id")).
			Msg("Upstream search failed")
	}

	c.JSON(customErr.StatusCode, gin.H{"error": customErr.Message})
}
