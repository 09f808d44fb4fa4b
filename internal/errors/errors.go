package errors

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

// Error codes carried in the error_code member of API errors.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// APIError is a client-facing error with a machine readable code
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// New creates an APIError
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{StatusCode: statusCode, ErrorCode: errorCode, Message: message}
}

// Error lists the failed fields for validation errors.
func (e *APIError) Error() string {
	if v, ok := e.Details.(ValidationErrors); ok && len(v.Errors) > 0 {
		return e.Message + ": " + v.String()
	}
	return e.Message
}

// Render implements render.Renderer
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// WithDetails attaches details and returns e.
func (e *APIError) WithDetails(details interface{}) *APIError {
	e.Details = details
	return e
}

// ValidationError is one failed request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors groups the failed fields of one request
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) String() string {
	parts := make([]string, len(v.Errors))
	for i, fe := range v.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// NewValidationErrors returns a 400 listing every failed field
func NewValidationErrors(errs []ValidationError) *APIError {
	return New(http.StatusBadRequest, CodeValidationFailed, "Request validation failed").
		WithDetails(ValidationErrors{Errors: errs})
}

// InvalidRequest returns a 400 for requests that could not be validated at all.
func InvalidRequest(detail string) *APIError {
	return New(http.StatusBadRequest, CodeInvalidRequest, "Invalid request").WithDetails(detail)
}
