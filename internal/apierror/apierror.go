// Package apierror defines the JSON envelope for every 4xx/5xx response.
// Internal details (driver errors, stack traces) never reach clients.
package apierror

// APIError is the canonical error body.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError lists the failing field -> rule pairs of a request body.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation error", Fields: fields}
}
