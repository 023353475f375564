package service

import (
	"errors"
	"fmt"
)

// Common service errors. Callers check them with errors.Is; the API layer
// maps them to status codes.
var (
	// ErrStoryGenerationDisabled is returned when no story generator is
	// configured.
	ErrStoryGenerationDisabled = errors.New("story generation is not configured")

	// ErrDictionaryDisabled is returned when no dictionary is configured.
	ErrDictionaryDisabled = errors.New("dictionary lookup is not configured")

	// ErrInvalidStoryRequest is returned when a story brief is empty.
	ErrInvalidStoryRequest = errors.New("invalid story request")
)

// ServiceError adds the failed operation to an unexpected error.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{Service: service, Operation: operation, Err: err}
}
