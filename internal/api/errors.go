package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/leflux-api/internal/api/shared"
	"github.com/phrazzld/leflux-api/internal/dictionary"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/generation"
	"github.com/phrazzld/leflux-api/internal/service"
	"github.com/phrazzld/leflux-api/internal/service/review"
	"github.com/phrazzld/leflux-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, dictionary.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, review.ErrInvalidAnswer),
		errors.Is(err, srs.ErrInvalidGrade),
		errors.Is(err, srs.ErrInvalidDays),
		errors.Is(err, service.ErrInvalidStoryRequest),
		errors.Is(err, generation.ErrInvalidPrompt),
		errors.Is(err, dictionary.ErrInvalidQuery):
		return http.StatusBadRequest

	// Dictionary
	case errors.Is(err, service.ErrDictionaryDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, dictionary.ErrLookupFailed):
		return http.StatusBadGateway

	// Story generation
	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrStoryGenerationDisabled),
		errors.Is(err, generation.ErrInvalidConfig):
		return http.StatusServiceUnavailable
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrEmptyResponse):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)
	}

	switch {
	case errors.Is(err, store.ErrVocabNotFound):
		return "Vocabulary entry not found"
	case errors.Is(err, store.ErrTextNotFound):
		return "Text not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, dictionary.ErrNotFound):
		return "Term not found in the dictionary"

	case errors.Is(err, store.ErrTermExists):
		return "Term already exists for this language"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, srs.ErrInvalidGrade):
		return "Invalid grade: must be 0 (fail), 1 (hard) or 2 (easy)"
	case errors.Is(err, review.ErrInvalidAnswer):
		return "Invalid answer"
	case errors.Is(err, srs.ErrInvalidDays):
		return "Invalid number of days"
	case errors.Is(err, domain.ErrEmptyContent):
		return "Content cannot be empty"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, service.ErrInvalidStoryRequest),
		errors.Is(err, generation.ErrInvalidPrompt):
		return "Invalid story request"
	case errors.Is(err, dictionary.ErrInvalidQuery):
		return "Term and language are required"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The story idea was blocked by the content filter"
	case errors.Is(err, service.ErrStoryGenerationDisabled),
		errors.Is(err, generation.ErrInvalidConfig):
		return "Story generation is not available"
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrEmptyResponse):
		return "Story generation failed"

	case errors.Is(err, service.ErrDictionaryDisabled):
		return "Dictionary lookup is not available"
	case errors.Is(err, dictionary.ErrLookupFailed):
		return "Dictionary lookup failed"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message that
// names the first failing field and nothing else.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte", "gt":
		return "too small"
	case "max", "lte", "lt":
		return "too large"
	case "oneof":
		return "invalid value"
	case "url", "http_url":
		return "invalid URL"
	case "bcp47_language_tag":
		return "invalid language tag"
	default:
		return "validation failed"
	}
}

// HandleAPIError maps err to a status code and writes a sanitized response.
// fallback replaces the generic message for 5xx errors when set.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
