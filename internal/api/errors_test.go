package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/leflux-api/internal/api/shared"
	"github.com/phrazzld/leflux-api/internal/dictionary"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/generation"
	"github.com/phrazzld/leflux-api/internal/service"
	"github.com/phrazzld/leflux-api/internal/service/review"
	"github.com/phrazzld/leflux-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "vocab not found", err: store.ErrVocabNotFound, expected: http.StatusNotFound},
		{name: "wrapped text not found", err: fmt.Errorf("loading: %w", store.ErrTextNotFound), expected: http.StatusNotFound},
		{name: "term exists", err: store.ErrTermExists, expected: http.StatusConflict},
		{name: "validation", err: domain.NewValidationError("term", "cannot be empty"), expected: http.StatusBadRequest},
		{name: "invalid grade", err: &srs.InvalidGradeError{Grade: 5}, expected: http.StatusBadRequest},
		{name: "invalid answer", err: review.ErrInvalidAnswer, expected: http.StatusBadRequest},
		{name: "invalid days", err: srs.ErrInvalidDays, expected: http.StatusBadRequest},
		{name: "invalid story", err: service.ErrInvalidStoryRequest, expected: http.StatusBadRequest},
		{name: "blocked", err: generation.ErrContentBlocked, expected: http.StatusUnprocessableEntity},
		{name: "disabled", err: service.ErrStoryGenerationDisabled, expected: http.StatusServiceUnavailable},
		{name: "bad llm config", err: generation.ErrInvalidConfig, expected: http.StatusServiceUnavailable},
		{name: "llm failure", err: generation.ErrGenerationFailed, expected: http.StatusBadGateway},
		{name: "empty llm response", err: generation.ErrEmptyResponse, expected: http.StatusBadGateway},
		{name: "dictionary miss", err: fmt.Errorf("%w: xyzzy (en)", dictionary.ErrNotFound), expected: http.StatusNotFound},
		{name: "dictionary query", err: dictionary.ErrInvalidQuery, expected: http.StatusBadRequest},
		{name: "dictionary disabled", err: service.ErrDictionaryDisabled, expected: http.StatusServiceUnavailable},
		{name: "dictionary failure", err: dictionary.ErrLookupFailed, expected: http.StatusBadGateway},
		{name: "service wrapped store error", err: service.NewServiceError("vocab", "get", store.ErrVocabNotFound), expected: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: "An unexpected error occurred"},
		{name: "validation names the field", err: domain.NewValidationError("lang", "is not a valid language tag"), expected: "Invalid lang: is not a valid language tag"},
		{name: "vocab not found", err: store.ErrVocabNotFound, expected: "Vocabulary entry not found"},
		{name: "text not found", err: store.ErrTextNotFound, expected: "Text not found"},
		{name: "duplicate term", err: store.ErrTermExists, expected: "Term already exists for this language"},
		{name: "grade wins over answer", err: fmt.Errorf("%w: %w", review.ErrInvalidAnswer, &srs.InvalidGradeError{Grade: 9}), expected: "Invalid grade: must be 0 (fail), 1 (hard) or 2 (easy)"},
		{name: "blocked", err: generation.ErrContentBlocked, expected: "The story idea was blocked by the content filter"},
		{name: "dictionary miss", err: dictionary.ErrNotFound, expected: "Term not found in the dictionary"},
		{name: "dictionary failure hides upstream", err: fmt.Errorf("%w: dictionaryapi: unexpected status 502", dictionary.ErrLookupFailed), expected: "Dictionary lookup failed"},
		{name: "internal detail hidden", err: errors.New("dial tcp 10.0.0.3:5432: connection refused"), expected: "An unexpected error occurred"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := shared.ValidateRequest(&PostponeRequest{Days: 400})
	assert.Equal(t, "Invalid days: too large", SanitizeValidationError(err))

	err = shared.ValidateRequest(&CreateVocabRequest{Term: "gato", Lang: "es", AudioURL: "nope"})
	assert.Equal(t, "Invalid audio_url: invalid URL", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
