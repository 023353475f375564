// Package review runs vocabulary review sessions: picking due entries,
// scoring answers with the spaced repetition scheduler and recording the
// results.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
)

// Answer is the learner's response to one review item.
type Answer struct {
	Grade    srs.Grade `json:"grade"`
	Sentence string    `json:"sentence,omitempty"` // optional sentence using the term
}

// Result is the outcome of a submitted answer.
type Result struct {
	Entry *domain.VocabEntry `json:"entry"`
	Log   *domain.ReviewLog  `json:"log"`
}

// Session is the batch of entries due for review.
type Session struct {
	Entries []*domain.VocabEntry `json:"entries"`
	Due     int                  `json:"due"` // total due, may exceed len(Entries)
}

// Stats summarises the vocabulary for the review dashboard.
type Stats struct {
	Total   int               `json:"total"`
	Due     int               `json:"due"`
	ByStage map[srs.Stage]int `json:"by_stage"`
}

// Service provides review sessions over the learner's vocabulary.
type Service interface {
	// StartSession returns up to limit due entries, earliest due first.
	// A limit of zero or less uses the configured default; larger limits are
	// clamped to the configured maximum.
	StartSession(ctx context.Context, limit int, now time.Time) (*Session, error)

	// SubmitAnswer grades one entry.
	//
	// The entry is read under a row lock, rescheduled, optionally given the
	// learner's sentence, saved and logged in a single transaction.
	//
	// Returns:
	//   - ErrInvalidAnswer (wrapping srs.ErrInvalidGrade) for grades other than 0, 1 or 2
	//   - store.ErrVocabNotFound when the entry does not exist
	SubmitAnswer(ctx context.Context, entryID uuid.UUID, answer Answer, now time.Time) (*Result, error)

	// Stats counts entries per stage and entries due at now.
	Stats(ctx context.Context, now time.Time) (*Stats, error)
}

// ErrInvalidAnswer indicates an invalid answer was provided.
var ErrInvalidAnswer = errors.New("invalid answer")

// ServiceError wraps unexpected failures with the operation that hit them.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Message: message, Err: err}
}
