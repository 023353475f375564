package srs

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDays is returned when a postponement is shorter than one day or
// longer than the maximum interval.
var ErrInvalidDays = errors.New("invalid postpone days")

// Service defines the interface for scheduler operations
type Service interface {
	// NewState returns the initial state for an item created at now.
	NewState(now time.Time) State

	// Review computes the next state for a learner response.
	// Returns an *InvalidGradeError if grade is not Fail, Hard or Easy.
	Review(state State, grade Grade, now time.Time) (State, error)

	// Postpone pushes the next review forward by whole days without touching
	// any other statistic.
	Postpone(state State, days int) (State, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduler with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduler with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// NewState implements Service.NewState
func (s *defaultService) NewState(now time.Time) State {
	state := NewState(now)
	state.Ease = s.params.InitialEase
	return state
}

// Review implements Service.Review
func (s *defaultService) Review(state State, grade Grade, now time.Time) (State, error) {
	if err := ValidateGrade(grade); err != nil {
		return State{}, err
	}

	return calculateNextState(state, grade, now, s.params), nil
}

// Postpone implements Service.Postpone
func (s *defaultService) Postpone(state State, days int) (State, error) {
	if days < 1 || days > s.params.MaxInterval {
		return State{}, fmt.Errorf("%w: %d (must be 1 to %d)", ErrInvalidDays, days, s.params.MaxInterval)
	}

	next := state
	next.NextReview = state.NextReview.Add(time.Duration(days) * day)
	return next, nil
}

// Review applies the default scheduler to state. It is a convenience for
// callers that do not need custom parameters.
func Review(state State, grade Grade, now time.Time) (State, error) {
	return defaultScheduler.Review(state, grade, now)
}

var defaultScheduler = NewDefaultService()
