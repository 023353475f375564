// Package srs implements the spaced repetition scheduler used for vocabulary
// review. It is a pure calculation package: callers pass a State and a Grade
// in and receive a new State back. Persistence is the caller's concern.
package srs

import "time"

// Stage is a coarse progress bucket derived from the scheduling statistics.
type Stage string

// Possible stage values
const (
	StageNew      Stage = "new"
	StageLearning Stage = "learning"
	StageMastered Stage = "mastered"
)

// IsValid reports whether s is one of the known stages.
func (s Stage) IsValid() bool {
	switch s {
	case StageNew, StageLearning, StageMastered:
		return true
	default:
		return false
	}
}

// DefaultEase is the ease factor assigned to brand new items.
const DefaultEase = 2.3

// State is the per-item scheduling state.
type State struct {
	Ease          float64   `json:"ease"`
	Interval      int       `json:"interval"` // days until the next review
	NextReview    time.Time `json:"next_review"`
	CorrectStreak int       `json:"correct_streak"`
	Reviews       int       `json:"reviews"`
	Produced      int       `json:"produced"` // learner sentences, maintained by the host
	Stage         Stage     `json:"stage"`
}

// NewState returns the initial scheduling state for an item created at now.
// The item is due immediately.
func NewState(now time.Time) State {
	return State{
		Ease:          DefaultEase,
		Interval:      0,
		NextReview:    now,
		CorrectStreak: 0,
		Reviews:       0,
		Produced:      0,
		Stage:         StageNew,
	}
}

// IsDue reports whether the item should be presented at now.
func (s State) IsDue(now time.Time) bool {
	return !s.NextReview.After(now)
}
