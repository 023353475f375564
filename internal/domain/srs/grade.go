package srs

import (
	"errors"
	"fmt"
)

// Grade is the learner's self-reported recall quality for a single review.
type Grade int

// Possible grade values. The numeric encoding matches what clients send.
const (
	GradeFail Grade = 0
	GradeHard Grade = 1
	GradeEasy Grade = 2
)

var gradeNames = [...]string{
	GradeFail: "fail",
	GradeHard: "hard",
	GradeEasy: "easy",
}

// ErrInvalidGrade is the sentinel wrapped by every InvalidGradeError.
var ErrInvalidGrade = errors.New("invalid grade")

// InvalidGradeError is returned when a grade outside {Fail, Hard, Easy} is
// submitted. The scheduler never coerces such values.
type InvalidGradeError struct {
	Grade Grade
}

// Error implements the error interface.
func (e *InvalidGradeError) Error() string {
	return fmt.Sprintf("%s: %d (must be 0, 1 or 2)", ErrInvalidGrade, int(e.Grade))
}

// Unwrap allows errors.Is(err, ErrInvalidGrade).
func (e *InvalidGradeError) Unwrap() error {
	return ErrInvalidGrade
}

// IsValid reports whether g is one of the three known grades.
func (g Grade) IsValid() bool {
	return g >= GradeFail && g <= GradeEasy
}

// String returns the lower-case name of the grade, or "Grade(n)" when invalid.
func (g Grade) String() string {
	if g.IsValid() {
		return gradeNames[g]
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

// ValidateGrade returns an *InvalidGradeError for grades outside the known set.
func ValidateGrade(g Grade) error {
	if !g.IsValid() {
		return &InvalidGradeError{Grade: g}
	}
	return nil
}
