package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)

	state := NewState(now)

	assert.Equal(t, DefaultEase, state.Ease)
	assert.Equal(t, 0, state.Interval)
	assert.Equal(t, 0, state.CorrectStreak)
	assert.Equal(t, 0, state.Reviews)
	assert.Equal(t, 0, state.Produced)
	assert.Equal(t, StageNew, state.Stage)
	assert.True(t, state.NextReview.Equal(now))
	assert.True(t, state.IsDue(now))
	assert.False(t, state.IsDue(now.Add(-time.Second)))
}

func TestServiceReview(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	now := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)

	t.Run("three easy reviews from new", func(t *testing.T) {
		state := svc.NewState(now)

		expected := []struct {
			interval int
			ease     float64
		}{
			{interval: 1, ease: 2.45},
			{interval: 3, ease: 2.6},
			{interval: 8, ease: 2.75},
		}

		for i, want := range expected {
			next, err := svc.Review(state, GradeEasy, now)
			require.NoError(t, err)

			assert.Equal(t, want.interval, next.Interval, "review %d interval", i+1)
			assert.InDelta(t, want.ease, next.Ease, epsilon, "review %d ease", i+1)
			assert.Equal(t, i+1, next.CorrectStreak)
			assert.Equal(t, i+1, next.Reviews)
			assert.Equal(t, StageLearning, next.Stage)
			assert.True(t, next.NextReview.Equal(now.Add(time.Duration(want.interval)*24*time.Hour)))

			state = next
		}

		assert.NotEqual(t, StageMastered, state.Stage)
	})

	t.Run("invalid grade is rejected", func(t *testing.T) {
		state := svc.NewState(now)

		next, err := svc.Review(state, Grade(3), now)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidGrade))

		var gradeErr *InvalidGradeError
		require.True(t, errors.As(err, &gradeErr))
		assert.Equal(t, Grade(3), gradeErr.Grade)
		assert.Equal(t, State{}, next)
	})

	t.Run("package-level review uses defaults", func(t *testing.T) {
		state := State{Ease: 2.0, Interval: 10, Stage: StageLearning}

		next, err := Review(state, GradeEasy, now)
		require.NoError(t, err)
		assert.Equal(t, 20, next.Interval)
		assert.InDelta(t, 2.15, next.Ease, epsilon)
	})
}

func TestServiceWithParams(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)

	svc := NewServiceWithParams(NewParams(ParamsConfig{
		InitialEase:     2.5,
		MasteryStreak:   1,
		MasteryInterval: 1,
	}))

	state := svc.NewState(now)
	assert.Equal(t, 2.5, state.Ease)

	next, err := svc.Review(state, GradeEasy, now)
	require.NoError(t, err)
	assert.Equal(t, StageMastered, next.Stage)

	assert.NotNil(t, NewServiceWithParams(nil))
}

func TestServicePostpone(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	now := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)

	state := State{Ease: 2.1, Interval: 5, NextReview: now, CorrectStreak: 2, Reviews: 6, Stage: StageLearning}

	next, err := svc.Postpone(state, 3)
	require.NoError(t, err)
	assert.True(t, next.NextReview.Equal(now.Add(72*time.Hour)))
	assert.Equal(t, state.Interval, next.Interval)
	assert.Equal(t, state.Reviews, next.Reviews)
	assert.Equal(t, state.Ease, next.Ease)

	_, err = svc.Postpone(state, 0)
	assert.ErrorIs(t, err, ErrInvalidDays)

	_, err = svc.Postpone(state, DefaultMaxInterval+1)
	assert.ErrorIs(t, err, ErrInvalidDays)

	next, err = svc.Postpone(state, DefaultMaxInterval)
	require.NoError(t, err)
	assert.True(t, next.NextReview.After(state.NextReview))
}
