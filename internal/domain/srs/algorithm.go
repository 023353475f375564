package srs

import (
	"math"
	"time"
)

// day is the length of one interval unit. Intervals are fixed 24h blocks, not
// calendar days, so the due time is exactly now + interval*86_400_000ms.
const day = 24 * time.Hour

// precision is the number of decimal places kept for ease values and interval
// products. It removes binary drift such as 2.3+0.15 = 2.4499999999999997.
const precision = 1e9

func roundFloat(v float64) float64 {
	return math.Round(v*precision) / precision
}

// calculateNewEase determines the new ease factor for the given grade.
//
// Fail and Hard lower the ease and are floored at params.MinEase. Easy raises
// it without an upper bound.
func calculateNewEase(currentEase float64, grade Grade, params *Params) float64 {
	var newEase float64
	switch grade {
	case GradeFail:
		newEase = math.Max(params.MinEase, currentEase-params.FailEasePenalty)
	case GradeHard:
		newEase = math.Max(params.MinEase, currentEase-params.HardEasePenalty)
	default:
		newEase = currentEase + params.EasyEaseBonus
	}
	return roundFloat(newEase)
}

// calculateNewInterval determines the new interval in days.
//
// Algorithm behavior:
//   - Fail: fixed params.FailInterval (1 day)
//   - Hard: ceil(max(1, interval * params.HardIntervalMultiplier))
//   - Easy: ceil(max(1, interval * ease)), using the ease from BEFORE this review
//
// The max(1, ...) guard lets brand new items (interval 0) advance to one day.
// Results are always rounded up so an item never gets a shorter gap than the
// arithmetic product. Every result saturates at params.MaxInterval.
func calculateNewInterval(currentInterval int, currentEase float64, grade Grade, params *Params) int {
	var product float64
	switch grade {
	case GradeFail:
		return min(params.FailInterval, params.MaxInterval)
	case GradeHard:
		product = float64(currentInterval) * params.HardIntervalMultiplier
	default:
		product = float64(currentInterval) * currentEase
	}

	// Compare as float before converting: the product can exceed MaxInt64.
	interval := math.Ceil(math.Max(1, roundFloat(product)))
	if interval >= float64(params.MaxInterval) {
		return params.MaxInterval
	}
	return int(interval)
}

// calculateStage derives the stage from the post-review statistics.
//
// Every reviewed item is at least "learning". Promotion to "mastered" needs
// both the streak and the interval thresholds. Demotion on low ease is applied
// after promotion and overrides it.
func calculateStage(ease float64, interval, correctStreak int, params *Params) Stage {
	stage := StageLearning

	if correctStreak >= params.MasteryStreak && interval >= params.MasteryInterval {
		stage = StageMastered
	}

	if ease < params.DemotionEase {
		stage = StageLearning
	}

	return stage
}

// calculateNextReview converts an interval in days into an absolute due time.
func calculateNextReview(interval int, now time.Time) time.Time {
	return now.Add(time.Duration(interval) * day)
}

// calculateNextState returns a new State for the given grade. The input is a
// value and is never modified. The grade must already be validated.
func calculateNextState(state State, grade Grade, now time.Time, params *Params) State {
	next := state

	next.Reviews = state.Reviews + 1

	if grade == GradeFail {
		next.CorrectStreak = 0
	} else {
		next.CorrectStreak = state.CorrectStreak + 1
	}

	// Interval first: Easy multiplies by the pre-update ease.
	next.Interval = calculateNewInterval(state.Interval, state.Ease, grade, params)
	next.Ease = calculateNewEase(state.Ease, grade, params)

	next.Stage = calculateStage(next.Ease, next.Interval, next.CorrectStreak, params)
	next.NextReview = calculateNextReview(next.Interval, now)

	return next
}
