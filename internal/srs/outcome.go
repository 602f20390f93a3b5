package srs

import (
	"math"
	"time"
)

// Schedule is the updated scheduling state produced by ComputeNextSchedule.
type Schedule struct {
	Ease         float64
	IntervalDays int
	Repetitions  int
	NextDueDate  time.Time
}

// ComputeNextSchedule applies the SM-2-derived update rule to an item's
// prior scheduling state. Pure function: it reads nothing but its arguments
// and performs no I/O.
//
// On success the ease adjustment depends on how many tries the answer took:
// one try rewards, two tries costs a little, three or more costs more. The
// interval bootstraps through 1 and 3 days before growing multiplicatively.
// On failure repetitions reset and the item comes back tomorrow.
//
// Priors outside their documented domains are clamped rather than rejected.
func ComputeNextSchedule(attempt AttemptRecord, priorEase float64, priorInterval, priorRepetitions int, now time.Time) Schedule {
	ease := clampEase(priorEase)
	if priorInterval < 0 {
		priorInterval = 0
	}
	if priorRepetitions < 0 {
		priorRepetitions = 0
	}

	var s Schedule

	if !attempt.Correct {
		// Attempt count is not consulted on failure.
		s.Repetitions = 0
		s.IntervalDays = 1
		s.Ease = clampEase(ease - easePenaltyFailure)
		s.NextDueDate = midnightUTC(now).AddDate(0, 0, s.IntervalDays)
		return s
	}

	tries := attempt.AttemptsTaken
	if tries < 1 {
		tries = 1
	}

	switch {
	case tries == 1:
		s.Ease = clampEase(ease + easeRewardFirstTry)
	case tries == 2:
		s.Ease = clampEase(ease - easePenaltyTwoTries)
	default:
		s.Ease = clampEase(ease - easePenaltyStruggle)
	}

	s.Repetitions = priorRepetitions + 1

	switch s.Repetitions {
	case 1:
		s.IntervalDays = FirstInterval
	case 2:
		s.IntervalDays = SecondInterval
	default:
		// Uses the freshly computed ease, per the reference algorithm.
		s.IntervalDays = int(math.Round(float64(priorInterval) * s.Ease))
		if s.IntervalDays < 1 {
			// A zero prior interval would otherwise pin the item at an
			// interval of 0 forever. Clamping to one day is a deliberate
			// divergence from the reference.
			s.IntervalDays = 1
		}
	}

	s.NextDueDate = midnightUTC(now).AddDate(0, 0, s.IntervalDays)
	return s
}
