package srs

// MinEase is the floor for the ease factor. SM-2 never goes below it.
const MinEase = 1.3

// MaxEase is the ceiling for the ease factor and the value new items start at.
const MaxEase = 2.5

// FirstInterval is the interval in days after the first successful review.
const FirstInterval = 1

// SecondInterval is the interval in days after the second consecutive success.
const SecondInterval = 3

// InitialPriority is the priority score assigned to newly created items.
const InitialPriority = 80

// Ease adjustments applied per attempt outcome.
const (
	easeRewardFirstTry  = 0.1
	easePenaltyTwoTries = 0.05
	easePenaltyStruggle = 0.15
	easePenaltyFailure  = 0.2
)

func clampEase(e float64) float64 {
	if e < MinEase {
		return MinEase
	}
	if e > MaxEase {
		return MaxEase
	}
	return e
}
