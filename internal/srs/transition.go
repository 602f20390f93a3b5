package srs

// Thresholds for promotion and demotion between stages.
const (
	recallingAdvanceReps     = 3
	recallingAdvanceEase     = 2.0
	recallingAdvanceAccuracy = 0.75
	recallingRegressAccuracy = 0.4

	practicingAdvanceReps     = 5
	practicingAdvanceEase     = 2.3
	practicingAdvanceAccuracy = 0.85
	practicingRegressAccuracy = 0.5

	masteredRegressAccuracy = 0.7

	regressMinAttempts         = 5
	masteredRegressMinAttempts = 3
)

// EvaluateTransition decides whether an item should move to an adjacent
// stage given its accumulated performance. It returns the new stage and
// true when a transition applies, or the current stage and false when the
// item stays put. Promotion is checked before demotion; only one step is
// ever taken.
func EvaluateTransition(stage Stage, repetitions int, ease float64, correctCount, incorrectCount int) (Stage, bool) {
	total := correctCount + incorrectCount
	var rate float64
	if total > 0 {
		rate = float64(correctCount) / float64(total)
	}

	switch stage {
	case StageIntroducing:
		if repetitions >= 1 {
			return StageRecalling, true
		}

	case StageRecalling:
		if repetitions >= recallingAdvanceReps && ease >= recallingAdvanceEase && rate >= recallingAdvanceAccuracy {
			return StagePracticing, true
		}
		if total >= regressMinAttempts && rate < recallingRegressAccuracy {
			return StageIntroducing, true
		}

	case StagePracticing:
		if repetitions >= practicingAdvanceReps && ease >= practicingAdvanceEase && rate >= practicingAdvanceAccuracy {
			return StageMastered, true
		}
		if total >= regressMinAttempts && rate < practicingRegressAccuracy {
			return StageRecalling, true
		}

	case StageMastered:
		if total >= masteredRegressMinAttempts && rate < masteredRegressAccuracy {
			return StagePracticing, true
		}
	}

	return stage, false
}
