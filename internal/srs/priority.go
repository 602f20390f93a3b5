package srs

import (
	"math"
	"time"
)

// Priority score bounds and term weights.
const (
	MinPriority = 0
	MaxPriority = 100

	maxOverdueBonus   = 50
	overduePerDay     = 10
	dueTodayBonus     = 30
	notYetDuePerDay   = 2
	easePenaltyWeight = 10
	errorRateWeight   = 20
	newnessWindowDays = 7
	newnessPerDay     = 3
	staleAfterDays    = 14
	stalenessPerDay   = 2
	maxStalenessBonus = 30
	tierBonusStep     = 3
)

// stageBase maps each stage to the score the accumulator starts from.
// Earlier stages rank higher: new material beats maintenance review.
var stageBase = map[Stage]float64{
	StageIntroducing: 80,
	StageRecalling:   60,
	StagePracticing:  40,
	StageMastered:    20,
}

// ComputePriority scores an item for session ranking. The result is always
// in [0, 100]. Each optional input (due date, last-practiced time, tier)
// contributes only when present.
//
// An item that is both overdue and long unpracticed collects both bonuses;
// the compounding mirrors the reference behavior.
func ComputePriority(it *LearningItem, now time.Time) int {
	score := stageBase[it.Stage]

	if it.NextDueDate != nil {
		overdue := DaysBetween(*it.NextDueDate, now)
		switch {
		case overdue > 0:
			score += math.Min(maxOverdueBonus, float64(overdue*overduePerDay))
		case overdue == 0:
			score += dueTodayBonus
		default:
			score -= float64(-overdue * notYetDuePerDay)
		}
	}

	// Harder items (lower ease) rank higher.
	score += (MaxEase - clampEase(it.EaseFactor)) * easePenaltyWeight

	if total := it.TotalAttempts(); total > 0 {
		score += float64(it.IncorrectCount) / float64(total) * errorRateWeight
	}

	if age := DaysBetween(it.AddedAt, now); age < newnessWindowDays {
		score += float64((newnessWindowDays - age) * newnessPerDay)
	}

	if it.LastPracticedAt != nil {
		if idle := DaysBetween(*it.LastPracticedAt, now); idle > staleAfterDays {
			score += math.Min(maxStalenessBonus, float64((idle-staleAfterDays)*stalenessPerDay))
		}
	}

	score += tierBonus(it.Tier)

	rounded := int(math.Round(score))
	if rounded < MinPriority {
		return MinPriority
	}
	if rounded > MaxPriority {
		return MaxPriority
	}
	return rounded
}

// tierBonus gives easier tiers a larger fixed bonus: A1 gets 15, stepping
// down 3 per level to 0 at C2. Unknown tiers contribute nothing.
func tierBonus(t Tier) float64 {
	level, ok := tierLevels[t]
	if !ok {
		return 0
	}
	return float64((len(tierLevels) - 1 - level) * tierBonusStep)
}
