package srs

import (
	"strings"
	"time"
)

// Stage represents an item's position in the learning pipeline.
type Stage string

const (
	StageIntroducing Stage = "introducing"
	StageRecalling   Stage = "recalling"
	StagePracticing  Stage = "practicing"
	StageMastered    Stage = "mastered"
)

// Tier is a CEFR difficulty label for a vocabulary entry.
// The zero value means the tier is unknown.
type Tier string

const (
	TierA1 Tier = "A1"
	TierA2 Tier = "A2"
	TierB1 Tier = "B1"
	TierB2 Tier = "B2"
	TierC1 Tier = "C1"
	TierC2 Tier = "C2"
)

// tierLevels orders tiers from easiest (0) to hardest (5).
var tierLevels = map[Tier]int{
	TierA1: 0,
	TierA2: 1,
	TierB1: 2,
	TierB2: 3,
	TierC1: 4,
	TierC2: 5,
}

// ParseTier canonicalizes a CEFR label, accepting any case. The empty
// string parses to the unknown tier; ok is false for unrecognized labels.
func ParseTier(s string) (Tier, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", true
	}
	t := Tier(s)
	_, ok := tierLevels[t]
	return t, ok
}

// LearningItem is a learner's scheduling state for one vocabulary entry.
type LearningItem struct {
	ID              string     `json:"id"`
	EntryID         string     `json:"entry_id"`
	Stage           Stage      `json:"stage"`
	EaseFactor      float64    `json:"ease_factor"`
	IntervalDays    int        `json:"interval_days"`
	Repetitions     int        `json:"repetitions"`
	NextDueDate     *time.Time `json:"next_due_date"`
	CorrectCount    int        `json:"correct_count"`
	IncorrectCount  int        `json:"incorrect_count"`
	LastPracticedAt *time.Time `json:"last_practiced_at"`
	AddedAt         time.Time  `json:"added_at"`
	Tier            Tier       `json:"tier"`
	PriorityScore   int        `json:"priority_score"`
}

// NewLearningItem creates an item in the Introducing stage with default
// scheduling state.
func NewLearningItem(id, entryID string, addedAt time.Time) *LearningItem {
	return &LearningItem{
		ID:            id,
		EntryID:       entryID,
		Stage:         StageIntroducing,
		EaseFactor:    MaxEase,
		IntervalDays:  0,
		Repetitions:   0,
		AddedAt:       addedAt,
		PriorityScore: InitialPriority,
	}
}

// AttemptRecord describes a single exercise attempt.
type AttemptRecord struct {
	Correct bool
	// AttemptsTaken counts tries before success or giving up. Always >= 1.
	AttemptsTaken int
}

// TotalAttempts returns the lifetime attempt count.
func (it *LearningItem) TotalAttempts() int {
	return it.CorrectCount + it.IncorrectCount
}

// SuccessRate returns lifetime accuracy, or 0 when no attempts are recorded.
func (it *LearningItem) SuccessRate() float64 {
	total := it.TotalAttempts()
	if total == 0 {
		return 0
	}
	return float64(it.CorrectCount) / float64(total)
}

// IsDue returns true if the item has a due date at or before now.
// Items without a due date (never reviewed) are always due.
func (it *LearningItem) IsDue(now time.Time) bool {
	if it.NextDueDate == nil {
		return true
	}
	return DaysBetween(*it.NextDueDate, now) >= 0
}

// DaysOverdue returns how many calendar days past due the item is.
// Negative when the due date is in the future, 0 when due today.
func (it *LearningItem) DaysOverdue(now time.Time) int {
	if it.NextDueDate == nil {
		return 0
	}
	return DaysBetween(*it.NextDueDate, now)
}

// DaysBetween returns the number of calendar days from one instant to
// another, using UTC midnight boundaries. Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	f := midnightUTC(from)
	t := midnightUTC(to)
	return int(t.Sub(f).Hours() / 24)
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
