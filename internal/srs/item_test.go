package srs

import (
	"testing"
	"time"
)

func TestNewLearningItem_Defaults(t *testing.T) {
	it := NewLearningItem("i1", "e1", testNow)
	if it.Stage != StageIntroducing {
		t.Errorf("Stage = %s, want introducing", it.Stage)
	}
	if it.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %f, want 2.5", it.EaseFactor)
	}
	if it.IntervalDays != 0 || it.Repetitions != 0 {
		t.Errorf("IntervalDays = %d, Repetitions = %d, want 0, 0", it.IntervalDays, it.Repetitions)
	}
	if it.PriorityScore != 80 {
		t.Errorf("PriorityScore = %d, want 80", it.PriorityScore)
	}
	if it.NextDueDate != nil {
		t.Error("NextDueDate should be unset for a new item")
	}
}

func TestDaysBetween_CalendarBoundaries(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			"same day",
			time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			0,
		},
		{
			"across midnight counts as one day",
			time.Date(2025, 3, 10, 23, 50, 0, 0, time.UTC),
			time.Date(2025, 3, 11, 0, 10, 0, 0, time.UTC),
			1,
		},
		{
			"negative when to precedes from",
			time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
			-5,
		},
		{
			"non-UTC instants normalized",
			time.Date(2025, 3, 10, 22, 0, 0, 0, time.FixedZone("CET", 3600)),
			time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC),
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsDue(t *testing.T) {
	it := NewLearningItem("i1", "e1", testNow)
	if !it.IsDue(testNow) {
		t.Error("item without a due date should always be due")
	}

	due := testNow.AddDate(0, 0, 2)
	it.NextDueDate = &due
	if it.IsDue(testNow) {
		t.Error("item due in two days should not be due")
	}

	past := testNow.AddDate(0, 0, -1)
	it.NextDueDate = &past
	if !it.IsDue(testNow) {
		t.Error("item one day past due should be due")
	}
}

func TestSuccessRate(t *testing.T) {
	it := NewLearningItem("i1", "e1", testNow)
	if got := it.SuccessRate(); got != 0 {
		t.Errorf("SuccessRate() = %f, want 0 with no attempts", got)
	}
	it.CorrectCount = 3
	it.IncorrectCount = 1
	if got := it.SuccessRate(); got != 0.75 {
		t.Errorf("SuccessRate() = %f, want 0.75", got)
	}
}
