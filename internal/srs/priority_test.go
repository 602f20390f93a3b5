package srs

import (
	"testing"
	"time"
)

// baseItem returns an item whose optional terms all contribute zero:
// ease at cap, no history, no due date, added long ago, never practiced.
func baseItem(stage Stage) *LearningItem {
	return &LearningItem{
		Stage:      stage,
		EaseFactor: 2.5,
		AddedAt:    testNow.AddDate(0, 0, -30),
	}
}

func daysAgo(n int) *time.Time {
	t := testNow.AddDate(0, 0, -n)
	return &t
}

func TestComputePriority_StageBases(t *testing.T) {
	tests := []struct {
		stage Stage
		want  int
	}{
		{StageIntroducing, 80},
		{StageRecalling, 60},
		{StagePracticing, 40},
		{StageMastered, 20},
	}
	for _, tt := range tests {
		got := ComputePriority(baseItem(tt.stage), testNow)
		if got != tt.want {
			t.Errorf("stage %s: priority = %d, want %d", tt.stage, got, tt.want)
		}
	}
}

func TestComputePriority_OverdueClampsToMax(t *testing.T) {
	// Introducing base 80 + min(50, 3*10) = 110 -> clamped to 100.
	it := baseItem(StageIntroducing)
	it.NextDueDate = daysAgo(3)
	if got := ComputePriority(it, testNow); got != 100 {
		t.Errorf("priority = %d, want 100", got)
	}
}

func TestComputePriority_OverdueBonusCapped(t *testing.T) {
	// Mastered base 20 + min(50, 90*10) = 70.
	it := baseItem(StageMastered)
	it.NextDueDate = daysAgo(90)
	if got := ComputePriority(it, testNow); got != 70 {
		t.Errorf("priority = %d, want 70", got)
	}
}

func TestComputePriority_DueToday(t *testing.T) {
	it := baseItem(StageMastered)
	it.NextDueDate = daysAgo(0)
	if got := ComputePriority(it, testNow); got != 50 {
		t.Errorf("priority = %d, want 50 (20 base + 30 due today)", got)
	}
}

func TestComputePriority_NotYetDuePenalty(t *testing.T) {
	// Recalling base 60 - 5*2 = 50.
	it := baseItem(StageRecalling)
	due := testNow.AddDate(0, 0, 5)
	it.NextDueDate = &due
	if got := ComputePriority(it, testNow); got != 50 {
		t.Errorf("priority = %d, want 50", got)
	}
}

func TestComputePriority_EasePenalty(t *testing.T) {
	// Mastered base 20 + (2.5-1.3)*10 = 32.
	it := baseItem(StageMastered)
	it.EaseFactor = 1.3
	if got := ComputePriority(it, testNow); got != 32 {
		t.Errorf("priority = %d, want 32", got)
	}
}

func TestComputePriority_ErrorRateBonus(t *testing.T) {
	// Mastered base 20 + (3/10)*20 = 26.
	it := baseItem(StageMastered)
	it.CorrectCount = 7
	it.IncorrectCount = 3
	if got := ComputePriority(it, testNow); got != 26 {
		t.Errorf("priority = %d, want 26", got)
	}
}

func TestComputePriority_NewnessBonus(t *testing.T) {
	// Mastered base 20 + (7-3)*3 = 32.
	it := baseItem(StageMastered)
	it.AddedAt = testNow.AddDate(0, 0, -3)
	if got := ComputePriority(it, testNow); got != 32 {
		t.Errorf("priority = %d, want 32", got)
	}
}

func TestComputePriority_NoNewnessBonusAfterWindow(t *testing.T) {
	it := baseItem(StageMastered)
	it.AddedAt = testNow.AddDate(0, 0, -7)
	if got := ComputePriority(it, testNow); got != 20 {
		t.Errorf("priority = %d, want 20", got)
	}
}

func TestComputePriority_StalenessBonus(t *testing.T) {
	// Mastered base 20 + (20-14)*2 = 32.
	it := baseItem(StageMastered)
	it.LastPracticedAt = daysAgo(20)
	if got := ComputePriority(it, testNow); got != 32 {
		t.Errorf("priority = %d, want 32", got)
	}
}

func TestComputePriority_StalenessBonusCapped(t *testing.T) {
	// Mastered base 20 + min(30, (60-14)*2) = 50.
	it := baseItem(StageMastered)
	it.LastPracticedAt = daysAgo(60)
	if got := ComputePriority(it, testNow); got != 50 {
		t.Errorf("priority = %d, want 50", got)
	}
}

func TestComputePriority_OverdueAndStaleCompound(t *testing.T) {
	// Both terms apply: 20 + 30 (overdue) + 12 (stale) = 62.
	it := baseItem(StageMastered)
	it.NextDueDate = daysAgo(3)
	it.LastPracticedAt = daysAgo(20)
	if got := ComputePriority(it, testNow); got != 62 {
		t.Errorf("priority = %d, want 62", got)
	}
}

func TestComputePriority_TierBonus(t *testing.T) {
	tests := []struct {
		tier Tier
		want int
	}{
		{TierA1, 35}, // 20 + 15
		{TierA2, 32},
		{TierB1, 29},
		{TierB2, 26},
		{TierC1, 23},
		{TierC2, 20}, // hardest tier adds nothing
		{"", 20},     // unknown tier adds nothing
	}
	for _, tt := range tests {
		it := baseItem(StageMastered)
		it.Tier = tt.tier
		if got := ComputePriority(it, testNow); got != tt.want {
			t.Errorf("tier %q: priority = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

func TestComputePriority_ClampsToZero(t *testing.T) {
	// Mastered base 20 - 30*2 due-date penalty goes negative.
	it := baseItem(StageMastered)
	due := testNow.AddDate(0, 0, 30)
	it.NextDueDate = &due
	if got := ComputePriority(it, testNow); got != 0 {
		t.Errorf("priority = %d, want 0", got)
	}
}

func TestComputePriority_AlwaysInRange(t *testing.T) {
	stages := []Stage{StageIntroducing, StageRecalling, StagePracticing, StageMastered}
	dues := []*time.Time{nil, daysAgo(400), daysAgo(0)}
	for _, stage := range stages {
		for _, due := range dues {
			for _, ease := range []float64{1.3, 2.5} {
				it := baseItem(stage)
				it.NextDueDate = due
				it.EaseFactor = ease
				it.IncorrectCount = 50
				it.AddedAt = testNow
				it.LastPracticedAt = daysAgo(365)
				it.Tier = TierA1
				got := ComputePriority(it, testNow)
				if got < MinPriority || got > MaxPriority {
					t.Errorf("stage %s due %v ease %f: priority = %d out of range", stage, due, ease, got)
				}
			}
		}
	}
}

func TestComputePriority_NewItemDefaults(t *testing.T) {
	// A freshly created item: Introducing base 80 + newness (7-0)*3 = 101 -> 100.
	it := NewLearningItem("i1", "e1", testNow)
	if got := ComputePriority(it, testNow); got != 100 {
		t.Errorf("priority = %d, want 100", got)
	}
}
