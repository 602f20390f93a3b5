package srs

import "testing"

func TestEvaluateTransition_IntroducingAdvances(t *testing.T) {
	next, changed := EvaluateTransition(StageIntroducing, 1, 2.5, 1, 0)
	if !changed || next != StageRecalling {
		t.Errorf("got (%s, %v), want (recalling, true)", next, changed)
	}
}

func TestEvaluateTransition_IntroducingHoldsWithoutRepetition(t *testing.T) {
	next, changed := EvaluateTransition(StageIntroducing, 0, 2.5, 0, 1)
	if changed || next != StageIntroducing {
		t.Errorf("got (%s, %v), want (introducing, false)", next, changed)
	}
}

func TestEvaluateTransition_RecallingAdvances(t *testing.T) {
	// successRate = 8/9 ≈ 0.89 >= 0.75, ease 2.5 >= 2.0, reps 3 >= 3.
	next, changed := EvaluateTransition(StageRecalling, 3, 2.5, 8, 1)
	if !changed || next != StagePracticing {
		t.Errorf("got (%s, %v), want (practicing, true)", next, changed)
	}
}

func TestEvaluateTransition_RecallingBlockedByLowEase(t *testing.T) {
	_, changed := EvaluateTransition(StageRecalling, 3, 1.9, 8, 1)
	if changed {
		t.Error("expected no transition with ease below 2.0")
	}
}

func TestEvaluateTransition_RecallingRegresses(t *testing.T) {
	// total 5, successRate 1/5 = 0.2 < 0.4.
	next, changed := EvaluateTransition(StageRecalling, 0, 1.5, 1, 4)
	if !changed || next != StageIntroducing {
		t.Errorf("got (%s, %v), want (introducing, true)", next, changed)
	}
}

func TestEvaluateTransition_RecallingRegressNeedsHistory(t *testing.T) {
	// successRate 0.25 < 0.4 but only 4 attempts recorded.
	_, changed := EvaluateTransition(StageRecalling, 0, 1.5, 1, 3)
	if changed {
		t.Error("expected no regression with fewer than 5 attempts")
	}
}

func TestEvaluateTransition_PracticingAdvances(t *testing.T) {
	// successRate 17/20 = 0.85, ease 2.3, reps 5 — all at threshold.
	next, changed := EvaluateTransition(StagePracticing, 5, 2.3, 17, 3)
	if !changed || next != StageMastered {
		t.Errorf("got (%s, %v), want (mastered, true)", next, changed)
	}
}

func TestEvaluateTransition_PracticingRegresses(t *testing.T) {
	// total 5, successRate 2/5 = 0.4 < 0.5.
	next, changed := EvaluateTransition(StagePracticing, 1, 2.0, 2, 3)
	if !changed || next != StageRecalling {
		t.Errorf("got (%s, %v), want (recalling, true)", next, changed)
	}
}

func TestEvaluateTransition_MasteredRegresses(t *testing.T) {
	// total 3, successRate 2/3 ≈ 0.67 < 0.7.
	next, changed := EvaluateTransition(StageMastered, 10, 2.5, 2, 1)
	if !changed || next != StagePracticing {
		t.Errorf("got (%s, %v), want (practicing, true)", next, changed)
	}
}

func TestEvaluateTransition_MasteredHolds(t *testing.T) {
	// successRate 7/10 = 0.7 is not below the threshold.
	_, changed := EvaluateTransition(StageMastered, 10, 2.5, 7, 3)
	if changed {
		t.Error("expected mastered item to hold at 0.7 accuracy")
	}
}

func TestEvaluateTransition_ZeroHistoryNeverRegresses(t *testing.T) {
	for _, stage := range []Stage{StageRecalling, StagePracticing, StageMastered} {
		_, changed := EvaluateTransition(stage, 0, 1.3, 0, 0)
		if changed {
			t.Errorf("stage %s: transitioned with no recorded attempts", stage)
		}
	}
}

// stageIndex orders stages along the pipeline for the adjacency check.
var stageIndex = map[Stage]int{
	StageIntroducing: 0,
	StageRecalling:   1,
	StagePracticing:  2,
	StageMastered:    3,
}

func TestEvaluateTransition_OnlyAdjacentMoves(t *testing.T) {
	stages := []Stage{StageIntroducing, StageRecalling, StagePracticing, StageMastered}
	for _, stage := range stages {
		for reps := 0; reps <= 6; reps++ {
			for _, ease := range []float64{1.3, 2.0, 2.3, 2.5} {
				for correct := 0; correct <= 10; correct += 2 {
					for incorrect := 0; incorrect <= 10; incorrect += 2 {
						next, changed := EvaluateTransition(stage, reps, ease, correct, incorrect)
						if !changed {
							continue
						}
						dist := stageIndex[next] - stageIndex[stage]
						if dist != 1 && dist != -1 {
							t.Fatalf("stage %s reps %d ease %f %d/%d: jumped to %s",
								stage, reps, ease, correct, incorrect, next)
						}
					}
				}
			}
		}
	}
}
