package srs

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func TestComputeNextSchedule_FirstSuccess(t *testing.T) {
	s := ComputeNextSchedule(AttemptRecord{Correct: true, AttemptsTaken: 1}, 2.5, 0, 0, testNow)

	if s.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", s.Repetitions)
	}
	if s.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", s.IntervalDays)
	}
	if s.Ease != 2.5 {
		t.Errorf("Ease = %f, want 2.5 (already at cap)", s.Ease)
	}
	wantDue := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !s.NextDueDate.Equal(wantDue) {
		t.Errorf("NextDueDate = %v, want %v", s.NextDueDate, wantDue)
	}
}

func TestComputeNextSchedule_SecondSuccess(t *testing.T) {
	s := ComputeNextSchedule(AttemptRecord{Correct: true, AttemptsTaken: 1}, 2.5, 1, 1, testNow)

	if s.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", s.Repetitions)
	}
	if s.IntervalDays != 3 {
		t.Errorf("IntervalDays = %d, want 3", s.IntervalDays)
	}
	if s.Ease != 2.5 {
		t.Errorf("Ease = %f, want 2.5", s.Ease)
	}
}

func TestComputeNextSchedule_ThirdSuccessGrowsMultiplicatively(t *testing.T) {
	// round(3 * 2.5) = 8
	s := ComputeNextSchedule(AttemptRecord{Correct: true, AttemptsTaken: 1}, 2.5, 3, 2, testNow)

	if s.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", s.Repetitions)
	}
	if s.IntervalDays != 8 {
		t.Errorf("IntervalDays = %d, want 8", s.IntervalDays)
	}
}

func TestComputeNextSchedule_EaseByAttemptsTaken(t *testing.T) {
	tests := []struct {
		name     string
		tries    int
		prior    float64
		wantEase float64
	}{
		{"one try rewards", 1, 2.0, 2.1},
		{"two tries costs a little", 2, 2.0, 1.95},
		{"three tries costs more", 3, 2.0, 1.85},
		{"five tries same as three", 5, 2.0, 1.85},
		{"reward clamped at cap", 1, 2.5, 2.5},
		{"struggle clamped at floor", 3, 1.35, 1.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeNextSchedule(AttemptRecord{Correct: true, AttemptsTaken: tt.tries}, tt.prior, 10, 5, testNow)
			if diff := s.Ease - tt.wantEase; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Ease = %f, want %f", s.Ease, tt.wantEase)
			}
		})
	}
}

func TestComputeNextSchedule_FailureResets(t *testing.T) {
	priors := []struct {
		ease     float64
		interval int
		reps     int
	}{
		{2.5, 0, 0},
		{2.5, 30, 6},
		{1.8, 8, 3},
		{1.3, 1, 1},
	}
	for _, p := range priors {
		s := ComputeNextSchedule(AttemptRecord{Correct: false, AttemptsTaken: 4}, p.ease, p.interval, p.reps, testNow)
		if s.Repetitions != 0 {
			t.Errorf("priors %+v: Repetitions = %d, want 0", p, s.Repetitions)
		}
		if s.IntervalDays != 1 {
			t.Errorf("priors %+v: IntervalDays = %d, want 1", p, s.IntervalDays)
		}
	}
}

func TestComputeNextSchedule_FailureAtEaseFloor(t *testing.T) {
	s := ComputeNextSchedule(AttemptRecord{Correct: false, AttemptsTaken: 1}, 1.3, 5, 2, testNow)
	if s.Ease != 1.3 {
		t.Errorf("Ease = %f, want 1.3 (stays at floor)", s.Ease)
	}
}

func TestComputeNextSchedule_FirstTrySuccessNeverLowersEase(t *testing.T) {
	for ease := 1.3; ease <= 2.5; ease += 0.1 {
		s := ComputeNextSchedule(AttemptRecord{Correct: true, AttemptsTaken: 1}, ease, 3, 2, testNow)
		if s.Ease < ease {
			t.Errorf("ease %f: new ease %f decreased on first-try success", ease, s.Ease)
		}
	}
}

func TestComputeNextSchedule_EaseAlwaysInRange(t *testing.T) {
	attempts := []AttemptRecord{
		{Correct: true, AttemptsTaken: 1},
		{Correct: true, AttemptsTaken: 2},
		{Correct: true, AttemptsTaken: 7},
		{Correct: false, AttemptsTaken: 1},
	}
	for _, a := range attempts {
		for _, ease := range []float64{0, 1.0, 1.3, 2.0, 2.5, 3.7} {
			s := ComputeNextSchedule(a, ease, 10, 4, testNow)
			if s.Ease < MinEase || s.Ease > MaxEase {
				t.Errorf("attempt %+v prior ease %f: Ease = %f out of [%f, %f]",
					a, ease, s.Ease, MinEase, MaxEase)
			}
		}
	}
}

func TestComputeNextSchedule_ZeroPriorIntervalClamped(t *testing.T) {
	// An item that reaches repetitions >= 3 with a zero prior interval would
	// otherwise schedule itself for today forever.
	s := ComputeNextSchedule(AttemptRecord{Correct: true, AttemptsTaken: 1}, 2.5, 0, 4, testNow)
	if s.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", s.IntervalDays)
	}
}

func TestComputeNextSchedule_OutOfRangePriorsClamped(t *testing.T) {
	s := ComputeNextSchedule(AttemptRecord{Correct: true, AttemptsTaken: 1}, 9.9, -3, -2, testNow)
	if s.Ease != MaxEase {
		t.Errorf("Ease = %f, want %f", s.Ease, MaxEase)
	}
	if s.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", s.Repetitions)
	}
}

func TestComputeNextSchedule_DueDateUsesCalendarDays(t *testing.T) {
	// 23:50 UTC — adding one interval day must land on the next calendar
	// day boundary, not 24 elapsed hours later.
	lateNight := time.Date(2025, 3, 10, 23, 50, 0, 0, time.UTC)
	s := ComputeNextSchedule(AttemptRecord{Correct: true, AttemptsTaken: 1}, 2.5, 0, 0, lateNight)
	wantDue := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !s.NextDueDate.Equal(wantDue) {
		t.Errorf("NextDueDate = %v, want %v", s.NextDueDate, wantDue)
	}
}
