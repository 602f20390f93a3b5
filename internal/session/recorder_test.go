package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/store"
)

type fakeItemRepo struct {
	saved   []*srs.LearningItem
	saveErr error
}

func (f *fakeItemRepo) Create(ctx context.Context, it *srs.LearningItem) error { return nil }
func (f *fakeItemRepo) Get(ctx context.Context, id string) (*srs.LearningItem, error) {
	return nil, nil
}
func (f *fakeItemRepo) All(ctx context.Context) ([]*srs.LearningItem, error) { return nil, nil }
func (f *fakeItemRepo) Save(ctx context.Context, it *srs.LearningItem) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, it)
	return nil
}

type fakeEventRepo struct {
	attempts []store.AttemptEventData
	stages   []store.StageEventData
}

func (f *fakeEventRepo) AppendAttemptEvent(ctx context.Context, data store.AttemptEventData) error {
	f.attempts = append(f.attempts, data)
	return nil
}
func (f *fakeEventRepo) AppendStageEvent(ctx context.Context, data store.StageEventData) error {
	f.stages = append(f.stages, data)
	return nil
}
func (f *fakeEventRepo) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) RecentAttemptAccuracy(ctx context.Context, itemID string, lastN int) (float64, int, error) {
	return 0, 0, nil
}
func (f *fakeEventRepo) LatestAttemptTime(ctx context.Context, itemID string) (time.Time, error) {
	return time.Time{}, nil
}
func (f *fakeEventRepo) AttemptCounts(ctx context.Context) (int, int, error) { return 0, 0, nil }

func TestRecordAttempt_CorrectUpdatesScheduleAndCounters(t *testing.T) {
	items := &fakeItemRepo{}
	events := &fakeEventRepo{}
	rec := NewRecorder(items, events)

	it := srs.NewLearningItem("i1", "e1", testNow)
	res, err := rec.RecordAttempt(context.Background(), it, srs.AttemptRecord{Correct: true, AttemptsTaken: 1}, "s1", ModeIntroducing, testNow)
	if err != nil {
		t.Fatalf("RecordAttempt() error: %v", err)
	}

	if it.Repetitions != 1 || it.IntervalDays != 1 {
		t.Errorf("Repetitions = %d, IntervalDays = %d, want 1, 1", it.Repetitions, it.IntervalDays)
	}
	if it.CorrectCount != 1 || it.IncorrectCount != 0 {
		t.Errorf("counts = %d/%d, want 1/0", it.CorrectCount, it.IncorrectCount)
	}
	if it.NextDueDate == nil || it.LastPracticedAt == nil {
		t.Fatal("NextDueDate and LastPracticedAt should be set after an attempt")
	}
	if !res.StageChanged || it.Stage != srs.StageRecalling {
		t.Errorf("Stage = %s (changed=%v), want recalling after first success", it.Stage, res.StageChanged)
	}
	if len(items.saved) != 1 {
		t.Errorf("Save called %d times, want 1", len(items.saved))
	}
}

func TestRecordAttempt_FailureResetsAndLogs(t *testing.T) {
	items := &fakeItemRepo{}
	events := &fakeEventRepo{}
	rec := NewRecorder(items, events)

	it := srs.NewLearningItem("i1", "e1", testNow)
	it.Stage = srs.StageRecalling
	it.Repetitions = 2
	it.IntervalDays = 3

	res, err := rec.RecordAttempt(context.Background(), it, srs.AttemptRecord{Correct: false, AttemptsTaken: 3}, "s1", ModeRecalling, testNow)
	if err != nil {
		t.Fatalf("RecordAttempt() error: %v", err)
	}

	if it.Repetitions != 0 || it.IntervalDays != 1 {
		t.Errorf("Repetitions = %d, IntervalDays = %d, want 0, 1", it.Repetitions, it.IntervalDays)
	}
	if it.EaseFactor != 2.3 {
		t.Errorf("EaseFactor = %f, want 2.3", it.EaseFactor)
	}
	if it.IncorrectCount != 1 {
		t.Errorf("IncorrectCount = %d, want 1", it.IncorrectCount)
	}
	// One failure is not enough history to regress out of recalling.
	if res.StageChanged {
		t.Errorf("stage changed to %s on a single failure", it.Stage)
	}

	if len(events.attempts) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(events.attempts))
	}
	ev := events.attempts[0]
	if ev.SessionID != "s1" || ev.Mode != "recalling" || ev.Correct || ev.AttemptsTaken != 3 {
		t.Errorf("attempt event = %+v", ev)
	}
	if len(events.stages) != 0 {
		t.Errorf("stage events = %d, want 0", len(events.stages))
	}
}

func TestRecordAttempt_StageChangeEmitsStageEvent(t *testing.T) {
	items := &fakeItemRepo{}
	events := &fakeEventRepo{}
	rec := NewRecorder(items, events)

	it := srs.NewLearningItem("i1", "e1", testNow)
	res, err := rec.RecordAttempt(context.Background(), it, srs.AttemptRecord{Correct: true, AttemptsTaken: 1}, "s1", ModeIntroducing, testNow)
	if err != nil {
		t.Fatalf("RecordAttempt() error: %v", err)
	}
	if !res.StageChanged {
		t.Fatal("expected stage change")
	}

	if len(events.stages) != 1 {
		t.Fatalf("stage events = %d, want 1", len(events.stages))
	}
	ev := events.stages[0]
	if ev.FromStage != "introducing" || ev.ToStage != "recalling" || ev.Trigger != "correct_attempt" {
		t.Errorf("stage event = %+v", ev)
	}
}

func TestRecordAttempt_RescoresPriority(t *testing.T) {
	items := &fakeItemRepo{}
	rec := NewRecorder(items, nil)

	it := srs.NewLearningItem("i1", "e1", testNow.AddDate(0, 0, -30))
	it.Stage = srs.StageMastered
	it.PriorityScore = 99

	_, err := rec.RecordAttempt(context.Background(), it, srs.AttemptRecord{Correct: true, AttemptsTaken: 1}, "s1", ModePracticing, testNow)
	if err != nil {
		t.Fatalf("RecordAttempt() error: %v", err)
	}
	if it.PriorityScore == 99 {
		t.Error("PriorityScore should be recomputed after the attempt")
	}
}

func TestRecordAttempt_NilEventRepo(t *testing.T) {
	rec := NewRecorder(&fakeItemRepo{}, nil)
	it := srs.NewLearningItem("i1", "e1", testNow)
	if _, err := rec.RecordAttempt(context.Background(), it, srs.AttemptRecord{Correct: true, AttemptsTaken: 1}, "s1", ModeIntroducing, testNow); err != nil {
		t.Fatalf("RecordAttempt() error: %v", err)
	}
}

func TestRecordAttempt_SaveErrorPropagates(t *testing.T) {
	items := &fakeItemRepo{saveErr: errors.New("disk full")}
	rec := NewRecorder(items, nil)
	it := srs.NewLearningItem("i1", "e1", testNow)
	if _, err := rec.RecordAttempt(context.Background(), it, srs.AttemptRecord{Correct: true, AttemptsTaken: 1}, "s1", ModeIntroducing, testNow); err == nil {
		t.Fatal("expected error from failing Save")
	}
}

func TestStateLifecycle(t *testing.T) {
	items := []*srs.LearningItem{
		srs.NewLearningItem("a", "ea", testNow),
		srs.NewLearningItem("b", "eb", testNow),
	}
	st := NewState(ModeIntroducing, SizeQuick, items, testNow)
	if st.ID == "" {
		t.Error("session ID should be set")
	}
	if st.Current().ID != "a" {
		t.Errorf("Current() = %s, want a", st.Current().ID)
	}

	st.RecordOutcome(true, true)
	if !st.Advance() {
		t.Fatal("expected a second item")
	}
	st.RecordOutcome(false, false)
	if st.Advance() {
		t.Fatal("expected session to end")
	}
	if !st.Done() || st.Current() != nil {
		t.Error("session should be done with no current item")
	}

	sum := BuildSummary(st, testNow.Add(4*time.Minute))
	if sum.TotalAttempts != 2 || sum.TotalCorrect != 1 || sum.StageChanges != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Accuracy != 0.5 {
		t.Errorf("Accuracy = %f, want 0.5", sum.Accuracy)
	}
	if sum.Duration != 4*time.Minute {
		t.Errorf("Duration = %v, want 4m", sum.Duration)
	}
	if sum.ItemsStudied != 2 {
		t.Errorf("ItemsStudied = %d, want 2", sum.ItemsStudied)
	}
}
