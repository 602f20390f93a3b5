package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/store"
)

// Recorder applies an attempt outcome to a learning item: reschedule,
// evaluate stage transition, rescore priority, then persist and log events.
//
// Callers must serialize attempts against the same item; the recorder does
// read-modify-write with no internal locking.
type Recorder struct {
	items  store.ItemRepo
	events store.EventRepo
}

// NewRecorder creates a Recorder. events may be nil, in which case no
// events are logged.
func NewRecorder(items store.ItemRepo, events store.EventRepo) *Recorder {
	return &Recorder{items: items, events: events}
}

// AttemptResult reports what an attempt changed.
type AttemptResult struct {
	Item          *srs.LearningItem
	StageChanged  bool
	PreviousStage srs.Stage
}

// RecordAttempt applies a single attempt to the item and persists the
// updated state. The stage transition is evaluated against the item's
// post-reschedule values.
func (r *Recorder) RecordAttempt(ctx context.Context, it *srs.LearningItem, attempt srs.AttemptRecord, sessionID string, mode Mode, now time.Time) (*AttemptResult, error) {
	sched := srs.ComputeNextSchedule(attempt, it.EaseFactor, it.IntervalDays, it.Repetitions, now)

	it.EaseFactor = sched.Ease
	it.IntervalDays = sched.IntervalDays
	it.Repetitions = sched.Repetitions
	it.NextDueDate = &sched.NextDueDate
	it.LastPracticedAt = &now
	if attempt.Correct {
		it.CorrectCount++
	} else {
		it.IncorrectCount++
	}

	prevStage := it.Stage
	next, changed := srs.EvaluateTransition(it.Stage, it.Repetitions, it.EaseFactor, it.CorrectCount, it.IncorrectCount)
	if changed {
		it.Stage = next
	}

	it.PriorityScore = srs.ComputePriority(it, now)

	if err := r.items.Save(ctx, it); err != nil {
		return nil, fmt.Errorf("saving item %s: %w", it.ID, err)
	}

	if r.events != nil {
		err := r.events.AppendAttemptEvent(ctx, store.AttemptEventData{
			SessionID:     sessionID,
			ItemID:        it.ID,
			EntryID:       it.EntryID,
			Mode:          string(mode),
			Correct:       attempt.Correct,
			AttemptsTaken: attempt.AttemptsTaken,
			Stage:         string(it.Stage),
			PriorityScore: it.PriorityScore,
		})
		if err != nil {
			return nil, fmt.Errorf("logging attempt for item %s: %w", it.ID, err)
		}
		if changed {
			err := r.events.AppendStageEvent(ctx, store.StageEventData{
				ItemID:    it.ID,
				FromStage: string(prevStage),
				ToStage:   string(it.Stage),
				Trigger:   triggerForAttempt(attempt),
				SessionID: sessionID,
			})
			if err != nil {
				return nil, fmt.Errorf("logging stage change for item %s: %w", it.ID, err)
			}
		}
	}

	return &AttemptResult{
		Item:          it,
		StageChanged:  changed,
		PreviousStage: prevStage,
	}, nil
}

func triggerForAttempt(attempt srs.AttemptRecord) string {
	if attempt.Correct {
		return "correct_attempt"
	}
	return "failed_attempt"
}
