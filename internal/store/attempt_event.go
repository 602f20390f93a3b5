package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lexio/ent"
	"github.com/abhisek/lexio/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetEntryID(data.EntryID).
		SetMode(data.Mode).
		SetCorrect(data.Correct).
		SetAttemptsTaken(data.AttemptsTaken).
		SetStage(data.Stage).
		SetPriorityScore(data.PriorityScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttemptAccuracy(ctx context.Context, itemID string, lastN int) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.ItemID(itemID)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query attempts: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(count), count, nil
}

func (r *eventRepo) LatestAttemptTime(ctx context.Context, itemID string) (time.Time, error) {
	ev, err := r.client.AttemptEvent.Query().
		Where(attemptevent.ItemID(itemID)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("query latest attempt: %w", err)
	}
	return ev.Timestamp, nil
}

func (r *eventRepo) AttemptCounts(ctx context.Context) (int, int, error) {
	total, err := r.client.AttemptEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count attempts: %w", err)
	}
	correct, err := r.client.AttemptEvent.Query().
		Where(attemptevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct attempts: %w", err)
	}
	return total, correct, nil
}
