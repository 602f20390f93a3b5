package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lexio/ent"
	"github.com/abhisek/lexio/ent/learningitem"
	"github.com/abhisek/lexio/internal/srs"
)

// itemRepo implements ItemRepo backed by ent.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) Create(ctx context.Context, it *srs.LearningItem) error {
	builder := r.client.LearningItem.Create().
		SetID(it.ID).
		SetEntryID(it.EntryID).
		SetStage(string(it.Stage)).
		SetEaseFactor(it.EaseFactor).
		SetIntervalDays(it.IntervalDays).
		SetRepetitions(it.Repetitions).
		SetCorrectCount(it.CorrectCount).
		SetIncorrectCount(it.IncorrectCount).
		SetAddedAt(it.AddedAt).
		SetTier(string(it.Tier)).
		SetPriorityScore(it.PriorityScore)
	if it.NextDueDate != nil {
		builder = builder.SetNextDueDate(*it.NextDueDate)
	}
	if it.LastPracticedAt != nil {
		builder = builder.SetLastPracticedAt(*it.LastPracticedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create item for entry %s: %w", it.EntryID, err)
	}
	return nil
}

func (r *itemRepo) Get(ctx context.Context, id string) (*srs.LearningItem, error) {
	row, err := r.client.LearningItem.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return itemFromRow(row), nil
}

func (r *itemRepo) All(ctx context.Context) ([]*srs.LearningItem, error) {
	rows, err := r.client.LearningItem.Query().
		Order(ent.Asc(learningitem.FieldAddedAt), ent.Asc(learningitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	items := make([]*srs.LearningItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, itemFromRow(row))
	}
	return items, nil
}

func (r *itemRepo) Save(ctx context.Context, it *srs.LearningItem) error {
	builder := r.client.LearningItem.UpdateOneID(it.ID).
		SetStage(string(it.Stage)).
		SetEaseFactor(it.EaseFactor).
		SetIntervalDays(it.IntervalDays).
		SetRepetitions(it.Repetitions).
		SetCorrectCount(it.CorrectCount).
		SetIncorrectCount(it.IncorrectCount).
		SetTier(string(it.Tier)).
		SetPriorityScore(it.PriorityScore)
	if it.NextDueDate != nil {
		builder = builder.SetNextDueDate(*it.NextDueDate)
	}
	if it.LastPracticedAt != nil {
		builder = builder.SetLastPracticedAt(*it.LastPracticedAt)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("save item %s: %w", it.ID, err)
	}
	return nil
}

func itemFromRow(row *ent.LearningItem) *srs.LearningItem {
	return &srs.LearningItem{
		ID:              row.ID,
		EntryID:         row.EntryID,
		Stage:           srs.Stage(row.Stage),
		EaseFactor:      row.EaseFactor,
		IntervalDays:    row.IntervalDays,
		Repetitions:     row.Repetitions,
		NextDueDate:     row.NextDueDate,
		CorrectCount:    row.CorrectCount,
		IncorrectCount:  row.IncorrectCount,
		LastPracticedAt: row.LastPracticedAt,
		AddedAt:         row.AddedAt,
		Tier:            srs.Tier(row.Tier),
		PriorityScore:   row.PriorityScore,
	}
}
