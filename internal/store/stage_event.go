package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendStageEvent(ctx context.Context, data StageEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.StageEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetFromStage(data.FromStage).
		SetToStage(data.ToStage).
		SetTrigger(data.Trigger)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save stage event: %w", err)
	}
	return nil
}
