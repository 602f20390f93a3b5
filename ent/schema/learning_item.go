package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningItem stores the per-entry scheduling state: stage, SM-2 fields,
// lifetime counters, and the last computed priority score.
type LearningItem struct {
	ent.Schema
}

func (LearningItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique(),
		field.String("entry_id").
			NotEmpty().
			Comment("Links to VocabEntry"),
		field.String("stage").
			Default("introducing").
			Comment("introducing, recalling, practicing, or mastered"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("SM-2 ease, clamped to [1.3, 2.5]"),
		field.Int("interval_days").
			Default(0).
			Comment("Days until the next review"),
		field.Int("repetitions").
			Default(0).
			Comment("Consecutive successes since the last failure"),
		field.Time("next_due_date").
			Optional().
			Nillable().
			Comment("Unset for items never reviewed"),
		field.Int("correct_count").
			Default(0),
		field.Int("incorrect_count").
			Default(0),
		field.Time("last_practiced_at").
			Optional().
			Nillable(),
		field.Time("added_at").
			Default(time.Now).
			Immutable(),
		field.String("tier").
			Default("").
			Comment("CEFR difficulty tier copied from the entry"),
		field.Int("priority_score").
			Default(80).
			Comment("Last computed priority, stored for display only"),
	}
}

func (LearningItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entry_id").Unique(),
		index.Fields("stage"),
		index.Fields("next_due_date"),
		index.Fields("priority_score"),
	}
}
