package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single exercise attempt within a study session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Study session this attempt belongs to"),
		field.String("item_id").
			NotEmpty().
			Comment("Links to LearningItem"),
		field.String("entry_id").
			NotEmpty().
			Comment("Links to VocabEntry"),
		field.String("mode").
			NotEmpty().
			Comment("introducing, recalling, or practicing"),
		field.Bool("correct").
			Comment("Whether the learner eventually answered correctly"),
		field.Int("attempts_taken").
			Comment("Tries before success or giving up"),
		field.String("stage").
			NotEmpty().
			Comment("Item stage after this attempt was applied"),
		field.Int("priority_score").
			Default(0).
			Comment("Priority recomputed after this attempt"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
		index.Fields("correct"),
	}
}
