package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageEvent records a learning item moving between pipeline stages.
type StageEvent struct {
	ent.Schema
}

func (StageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Comment("Links to LearningItem"),
		field.String("from_stage").
			NotEmpty(),
		field.String("to_stage").
			NotEmpty(),
		field.String("trigger").
			NotEmpty().
			Comment("correct_attempt, failed_attempt, or reset"),
		field.String("session_id").
			Default("").
			Comment("Session during which the move happened, if any"),
	}
}

func (StageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("to_stage"),
	}
}
