package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VocabEntry stores one vocabulary item: the term, its translation, and
// any LLM-generated enrichment content.
type VocabEntry struct {
	ent.Schema
}

func (VocabEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique(),
		field.String("term").
			NotEmpty().
			Comment("The word or phrase being learned"),
		field.String("translation").
			NotEmpty().
			Comment("Native-language translation"),
		field.String("part_of_speech").
			Default(""),
		field.String("definition").
			Default("").
			Comment("LLM-generated learner definition"),
		field.JSON("examples", []string{}).
			Optional().
			Comment("LLM-generated example sentences"),
		field.String("mnemonic").
			Default("").
			Comment("LLM-generated memory aid"),
		field.String("tier").
			Default("").
			Comment("CEFR difficulty tier: a1 through c2"),
		field.String("topic").
			Default("").
			Comment("Optional topic grouping from import"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (VocabEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("term").Unique(),
		index.Fields("tier"),
		index.Fields("topic"),
	}
}
