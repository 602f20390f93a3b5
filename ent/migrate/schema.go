// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "entry_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "attempts_taken", Type: field.TypeInt},
		{Name: "stage", Type: field.TypeString},
		{Name: "priority_score", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningItemsColumns holds the columns for the "learning_items" table.
	LearningItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "entry_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString, Default: "introducing"},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "next_due_date", Type: field.TypeTime, Nullable: true},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced_at", Type: field.TypeTime, Nullable: true},
		{Name: "added_at", Type: field.TypeTime},
		{Name: "tier", Type: field.TypeString, Default: ""},
		{Name: "priority_score", Type: field.TypeInt, Default: 80},
	}
	// LearningItemsTable holds the schema information for the "learning_items" table.
	LearningItemsTable = &schema.Table{
		Name:       "learning_items",
		Columns:    LearningItemsColumns,
		PrimaryKey: []*schema.Column{LearningItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningitem_entry_id",
				Unique:  true,
				Columns: []*schema.Column{LearningItemsColumns[1]},
			},
			{
				Name:    "learningitem_stage",
				Unique:  false,
				Columns: []*schema.Column{LearningItemsColumns[2]},
			},
			{
				Name:    "learningitem_next_due_date",
				Unique:  false,
				Columns: []*schema.Column{LearningItemsColumns[6]},
			},
			{
				Name:    "learningitem_priority_score",
				Unique:  false,
				Columns: []*schema.Column{LearningItemsColumns[12]},
			},
		},
	}
	// StageEventsColumns holds the columns for the "stage_events" table.
	StageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "from_stage", Type: field.TypeString},
		{Name: "to_stage", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
	}
	// StageEventsTable holds the schema information for the "stage_events" table.
	StageEventsTable = &schema.Table{
		Name:       "stage_events",
		Columns:    StageEventsColumns,
		PrimaryKey: []*schema.Column{StageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[1]},
			},
			{
				Name:    "stageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[2]},
			},
			{
				Name:    "stageevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[3]},
			},
			{
				Name:    "stageevent_to_stage",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[5]},
			},
		},
	}
	// VocabEntriesColumns holds the columns for the "vocab_entries" table.
	VocabEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "term", Type: field.TypeString},
		{Name: "translation", Type: field.TypeString},
		{Name: "part_of_speech", Type: field.TypeString, Default: ""},
		{Name: "definition", Type: field.TypeString, Default: ""},
		{Name: "examples", Type: field.TypeJSON, Nullable: true},
		{Name: "mnemonic", Type: field.TypeString, Default: ""},
		{Name: "tier", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VocabEntriesTable holds the schema information for the "vocab_entries" table.
	VocabEntriesTable = &schema.Table{
		Name:       "vocab_entries",
		Columns:    VocabEntriesColumns,
		PrimaryKey: []*schema.Column{VocabEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocabentry_term",
				Unique:  true,
				Columns: []*schema.Column{VocabEntriesColumns[1]},
			},
			{
				Name:    "vocabentry_tier",
				Unique:  false,
				Columns: []*schema.Column{VocabEntriesColumns[7]},
			},
			{
				Name:    "vocabentry_topic",
				Unique:  false,
				Columns: []*schema.Column{VocabEntriesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		LlmRequestEventsTable,
		LearningItemsTable,
		StageEventsTable,
		VocabEntriesTable,
	}
)

func init() {
}
