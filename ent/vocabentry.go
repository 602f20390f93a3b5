// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lexio/ent/vocabentry"
)

// VocabEntry is the model entity for the VocabEntry schema.
type VocabEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// The word or phrase being learned
	Term string `json:"term,omitempty"`
	// Native-language translation
	Translation string `json:"translation,omitempty"`
	// PartOfSpeech holds the value of the "part_of_speech" field.
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	// LLM-generated learner definition
	Definition string `json:"definition,omitempty"`
	// LLM-generated example sentences
	Examples []string `json:"examples,omitempty"`
	// LLM-generated memory aid
	Mnemonic string `json:"mnemonic,omitempty"`
	// CEFR difficulty tier: a1 through c2
	Tier string `json:"tier,omitempty"`
	// Optional topic grouping from import
	Topic string `json:"topic,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VocabEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocabentry.FieldExamples:
			values[i] = new([]byte)
		case vocabentry.FieldID, vocabentry.FieldTerm, vocabentry.FieldTranslation, vocabentry.FieldPartOfSpeech, vocabentry.FieldDefinition, vocabentry.FieldMnemonic, vocabentry.FieldTier, vocabentry.FieldTopic:
			values[i] = new(sql.NullString)
		case vocabentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VocabEntry fields.
func (_m *VocabEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocabentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case vocabentry.FieldTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term", values[i])
			} else if value.Valid {
				_m.Term = value.String
			}
		case vocabentry.FieldTranslation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translation", values[i])
			} else if value.Valid {
				_m.Translation = value.String
			}
		case vocabentry.FieldPartOfSpeech:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field part_of_speech", values[i])
			} else if value.Valid {
				_m.PartOfSpeech = value.String
			}
		case vocabentry.FieldDefinition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field definition", values[i])
			} else if value.Valid {
				_m.Definition = value.String
			}
		case vocabentry.FieldExamples:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field examples", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Examples); err != nil {
					return fmt.Errorf("unmarshal field examples: %w", err)
				}
			}
		case vocabentry.FieldMnemonic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mnemonic", values[i])
			} else if value.Valid {
				_m.Mnemonic = value.String
			}
		case vocabentry.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case vocabentry.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case vocabentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VocabEntry.
// This includes values selected through modifiers, order, etc.
func (_m *VocabEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VocabEntry.
// Note that you need to call VocabEntry.Unwrap() before calling this method if this VocabEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VocabEntry) Update() *VocabEntryUpdateOne {
	return NewVocabEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VocabEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VocabEntry) Unwrap() *VocabEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VocabEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VocabEntry) String() string {
	var builder strings.Builder
	builder.WriteString("VocabEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("term=")
	builder.WriteString(_m.Term)
	builder.WriteString(", ")
	builder.WriteString("translation=")
	builder.WriteString(_m.Translation)
	builder.WriteString(", ")
	builder.WriteString("part_of_speech=")
	builder.WriteString(_m.PartOfSpeech)
	builder.WriteString(", ")
	builder.WriteString("definition=")
	builder.WriteString(_m.Definition)
	builder.WriteString(", ")
	builder.WriteString("examples=")
	builder.WriteString(fmt.Sprintf("%v", _m.Examples))
	builder.WriteString(", ")
	builder.WriteString("mnemonic=")
	builder.WriteString(_m.Mnemonic)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VocabEntries is a parsable slice of VocabEntry.
type VocabEntries []*VocabEntry
