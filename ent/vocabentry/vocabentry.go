// Code generated by ent, DO NOT EDIT.

package vocabentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vocabentry type in the database.
	Label = "vocab_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTerm holds the string denoting the term field in the database.
	FieldTerm = "term"
	// FieldTranslation holds the string denoting the translation field in the database.
	FieldTranslation = "translation"
	// FieldPartOfSpeech holds the string denoting the part_of_speech field in the database.
	FieldPartOfSpeech = "part_of_speech"
	// FieldDefinition holds the string denoting the definition field in the database.
	FieldDefinition = "definition"
	// FieldExamples holds the string denoting the examples field in the database.
	FieldExamples = "examples"
	// FieldMnemonic holds the string denoting the mnemonic field in the database.
	FieldMnemonic = "mnemonic"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the vocabentry in the database.
	Table = "vocab_entries"
)

// Columns holds all SQL columns for vocabentry fields.
var Columns = []string{
	FieldID,
	FieldTerm,
	FieldTranslation,
	FieldPartOfSpeech,
	FieldDefinition,
	FieldExamples,
	FieldMnemonic,
	FieldTier,
	FieldTopic,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TermValidator is a validator for the "term" field. It is called by the builders before save.
	TermValidator func(string) error
	// TranslationValidator is a validator for the "translation" field. It is called by the builders before save.
	TranslationValidator func(string) error
	// DefaultPartOfSpeech holds the default value on creation for the "part_of_speech" field.
	DefaultPartOfSpeech string
	// DefaultDefinition holds the default value on creation for the "definition" field.
	DefaultDefinition string
	// DefaultMnemonic holds the default value on creation for the "mnemonic" field.
	DefaultMnemonic string
	// DefaultTier holds the default value on creation for the "tier" field.
	DefaultTier string
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the VocabEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTerm orders the results by the term field.
func ByTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerm, opts...).ToFunc()
}

// ByTranslation orders the results by the translation field.
func ByTranslation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslation, opts...).ToFunc()
}

// ByPartOfSpeech orders the results by the part_of_speech field.
func ByPartOfSpeech(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartOfSpeech, opts...).ToFunc()
}

// ByDefinition orders the results by the definition field.
func ByDefinition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefinition, opts...).ToFunc()
}

// ByMnemonic orders the results by the mnemonic field.
func ByMnemonic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMnemonic, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
