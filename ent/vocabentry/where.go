// Code generated by ent, DO NOT EDIT.

package vocabentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lexio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldID, id))
}

// Term applies equality check predicate on the "term" field. It's identical to TermEQ.
func Term(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTerm, v))
}

// Translation applies equality check predicate on the "translation" field. It's identical to TranslationEQ.
func Translation(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTranslation, v))
}

// PartOfSpeech applies equality check predicate on the "part_of_speech" field. It's identical to PartOfSpeechEQ.
func PartOfSpeech(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldPartOfSpeech, v))
}

// Definition applies equality check predicate on the "definition" field. It's identical to DefinitionEQ.
func Definition(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldDefinition, v))
}

// Mnemonic applies equality check predicate on the "mnemonic" field. It's identical to MnemonicEQ.
func Mnemonic(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldMnemonic, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTier, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTopic, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// TermEQ applies the EQ predicate on the "term" field.
func TermEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTerm, v))
}

// TermNEQ applies the NEQ predicate on the "term" field.
func TermNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldTerm, v))
}

// TermIn applies the In predicate on the "term" field.
func TermIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldTerm, vs...))
}

// TermNotIn applies the NotIn predicate on the "term" field.
func TermNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldTerm, vs...))
}

// TermGT applies the GT predicate on the "term" field.
func TermGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldTerm, v))
}

// TermGTE applies the GTE predicate on the "term" field.
func TermGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldTerm, v))
}

// TermLT applies the LT predicate on the "term" field.
func TermLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldTerm, v))
}

// TermLTE applies the LTE predicate on the "term" field.
func TermLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldTerm, v))
}

// TermContains applies the Contains predicate on the "term" field.
func TermContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldTerm, v))
}

// TermHasPrefix applies the HasPrefix predicate on the "term" field.
func TermHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldTerm, v))
}

// TermHasSuffix applies the HasSuffix predicate on the "term" field.
func TermHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldTerm, v))
}

// TermEqualFold applies the EqualFold predicate on the "term" field.
func TermEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldTerm, v))
}

// TermContainsFold applies the ContainsFold predicate on the "term" field.
func TermContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldTerm, v))
}

// TranslationEQ applies the EQ predicate on the "translation" field.
func TranslationEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTranslation, v))
}

// TranslationNEQ applies the NEQ predicate on the "translation" field.
func TranslationNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldTranslation, v))
}

// TranslationIn applies the In predicate on the "translation" field.
func TranslationIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldTranslation, vs...))
}

// TranslationNotIn applies the NotIn predicate on the "translation" field.
func TranslationNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldTranslation, vs...))
}

// TranslationGT applies the GT predicate on the "translation" field.
func TranslationGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldTranslation, v))
}

// TranslationGTE applies the GTE predicate on the "translation" field.
func TranslationGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldTranslation, v))
}

// TranslationLT applies the LT predicate on the "translation" field.
func TranslationLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldTranslation, v))
}

// TranslationLTE applies the LTE predicate on the "translation" field.
func TranslationLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldTranslation, v))
}

// TranslationContains applies the Contains predicate on the "translation" field.
func TranslationContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldTranslation, v))
}

// TranslationHasPrefix applies the HasPrefix predicate on the "translation" field.
func TranslationHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldTranslation, v))
}

// TranslationHasSuffix applies the HasSuffix predicate on the "translation" field.
func TranslationHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldTranslation, v))
}

// TranslationEqualFold applies the EqualFold predicate on the "translation" field.
func TranslationEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldTranslation, v))
}

// TranslationContainsFold applies the ContainsFold predicate on the "translation" field.
func TranslationContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldTranslation, v))
}

// PartOfSpeechEQ applies the EQ predicate on the "part_of_speech" field.
func PartOfSpeechEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldPartOfSpeech, v))
}

// PartOfSpeechNEQ applies the NEQ predicate on the "part_of_speech" field.
func PartOfSpeechNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldPartOfSpeech, v))
}

// PartOfSpeechIn applies the In predicate on the "part_of_speech" field.
func PartOfSpeechIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldPartOfSpeech, vs...))
}

// PartOfSpeechNotIn applies the NotIn predicate on the "part_of_speech" field.
func PartOfSpeechNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldPartOfSpeech, vs...))
}

// PartOfSpeechGT applies the GT predicate on the "part_of_speech" field.
func PartOfSpeechGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldPartOfSpeech, v))
}

// PartOfSpeechGTE applies the GTE predicate on the "part_of_speech" field.
func PartOfSpeechGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldPartOfSpeech, v))
}

// PartOfSpeechLT applies the LT predicate on the "part_of_speech" field.
func PartOfSpeechLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldPartOfSpeech, v))
}

// PartOfSpeechLTE applies the LTE predicate on the "part_of_speech" field.
func PartOfSpeechLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldPartOfSpeech, v))
}

// PartOfSpeechContains applies the Contains predicate on the "part_of_speech" field.
func PartOfSpeechContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldPartOfSpeech, v))
}

// PartOfSpeechHasPrefix applies the HasPrefix predicate on the "part_of_speech" field.
func PartOfSpeechHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldPartOfSpeech, v))
}

// PartOfSpeechHasSuffix applies the HasSuffix predicate on the "part_of_speech" field.
func PartOfSpeechHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldPartOfSpeech, v))
}

// PartOfSpeechEqualFold applies the EqualFold predicate on the "part_of_speech" field.
func PartOfSpeechEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldPartOfSpeech, v))
}

// PartOfSpeechContainsFold applies the ContainsFold predicate on the "part_of_speech" field.
func PartOfSpeechContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldPartOfSpeech, v))
}

// DefinitionEQ applies the EQ predicate on the "definition" field.
func DefinitionEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldDefinition, v))
}

// DefinitionNEQ applies the NEQ predicate on the "definition" field.
func DefinitionNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldDefinition, v))
}

// DefinitionIn applies the In predicate on the "definition" field.
func DefinitionIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldDefinition, vs...))
}

// DefinitionNotIn applies the NotIn predicate on the "definition" field.
func DefinitionNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldDefinition, vs...))
}

// DefinitionGT applies the GT predicate on the "definition" field.
func DefinitionGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldDefinition, v))
}

// DefinitionGTE applies the GTE predicate on the "definition" field.
func DefinitionGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldDefinition, v))
}

// DefinitionLT applies the LT predicate on the "definition" field.
func DefinitionLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldDefinition, v))
}

// DefinitionLTE applies the LTE predicate on the "definition" field.
func DefinitionLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldDefinition, v))
}

// DefinitionContains applies the Contains predicate on the "definition" field.
func DefinitionContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldDefinition, v))
}

// DefinitionHasPrefix applies the HasPrefix predicate on the "definition" field.
func DefinitionHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldDefinition, v))
}

// DefinitionHasSuffix applies the HasSuffix predicate on the "definition" field.
func DefinitionHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldDefinition, v))
}

// DefinitionEqualFold applies the EqualFold predicate on the "definition" field.
func DefinitionEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldDefinition, v))
}

// DefinitionContainsFold applies the ContainsFold predicate on the "definition" field.
func DefinitionContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldDefinition, v))
}

// ExamplesIsNil applies the IsNil predicate on the "examples" field.
func ExamplesIsNil() predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIsNull(FieldExamples))
}

// ExamplesNotNil applies the NotNil predicate on the "examples" field.
func ExamplesNotNil() predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotNull(FieldExamples))
}

// MnemonicEQ applies the EQ predicate on the "mnemonic" field.
func MnemonicEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldMnemonic, v))
}

// MnemonicNEQ applies the NEQ predicate on the "mnemonic" field.
func MnemonicNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldMnemonic, v))
}

// MnemonicIn applies the In predicate on the "mnemonic" field.
func MnemonicIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldMnemonic, vs...))
}

// MnemonicNotIn applies the NotIn predicate on the "mnemonic" field.
func MnemonicNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldMnemonic, vs...))
}

// MnemonicGT applies the GT predicate on the "mnemonic" field.
func MnemonicGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldMnemonic, v))
}

// MnemonicGTE applies the GTE predicate on the "mnemonic" field.
func MnemonicGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldMnemonic, v))
}

// MnemonicLT applies the LT predicate on the "mnemonic" field.
func MnemonicLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldMnemonic, v))
}

// MnemonicLTE applies the LTE predicate on the "mnemonic" field.
func MnemonicLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldMnemonic, v))
}

// MnemonicContains applies the Contains predicate on the "mnemonic" field.
func MnemonicContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldMnemonic, v))
}

// MnemonicHasPrefix applies the HasPrefix predicate on the "mnemonic" field.
func MnemonicHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldMnemonic, v))
}

// MnemonicHasSuffix applies the HasSuffix predicate on the "mnemonic" field.
func MnemonicHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldMnemonic, v))
}

// MnemonicEqualFold applies the EqualFold predicate on the "mnemonic" field.
func MnemonicEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldMnemonic, v))
}

// MnemonicContainsFold applies the ContainsFold predicate on the "mnemonic" field.
func MnemonicContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldMnemonic, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldTier, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldTopic, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VocabEntry) predicate.VocabEntry {
	return predicate.VocabEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VocabEntry) predicate.VocabEntry {
	return predicate.VocabEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VocabEntry) predicate.VocabEntry {
	return predicate.VocabEntry(sql.NotPredicates(p))
}
