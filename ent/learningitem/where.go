// Code generated by ent, DO NOT EDIT.

package learningitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lexio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldID, id))
}

// EntryID applies equality check predicate on the "entry_id" field. It's identical to EntryIDEQ.
func EntryID(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldEntryID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldStage, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldRepetitions, v))
}

// NextDueDate applies equality check predicate on the "next_due_date" field. It's identical to NextDueDateEQ.
func NextDueDate(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldNextDueDate, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldCorrectCount, v))
}

// IncorrectCount applies equality check predicate on the "incorrect_count" field. It's identical to IncorrectCountEQ.
func IncorrectCount(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldIncorrectCount, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldLastPracticedAt, v))
}

// AddedAt applies equality check predicate on the "added_at" field. It's identical to AddedAtEQ.
func AddedAt(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldAddedAt, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldTier, v))
}

// PriorityScore applies equality check predicate on the "priority_score" field. It's identical to PriorityScoreEQ.
func PriorityScore(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldPriorityScore, v))
}

// EntryIDEQ applies the EQ predicate on the "entry_id" field.
func EntryIDEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldEntryID, v))
}

// EntryIDNEQ applies the NEQ predicate on the "entry_id" field.
func EntryIDNEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldEntryID, v))
}

// EntryIDIn applies the In predicate on the "entry_id" field.
func EntryIDIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldEntryID, vs...))
}

// EntryIDNotIn applies the NotIn predicate on the "entry_id" field.
func EntryIDNotIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldEntryID, vs...))
}

// EntryIDGT applies the GT predicate on the "entry_id" field.
func EntryIDGT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldEntryID, v))
}

// EntryIDGTE applies the GTE predicate on the "entry_id" field.
func EntryIDGTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldEntryID, v))
}

// EntryIDLT applies the LT predicate on the "entry_id" field.
func EntryIDLT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldEntryID, v))
}

// EntryIDLTE applies the LTE predicate on the "entry_id" field.
func EntryIDLTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldEntryID, v))
}

// EntryIDContains applies the Contains predicate on the "entry_id" field.
func EntryIDContains(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContains(FieldEntryID, v))
}

// EntryIDHasPrefix applies the HasPrefix predicate on the "entry_id" field.
func EntryIDHasPrefix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasPrefix(FieldEntryID, v))
}

// EntryIDHasSuffix applies the HasSuffix predicate on the "entry_id" field.
func EntryIDHasSuffix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasSuffix(FieldEntryID, v))
}

// EntryIDEqualFold applies the EqualFold predicate on the "entry_id" field.
func EntryIDEqualFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldEntryID, v))
}

// EntryIDContainsFold applies the ContainsFold predicate on the "entry_id" field.
func EntryIDContainsFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldEntryID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldStage, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldRepetitions, v))
}

// NextDueDateEQ applies the EQ predicate on the "next_due_date" field.
func NextDueDateEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldNextDueDate, v))
}

// NextDueDateNEQ applies the NEQ predicate on the "next_due_date" field.
func NextDueDateNEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldNextDueDate, v))
}

// NextDueDateIn applies the In predicate on the "next_due_date" field.
func NextDueDateIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldNextDueDate, vs...))
}

// NextDueDateNotIn applies the NotIn predicate on the "next_due_date" field.
func NextDueDateNotIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldNextDueDate, vs...))
}

// NextDueDateGT applies the GT predicate on the "next_due_date" field.
func NextDueDateGT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldNextDueDate, v))
}

// NextDueDateGTE applies the GTE predicate on the "next_due_date" field.
func NextDueDateGTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldNextDueDate, v))
}

// NextDueDateLT applies the LT predicate on the "next_due_date" field.
func NextDueDateLT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldNextDueDate, v))
}

// NextDueDateLTE applies the LTE predicate on the "next_due_date" field.
func NextDueDateLTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldNextDueDate, v))
}

// NextDueDateIsNil applies the IsNil predicate on the "next_due_date" field.
func NextDueDateIsNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIsNull(FieldNextDueDate))
}

// NextDueDateNotNil applies the NotNil predicate on the "next_due_date" field.
func NextDueDateNotNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotNull(FieldNextDueDate))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldCorrectCount, v))
}

// IncorrectCountEQ applies the EQ predicate on the "incorrect_count" field.
func IncorrectCountEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldIncorrectCount, v))
}

// IncorrectCountNEQ applies the NEQ predicate on the "incorrect_count" field.
func IncorrectCountNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldIncorrectCount, v))
}

// IncorrectCountIn applies the In predicate on the "incorrect_count" field.
func IncorrectCountIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldIncorrectCount, vs...))
}

// IncorrectCountNotIn applies the NotIn predicate on the "incorrect_count" field.
func IncorrectCountNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldIncorrectCount, vs...))
}

// IncorrectCountGT applies the GT predicate on the "incorrect_count" field.
func IncorrectCountGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldIncorrectCount, v))
}

// IncorrectCountGTE applies the GTE predicate on the "incorrect_count" field.
func IncorrectCountGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldIncorrectCount, v))
}

// IncorrectCountLT applies the LT predicate on the "incorrect_count" field.
func IncorrectCountLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldIncorrectCount, v))
}

// IncorrectCountLTE applies the LTE predicate on the "incorrect_count" field.
func IncorrectCountLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldIncorrectCount, v))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldLastPracticedAt, v))
}

// LastPracticedAtIsNil applies the IsNil predicate on the "last_practiced_at" field.
func LastPracticedAtIsNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIsNull(FieldLastPracticedAt))
}

// LastPracticedAtNotNil applies the NotNil predicate on the "last_practiced_at" field.
func LastPracticedAtNotNil() predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotNull(FieldLastPracticedAt))
}

// AddedAtEQ applies the EQ predicate on the "added_at" field.
func AddedAtEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldAddedAt, v))
}

// AddedAtNEQ applies the NEQ predicate on the "added_at" field.
func AddedAtNEQ(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldAddedAt, v))
}

// AddedAtIn applies the In predicate on the "added_at" field.
func AddedAtIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldAddedAt, vs...))
}

// AddedAtNotIn applies the NotIn predicate on the "added_at" field.
func AddedAtNotIn(vs ...time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldAddedAt, vs...))
}

// AddedAtGT applies the GT predicate on the "added_at" field.
func AddedAtGT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldAddedAt, v))
}

// AddedAtGTE applies the GTE predicate on the "added_at" field.
func AddedAtGTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldAddedAt, v))
}

// AddedAtLT applies the LT predicate on the "added_at" field.
func AddedAtLT(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldAddedAt, v))
}

// AddedAtLTE applies the LTE predicate on the "added_at" field.
func AddedAtLTE(v time.Time) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldAddedAt, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldContainsFold(FieldTier, v))
}

// PriorityScoreEQ applies the EQ predicate on the "priority_score" field.
func PriorityScoreEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldEQ(FieldPriorityScore, v))
}

// PriorityScoreNEQ applies the NEQ predicate on the "priority_score" field.
func PriorityScoreNEQ(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNEQ(FieldPriorityScore, v))
}

// PriorityScoreIn applies the In predicate on the "priority_score" field.
func PriorityScoreIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldIn(FieldPriorityScore, vs...))
}

// PriorityScoreNotIn applies the NotIn predicate on the "priority_score" field.
func PriorityScoreNotIn(vs ...int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldNotIn(FieldPriorityScore, vs...))
}

// PriorityScoreGT applies the GT predicate on the "priority_score" field.
func PriorityScoreGT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGT(FieldPriorityScore, v))
}

// PriorityScoreGTE applies the GTE predicate on the "priority_score" field.
func PriorityScoreGTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldGTE(FieldPriorityScore, v))
}

// PriorityScoreLT applies the LT predicate on the "priority_score" field.
func PriorityScoreLT(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLT(FieldPriorityScore, v))
}

// PriorityScoreLTE applies the LTE predicate on the "priority_score" field.
func PriorityScoreLTE(v int) predicate.LearningItem {
	return predicate.LearningItem(sql.FieldLTE(FieldPriorityScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningItem) predicate.LearningItem {
	return predicate.LearningItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningItem) predicate.LearningItem {
	return predicate.LearningItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningItem) predicate.LearningItem {
	return predicate.LearningItem(sql.NotPredicates(p))
}
