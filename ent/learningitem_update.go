// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexio/ent/learningitem"
	"github.com/abhisek/lexio/ent/predicate"
)

// LearningItemUpdate is the builder for updating LearningItem entities.
type LearningItemUpdate struct {
	config
	hooks    []Hook
	mutation *LearningItemMutation
}

// Where appends a list predicates to the LearningItemUpdate builder.
func (_u *LearningItemUpdate) Where(ps ...predicate.LearningItem) *LearningItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *LearningItemUpdate) SetEntryID(v string) *LearningItemUpdate {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableEntryID(v *string) *LearningItemUpdate {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *LearningItemUpdate) SetStage(v string) *LearningItemUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableStage(v *string) *LearningItemUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *LearningItemUpdate) SetEaseFactor(v float64) *LearningItemUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableEaseFactor(v *float64) *LearningItemUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *LearningItemUpdate) AddEaseFactor(v float64) *LearningItemUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *LearningItemUpdate) SetIntervalDays(v int) *LearningItemUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableIntervalDays(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *LearningItemUpdate) AddIntervalDays(v int) *LearningItemUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *LearningItemUpdate) SetRepetitions(v int) *LearningItemUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableRepetitions(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *LearningItemUpdate) AddRepetitions(v int) *LearningItemUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextDueDate sets the "next_due_date" field.
func (_u *LearningItemUpdate) SetNextDueDate(v time.Time) *LearningItemUpdate {
	_u.mutation.SetNextDueDate(v)
	return _u
}

// SetNillableNextDueDate sets the "next_due_date" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableNextDueDate(v *time.Time) *LearningItemUpdate {
	if v != nil {
		_u.SetNextDueDate(*v)
	}
	return _u
}

// ClearNextDueDate clears the value of the "next_due_date" field.
func (_u *LearningItemUpdate) ClearNextDueDate() *LearningItemUpdate {
	_u.mutation.ClearNextDueDate()
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *LearningItemUpdate) SetCorrectCount(v int) *LearningItemUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableCorrectCount(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *LearningItemUpdate) AddCorrectCount(v int) *LearningItemUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *LearningItemUpdate) SetIncorrectCount(v int) *LearningItemUpdate {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableIncorrectCount(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *LearningItemUpdate) AddIncorrectCount(v int) *LearningItemUpdate {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *LearningItemUpdate) SetLastPracticedAt(v time.Time) *LearningItemUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableLastPracticedAt(v *time.Time) *LearningItemUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *LearningItemUpdate) ClearLastPracticedAt() *LearningItemUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetTier sets the "tier" field.
func (_u *LearningItemUpdate) SetTier(v string) *LearningItemUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillableTier(v *string) *LearningItemUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *LearningItemUpdate) SetPriorityScore(v int) *LearningItemUpdate {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *LearningItemUpdate) SetNillablePriorityScore(v *int) *LearningItemUpdate {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *LearningItemUpdate) AddPriorityScore(v int) *LearningItemUpdate {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// Mutation returns the LearningItemMutation object of the builder.
func (_u *LearningItemUpdate) Mutation() *LearningItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningItemUpdate) check() error {
	if v, ok := _u.mutation.EntryID(); ok {
		if err := learningitem.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "LearningItem.entry_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningitem.Table, learningitem.Columns, sqlgraph.NewFieldSpec(learningitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(learningitem.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(learningitem.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(learningitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(learningitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(learningitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(learningitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(learningitem.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(learningitem.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextDueDate(); ok {
		_spec.SetField(learningitem.FieldNextDueDate, field.TypeTime, value)
	}
	if _u.mutation.NextDueDateCleared() {
		_spec.ClearField(learningitem.FieldNextDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(learningitem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(learningitem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(learningitem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(learningitem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(learningitem.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(learningitem.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(learningitem.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(learningitem.FieldPriorityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(learningitem.FieldPriorityScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningItemUpdateOne is the builder for updating a single LearningItem entity.
type LearningItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningItemMutation
}

// SetEntryID sets the "entry_id" field.
func (_u *LearningItemUpdateOne) SetEntryID(v string) *LearningItemUpdateOne {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableEntryID(v *string) *LearningItemUpdateOne {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *LearningItemUpdateOne) SetStage(v string) *LearningItemUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableStage(v *string) *LearningItemUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *LearningItemUpdateOne) SetEaseFactor(v float64) *LearningItemUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableEaseFactor(v *float64) *LearningItemUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *LearningItemUpdateOne) AddEaseFactor(v float64) *LearningItemUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *LearningItemUpdateOne) SetIntervalDays(v int) *LearningItemUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableIntervalDays(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *LearningItemUpdateOne) AddIntervalDays(v int) *LearningItemUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *LearningItemUpdateOne) SetRepetitions(v int) *LearningItemUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableRepetitions(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *LearningItemUpdateOne) AddRepetitions(v int) *LearningItemUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextDueDate sets the "next_due_date" field.
func (_u *LearningItemUpdateOne) SetNextDueDate(v time.Time) *LearningItemUpdateOne {
	_u.mutation.SetNextDueDate(v)
	return _u
}

// SetNillableNextDueDate sets the "next_due_date" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableNextDueDate(v *time.Time) *LearningItemUpdateOne {
	if v != nil {
		_u.SetNextDueDate(*v)
	}
	return _u
}

// ClearNextDueDate clears the value of the "next_due_date" field.
func (_u *LearningItemUpdateOne) ClearNextDueDate() *LearningItemUpdateOne {
	_u.mutation.ClearNextDueDate()
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *LearningItemUpdateOne) SetCorrectCount(v int) *LearningItemUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableCorrectCount(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *LearningItemUpdateOne) AddCorrectCount(v int) *LearningItemUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *LearningItemUpdateOne) SetIncorrectCount(v int) *LearningItemUpdateOne {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableIncorrectCount(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *LearningItemUpdateOne) AddIncorrectCount(v int) *LearningItemUpdateOne {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *LearningItemUpdateOne) SetLastPracticedAt(v time.Time) *LearningItemUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableLastPracticedAt(v *time.Time) *LearningItemUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *LearningItemUpdateOne) ClearLastPracticedAt() *LearningItemUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetTier sets the "tier" field.
func (_u *LearningItemUpdateOne) SetTier(v string) *LearningItemUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillableTier(v *string) *LearningItemUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *LearningItemUpdateOne) SetPriorityScore(v int) *LearningItemUpdateOne {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *LearningItemUpdateOne) SetNillablePriorityScore(v *int) *LearningItemUpdateOne {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *LearningItemUpdateOne) AddPriorityScore(v int) *LearningItemUpdateOne {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// Mutation returns the LearningItemMutation object of the builder.
func (_u *LearningItemUpdateOne) Mutation() *LearningItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningItemUpdate builder.
func (_u *LearningItemUpdateOne) Where(ps ...predicate.LearningItem) *LearningItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningItemUpdateOne) Select(field string, fields ...string) *LearningItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningItem entity.
func (_u *LearningItemUpdateOne) Save(ctx context.Context) (*LearningItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningItemUpdateOne) SaveX(ctx context.Context) *LearningItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningItemUpdateOne) check() error {
	if v, ok := _u.mutation.EntryID(); ok {
		if err := learningitem.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "LearningItem.entry_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningItemUpdateOne) sqlSave(ctx context.Context) (_node *LearningItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningitem.Table, learningitem.Columns, sqlgraph.NewFieldSpec(learningitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningitem.FieldID)
		for _, f := range fields {
			if !learningitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(learningitem.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(learningitem.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(learningitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(learningitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(learningitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(learningitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(learningitem.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(learningitem.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextDueDate(); ok {
		_spec.SetField(learningitem.FieldNextDueDate, field.TypeTime, value)
	}
	if _u.mutation.NextDueDateCleared() {
		_spec.ClearField(learningitem.FieldNextDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(learningitem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(learningitem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(learningitem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(learningitem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(learningitem.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(learningitem.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(learningitem.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(learningitem.FieldPriorityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(learningitem.FieldPriorityScore, field.TypeInt, value)
	}
	_node = &LearningItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
