// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexio/ent/attemptevent"
	"github.com/abhisek/lexio/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdate) SetItemID(v string) *AttemptEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableItemID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *AttemptEventUpdate) SetEntryID(v string) *AttemptEventUpdate {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableEntryID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AttemptEventUpdate) SetMode(v string) *AttemptEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMode(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAttemptsTaken sets the "attempts_taken" field.
func (_u *AttemptEventUpdate) SetAttemptsTaken(v int) *AttemptEventUpdate {
	_u.mutation.ResetAttemptsTaken()
	_u.mutation.SetAttemptsTaken(v)
	return _u
}

// SetNillableAttemptsTaken sets the "attempts_taken" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptsTaken(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptsTaken(*v)
	}
	return _u
}

// AddAttemptsTaken adds value to the "attempts_taken" field.
func (_u *AttemptEventUpdate) AddAttemptsTaken(v int) *AttemptEventUpdate {
	_u.mutation.AddAttemptsTaken(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *AttemptEventUpdate) SetStage(v string) *AttemptEventUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStage(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *AttemptEventUpdate) SetPriorityScore(v int) *AttemptEventUpdate {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePriorityScore(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *AttemptEventUpdate) AddPriorityScore(v int) *AttemptEventUpdate {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntryID(); ok {
		if err := attemptevent.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := attemptevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := attemptevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(attemptevent.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attemptevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptsTaken(); ok {
		_spec.SetField(attemptevent.FieldAttemptsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsTaken(); ok {
		_spec.AddField(attemptevent.FieldAttemptsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(attemptevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(attemptevent.FieldPriorityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(attemptevent.FieldPriorityScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdateOne) SetItemID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableItemID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *AttemptEventUpdateOne) SetEntryID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableEntryID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AttemptEventUpdateOne) SetMode(v string) *AttemptEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMode(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAttemptsTaken sets the "attempts_taken" field.
func (_u *AttemptEventUpdateOne) SetAttemptsTaken(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAttemptsTaken()
	_u.mutation.SetAttemptsTaken(v)
	return _u
}

// SetNillableAttemptsTaken sets the "attempts_taken" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptsTaken(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptsTaken(*v)
	}
	return _u
}

// AddAttemptsTaken adds value to the "attempts_taken" field.
func (_u *AttemptEventUpdateOne) AddAttemptsTaken(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAttemptsTaken(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *AttemptEventUpdateOne) SetStage(v string) *AttemptEventUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStage(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *AttemptEventUpdateOne) SetPriorityScore(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePriorityScore(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *AttemptEventUpdateOne) AddPriorityScore(v int) *AttemptEventUpdateOne {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntryID(); ok {
		if err := attemptevent.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := attemptevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := attemptevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(attemptevent.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attemptevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptsTaken(); ok {
		_spec.SetField(attemptevent.FieldAttemptsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsTaken(); ok {
		_spec.AddField(attemptevent.FieldAttemptsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(attemptevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(attemptevent.FieldPriorityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(attemptevent.FieldPriorityScore, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
