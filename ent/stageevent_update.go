// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexio/ent/predicate"
	"github.com/abhisek/lexio/ent/stageevent"
)

// StageEventUpdate is the builder for updating StageEvent entities.
type StageEventUpdate struct {
	config
	hooks    []Hook
	mutation *StageEventMutation
}

// Where appends a list predicates to the StageEventUpdate builder.
func (_u *StageEventUpdate) Where(ps ...predicate.StageEvent) *StageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *StageEventUpdate) SetItemID(v string) *StageEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableItemID(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetFromStage sets the "from_stage" field.
func (_u *StageEventUpdate) SetFromStage(v string) *StageEventUpdate {
	_u.mutation.SetFromStage(v)
	return _u
}

// SetNillableFromStage sets the "from_stage" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableFromStage(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetFromStage(*v)
	}
	return _u
}

// SetToStage sets the "to_stage" field.
func (_u *StageEventUpdate) SetToStage(v string) *StageEventUpdate {
	_u.mutation.SetToStage(v)
	return _u
}

// SetNillableToStage sets the "to_stage" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableToStage(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetToStage(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *StageEventUpdate) SetTrigger(v string) *StageEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableTrigger(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StageEventUpdate) SetSessionID(v string) *StageEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableSessionID(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the StageEventMutation object of the builder.
func (_u *StageEventUpdate) Mutation() *StageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageEventUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := stageevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromStage(); ok {
		if err := stageevent.FromStageValidator(v); err != nil {
			return &ValidationError{Name: "from_stage", err: fmt.Errorf(`ent: validator failed for field "StageEvent.from_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToStage(); ok {
		if err := stageevent.ToStageValidator(v); err != nil {
			return &ValidationError{Name: "to_stage", err: fmt.Errorf(`ent: validator failed for field "StageEvent.to_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := stageevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "StageEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *StageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageevent.Table, stageevent.Columns, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(stageevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromStage(); ok {
		_spec.SetField(stageevent.FieldFromStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStage(); ok {
		_spec.SetField(stageevent.FieldToStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(stageevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(stageevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageEventUpdateOne is the builder for updating a single StageEvent entity.
type StageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageEventMutation
}

// SetItemID sets the "item_id" field.
func (_u *StageEventUpdateOne) SetItemID(v string) *StageEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableItemID(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetFromStage sets the "from_stage" field.
func (_u *StageEventUpdateOne) SetFromStage(v string) *StageEventUpdateOne {
	_u.mutation.SetFromStage(v)
	return _u
}

// SetNillableFromStage sets the "from_stage" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableFromStage(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetFromStage(*v)
	}
	return _u
}

// SetToStage sets the "to_stage" field.
func (_u *StageEventUpdateOne) SetToStage(v string) *StageEventUpdateOne {
	_u.mutation.SetToStage(v)
	return _u
}

// SetNillableToStage sets the "to_stage" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableToStage(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetToStage(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *StageEventUpdateOne) SetTrigger(v string) *StageEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableTrigger(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StageEventUpdateOne) SetSessionID(v string) *StageEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableSessionID(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the StageEventMutation object of the builder.
func (_u *StageEventUpdateOne) Mutation() *StageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageEventUpdate builder.
func (_u *StageEventUpdateOne) Where(ps ...predicate.StageEvent) *StageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageEventUpdateOne) Select(field string, fields ...string) *StageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageEvent entity.
func (_u *StageEventUpdateOne) Save(ctx context.Context) (*StageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEventUpdateOne) SaveX(ctx context.Context) *StageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageEventUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := stageevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromStage(); ok {
		if err := stageevent.FromStageValidator(v); err != nil {
			return &ValidationError{Name: "from_stage", err: fmt.Errorf(`ent: validator failed for field "StageEvent.from_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToStage(); ok {
		if err := stageevent.ToStageValidator(v); err != nil {
			return &ValidationError{Name: "to_stage", err: fmt.Errorf(`ent: validator failed for field "StageEvent.to_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := stageevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "StageEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *StageEventUpdateOne) sqlSave(ctx context.Context) (_node *StageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageevent.Table, stageevent.Columns, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageevent.FieldID)
		for _, f := range fields {
			if !stageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageevent.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(stageevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromStage(); ok {
		_spec.SetField(stageevent.FieldFromStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStage(); ok {
		_spec.SetField(stageevent.FieldToStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(stageevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(stageevent.FieldSessionID, field.TypeString, value)
	}
	_node = &StageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
