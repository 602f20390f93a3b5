// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexio/ent/learningitem"
)

// LearningItemCreate is the builder for creating a LearningItem entity.
type LearningItemCreate struct {
	config
	mutation *LearningItemMutation
	hooks    []Hook
}

// SetEntryID sets the "entry_id" field.
func (_c *LearningItemCreate) SetEntryID(v string) *LearningItemCreate {
	_c.mutation.SetEntryID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *LearningItemCreate) SetStage(v string) *LearningItemCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableStage(v *string) *LearningItemCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *LearningItemCreate) SetEaseFactor(v float64) *LearningItemCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableEaseFactor(v *float64) *LearningItemCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *LearningItemCreate) SetIntervalDays(v int) *LearningItemCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableIntervalDays(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *LearningItemCreate) SetRepetitions(v int) *LearningItemCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableRepetitions(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetNextDueDate sets the "next_due_date" field.
func (_c *LearningItemCreate) SetNextDueDate(v time.Time) *LearningItemCreate {
	_c.mutation.SetNextDueDate(v)
	return _c
}

// SetNillableNextDueDate sets the "next_due_date" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableNextDueDate(v *time.Time) *LearningItemCreate {
	if v != nil {
		_c.SetNextDueDate(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *LearningItemCreate) SetCorrectCount(v int) *LearningItemCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableCorrectCount(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_c *LearningItemCreate) SetIncorrectCount(v int) *LearningItemCreate {
	_c.mutation.SetIncorrectCount(v)
	return _c
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableIncorrectCount(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetIncorrectCount(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *LearningItemCreate) SetLastPracticedAt(v time.Time) *LearningItemCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableLastPracticedAt(v *time.Time) *LearningItemCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// SetAddedAt sets the "added_at" field.
func (_c *LearningItemCreate) SetAddedAt(v time.Time) *LearningItemCreate {
	_c.mutation.SetAddedAt(v)
	return _c
}

// SetNillableAddedAt sets the "added_at" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableAddedAt(v *time.Time) *LearningItemCreate {
	if v != nil {
		_c.SetAddedAt(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *LearningItemCreate) SetTier(v string) *LearningItemCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillableTier(v *string) *LearningItemCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetPriorityScore sets the "priority_score" field.
func (_c *LearningItemCreate) SetPriorityScore(v int) *LearningItemCreate {
	_c.mutation.SetPriorityScore(v)
	return _c
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_c *LearningItemCreate) SetNillablePriorityScore(v *int) *LearningItemCreate {
	if v != nil {
		_c.SetPriorityScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningItemCreate) SetID(v string) *LearningItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningItemMutation object of the builder.
func (_c *LearningItemCreate) Mutation() *LearningItemMutation {
	return _c.mutation
}

// Save creates the LearningItem in the database.
func (_c *LearningItemCreate) Save(ctx context.Context) (*LearningItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningItemCreate) SaveX(ctx context.Context) *LearningItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningItemCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := learningitem.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := learningitem.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := learningitem.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := learningitem.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := learningitem.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		v := learningitem.DefaultIncorrectCount
		_c.mutation.SetIncorrectCount(v)
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		v := learningitem.DefaultAddedAt()
		_c.mutation.SetAddedAt(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := learningitem.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		v := learningitem.DefaultPriorityScore
		_c.mutation.SetPriorityScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningItemCreate) check() error {
	if _, ok := _c.mutation.EntryID(); !ok {
		return &ValidationError{Name: "entry_id", err: errors.New(`ent: missing required field "LearningItem.entry_id"`)}
	}
	if v, ok := _c.mutation.EntryID(); ok {
		if err := learningitem.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "LearningItem.entry_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "LearningItem.stage"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "LearningItem.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "LearningItem.interval_days"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "LearningItem.repetitions"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "LearningItem.correct_count"`)}
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "LearningItem.incorrect_count"`)}
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		return &ValidationError{Name: "added_at", err: errors.New(`ent: missing required field "LearningItem.added_at"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "LearningItem.tier"`)}
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		return &ValidationError{Name: "priority_score", err: errors.New(`ent: missing required field "LearningItem.priority_score"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := learningitem.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "LearningItem.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LearningItemCreate) sqlSave(ctx context.Context) (*LearningItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LearningItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningItemCreate) createSpec() (*LearningItem, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningitem.Table, sqlgraph.NewFieldSpec(learningitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntryID(); ok {
		_spec.SetField(learningitem.FieldEntryID, field.TypeString, value)
		_node.EntryID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(learningitem.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(learningitem.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(learningitem.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(learningitem.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.NextDueDate(); ok {
		_spec.SetField(learningitem.FieldNextDueDate, field.TypeTime, value)
		_node.NextDueDate = &value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(learningitem.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.IncorrectCount(); ok {
		_spec.SetField(learningitem.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(learningitem.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	if value, ok := _c.mutation.AddedAt(); ok {
		_spec.SetField(learningitem.FieldAddedAt, field.TypeTime, value)
		_node.AddedAt = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(learningitem.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.PriorityScore(); ok {
		_spec.SetField(learningitem.FieldPriorityScore, field.TypeInt, value)
		_node.PriorityScore = value
	}
	return _node, _spec
}

// LearningItemCreateBulk is the builder for creating many LearningItem entities in bulk.
type LearningItemCreateBulk struct {
	config
	err      error
	builders []*LearningItemCreate
}

// Save creates the LearningItem entities in the database.
func (_c *LearningItemCreateBulk) Save(ctx context.Context) ([]*LearningItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearningItemCreateBulk) SaveX(ctx context.Context) []*LearningItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
