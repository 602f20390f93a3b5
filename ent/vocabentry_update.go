// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexio/ent/predicate"
	"github.com/abhisek/lexio/ent/vocabentry"
)

// VocabEntryUpdate is the builder for updating VocabEntry entities.
type VocabEntryUpdate struct {
	config
	hooks    []Hook
	mutation *VocabEntryMutation
}

// Where appends a list predicates to the VocabEntryUpdate builder.
func (_u *VocabEntryUpdate) Where(ps ...predicate.VocabEntry) *VocabEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTerm sets the "term" field.
func (_u *VocabEntryUpdate) SetTerm(v string) *VocabEntryUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableTerm(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *VocabEntryUpdate) SetTranslation(v string) *VocabEntryUpdate {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableTranslation(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_u *VocabEntryUpdate) SetPartOfSpeech(v string) *VocabEntryUpdate {
	_u.mutation.SetPartOfSpeech(v)
	return _u
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillablePartOfSpeech(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetPartOfSpeech(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *VocabEntryUpdate) SetDefinition(v string) *VocabEntryUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableDefinition(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetExamples sets the "examples" field.
func (_u *VocabEntryUpdate) SetExamples(v []string) *VocabEntryUpdate {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *VocabEntryUpdate) AppendExamples(v []string) *VocabEntryUpdate {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *VocabEntryUpdate) ClearExamples() *VocabEntryUpdate {
	_u.mutation.ClearExamples()
	return _u
}

// SetMnemonic sets the "mnemonic" field.
func (_u *VocabEntryUpdate) SetMnemonic(v string) *VocabEntryUpdate {
	_u.mutation.SetMnemonic(v)
	return _u
}

// SetNillableMnemonic sets the "mnemonic" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableMnemonic(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetMnemonic(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *VocabEntryUpdate) SetTier(v string) *VocabEntryUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableTier(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *VocabEntryUpdate) SetTopic(v string) *VocabEntryUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableTopic(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// Mutation returns the VocabEntryMutation object of the builder.
func (_u *VocabEntryUpdate) Mutation() *VocabEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VocabEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VocabEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabEntryUpdate) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := vocabentry.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Translation(); ok {
		if err := vocabentry.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.translation": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabentry.Table, vocabentry.Columns, sqlgraph.NewFieldSpec(vocabentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(vocabentry.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(vocabentry.FieldTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartOfSpeech(); ok {
		_spec.SetField(vocabentry.FieldPartOfSpeech, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(vocabentry.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(vocabentry.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocabentry.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(vocabentry.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Mnemonic(); ok {
		_spec.SetField(vocabentry.FieldMnemonic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(vocabentry.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(vocabentry.FieldTopic, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VocabEntryUpdateOne is the builder for updating a single VocabEntry entity.
type VocabEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabEntryMutation
}

// SetTerm sets the "term" field.
func (_u *VocabEntryUpdateOne) SetTerm(v string) *VocabEntryUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableTerm(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *VocabEntryUpdateOne) SetTranslation(v string) *VocabEntryUpdateOne {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableTranslation(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_u *VocabEntryUpdateOne) SetPartOfSpeech(v string) *VocabEntryUpdateOne {
	_u.mutation.SetPartOfSpeech(v)
	return _u
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillablePartOfSpeech(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetPartOfSpeech(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *VocabEntryUpdateOne) SetDefinition(v string) *VocabEntryUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableDefinition(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetExamples sets the "examples" field.
func (_u *VocabEntryUpdateOne) SetExamples(v []string) *VocabEntryUpdateOne {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *VocabEntryUpdateOne) AppendExamples(v []string) *VocabEntryUpdateOne {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *VocabEntryUpdateOne) ClearExamples() *VocabEntryUpdateOne {
	_u.mutation.ClearExamples()
	return _u
}

// SetMnemonic sets the "mnemonic" field.
func (_u *VocabEntryUpdateOne) SetMnemonic(v string) *VocabEntryUpdateOne {
	_u.mutation.SetMnemonic(v)
	return _u
}

// SetNillableMnemonic sets the "mnemonic" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableMnemonic(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetMnemonic(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *VocabEntryUpdateOne) SetTier(v string) *VocabEntryUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableTier(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *VocabEntryUpdateOne) SetTopic(v string) *VocabEntryUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableTopic(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// Mutation returns the VocabEntryMutation object of the builder.
func (_u *VocabEntryUpdateOne) Mutation() *VocabEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the VocabEntryUpdate builder.
func (_u *VocabEntryUpdateOne) Where(ps ...predicate.VocabEntry) *VocabEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VocabEntryUpdateOne) Select(field string, fields ...string) *VocabEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VocabEntry entity.
func (_u *VocabEntryUpdateOne) Save(ctx context.Context) (*VocabEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabEntryUpdateOne) SaveX(ctx context.Context) *VocabEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VocabEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := vocabentry.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Translation(); ok {
		if err := vocabentry.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.translation": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabEntryUpdateOne) sqlSave(ctx context.Context) (_node *VocabEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabentry.Table, vocabentry.Columns, sqlgraph.NewFieldSpec(vocabentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VocabEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabentry.FieldID)
		for _, f := range fields {
			if !vocabentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocabentry.FieldID {
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
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(vocabentry.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(vocabentry.FieldTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartOfSpeech(); ok {
		_spec.SetField(vocabentry.FieldPartOfSpeech, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(vocabentry.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(vocabentry.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocabentry.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(vocabentry.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Mnemonic(); ok {
		_spec.SetField(vocabentry.FieldMnemonic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(vocabentry.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(vocabentry.FieldTopic, field.TypeString, value)
	}
	_node = &VocabEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
