// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexio/ent/vocabentry"
)

// VocabEntryCreate is the builder for creating a VocabEntry entity.
type VocabEntryCreate struct {
	config
	mutation *VocabEntryMutation
	hooks    []Hook
}

// SetTerm sets the "term" field.
func (_c *VocabEntryCreate) SetTerm(v string) *VocabEntryCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetTranslation sets the "translation" field.
func (_c *VocabEntryCreate) SetTranslation(v string) *VocabEntryCreate {
	_c.mutation.SetTranslation(v)
	return _c
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_c *VocabEntryCreate) SetPartOfSpeech(v string) *VocabEntryCreate {
	_c.mutation.SetPartOfSpeech(v)
	return _c
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillablePartOfSpeech(v *string) *VocabEntryCreate {
	if v != nil {
		_c.SetPartOfSpeech(*v)
	}
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *VocabEntryCreate) SetDefinition(v string) *VocabEntryCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableDefinition(v *string) *VocabEntryCreate {
	if v != nil {
		_c.SetDefinition(*v)
	}
	return _c
}

// SetExamples sets the "examples" field.
func (_c *VocabEntryCreate) SetExamples(v []string) *VocabEntryCreate {
	_c.mutation.SetExamples(v)
	return _c
}

// SetMnemonic sets the "mnemonic" field.
func (_c *VocabEntryCreate) SetMnemonic(v string) *VocabEntryCreate {
	_c.mutation.SetMnemonic(v)
	return _c
}

// SetNillableMnemonic sets the "mnemonic" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableMnemonic(v *string) *VocabEntryCreate {
	if v != nil {
		_c.SetMnemonic(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *VocabEntryCreate) SetTier(v string) *VocabEntryCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableTier(v *string) *VocabEntryCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *VocabEntryCreate) SetTopic(v string) *VocabEntryCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableTopic(v *string) *VocabEntryCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VocabEntryCreate) SetCreatedAt(v time.Time) *VocabEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableCreatedAt(v *time.Time) *VocabEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VocabEntryCreate) SetID(v string) *VocabEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VocabEntryMutation object of the builder.
func (_c *VocabEntryCreate) Mutation() *VocabEntryMutation {
	return _c.mutation
}

// Save creates the VocabEntry in the database.
func (_c *VocabEntryCreate) Save(ctx context.Context) (*VocabEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VocabEntryCreate) SaveX(ctx context.Context) *VocabEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VocabEntryCreate) defaults() {
	if _, ok := _c.mutation.PartOfSpeech(); !ok {
		v := vocabentry.DefaultPartOfSpeech
		_c.mutation.SetPartOfSpeech(v)
	}
	if _, ok := _c.mutation.Definition(); !ok {
		v := vocabentry.DefaultDefinition
		_c.mutation.SetDefinition(v)
	}
	if _, ok := _c.mutation.Mnemonic(); !ok {
		v := vocabentry.DefaultMnemonic
		_c.mutation.SetMnemonic(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := vocabentry.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := vocabentry.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vocabentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VocabEntryCreate) check() error {
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "VocabEntry.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := vocabentry.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Translation(); !ok {
		return &ValidationError{Name: "translation", err: errors.New(`ent: missing required field "VocabEntry.translation"`)}
	}
	if v, ok := _c.mutation.Translation(); ok {
		if err := vocabentry.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.translation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PartOfSpeech(); !ok {
		return &ValidationError{Name: "part_of_speech", err: errors.New(`ent: missing required field "VocabEntry.part_of_speech"`)}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "VocabEntry.definition"`)}
	}
	if _, ok := _c.mutation.Mnemonic(); !ok {
		return &ValidationError{Name: "mnemonic", err: errors.New(`ent: missing required field "VocabEntry.mnemonic"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "VocabEntry.tier"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "VocabEntry.topic"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VocabEntry.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := vocabentry.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.id": %w`, err)}
		}
	}
	return nil
}

func (_c *VocabEntryCreate) sqlSave(ctx context.Context) (*VocabEntry, error) {
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
			return nil, fmt.Errorf("unexpected VocabEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VocabEntryCreate) createSpec() (*VocabEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &VocabEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vocabentry.Table, sqlgraph.NewFieldSpec(vocabentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(vocabentry.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Translation(); ok {
		_spec.SetField(vocabentry.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	if value, ok := _c.mutation.PartOfSpeech(); ok {
		_spec.SetField(vocabentry.FieldPartOfSpeech, field.TypeString, value)
		_node.PartOfSpeech = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(vocabentry.FieldDefinition, field.TypeString, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.Examples(); ok {
		_spec.SetField(vocabentry.FieldExamples, field.TypeJSON, value)
		_node.Examples = value
	}
	if value, ok := _c.mutation.Mnemonic(); ok {
		_spec.SetField(vocabentry.FieldMnemonic, field.TypeString, value)
		_node.Mnemonic = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(vocabentry.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(vocabentry.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vocabentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VocabEntryCreateBulk is the builder for creating many VocabEntry entities in bulk.
type VocabEntryCreateBulk struct {
	config
	err      error
	builders []*VocabEntryCreate
}

// Save creates the VocabEntry entities in the database.
func (_c *VocabEntryCreateBulk) Save(ctx context.Context) ([]*VocabEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VocabEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabEntryMutation)
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
func (_c *VocabEntryCreateBulk) SaveX(ctx context.Context) []*VocabEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
