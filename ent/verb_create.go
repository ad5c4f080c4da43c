// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subjunto/subjunto/ent/verb"
)

// VerbCreate is the builder for creating a Verb entity.
type VerbCreate struct {
	config
	mutation *VerbMutation
	hooks    []Hook
}

// SetInfinitive sets the "infinitive" field.
func (_c *VerbCreate) SetInfinitive(v string) *VerbCreate {
	_c.mutation.SetInfinitive(v)
	return _c
}

// SetEnglish sets the "english" field.
func (_c *VerbCreate) SetEnglish(v string) *VerbCreate {
	_c.mutation.SetEnglish(v)
	return _c
}

// SetNillableEnglish sets the "english" field if the given value is not nil.
func (_c *VerbCreate) SetNillableEnglish(v *string) *VerbCreate {
	if v != nil {
		_c.SetEnglish(*v)
	}
	return _c
}

// SetClass sets the "class" field.
func (_c *VerbCreate) SetClass(v string) *VerbCreate {
	_c.mutation.SetClass(v)
	return _c
}

// SetStemChange sets the "stem_change" field.
func (_c *VerbCreate) SetStemChange(v string) *VerbCreate {
	_c.mutation.SetStemChange(v)
	return _c
}

// SetNillableStemChange sets the "stem_change" field if the given value is not nil.
func (_c *VerbCreate) SetNillableStemChange(v *string) *VerbCreate {
	if v != nil {
		_c.SetStemChange(*v)
	}
	return _c
}

// Mutation returns the VerbMutation object of the builder.
func (_c *VerbCreate) Mutation() *VerbMutation {
	return _c.mutation
}

// Save creates the Verb in the database.
func (_c *VerbCreate) Save(ctx context.Context) (*Verb, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerbCreate) SaveX(ctx context.Context) *Verb {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerbCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerbCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerbCreate) defaults() {
	if _, ok := _c.mutation.English(); !ok {
		v := verb.DefaultEnglish
		_c.mutation.SetEnglish(v)
	}
	if _, ok := _c.mutation.StemChange(); !ok {
		v := verb.DefaultStemChange
		_c.mutation.SetStemChange(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerbCreate) check() error {
	if _, ok := _c.mutation.Infinitive(); !ok {
		return &ValidationError{Name: "infinitive", err: errors.New(`ent: missing required field "Verb.infinitive"`)}
	}
	if v, ok := _c.mutation.Infinitive(); ok {
		if err := verb.InfinitiveValidator(v); err != nil {
			return &ValidationError{Name: "infinitive", err: fmt.Errorf(`ent: validator failed for field "Verb.infinitive": %w`, err)}
		}
	}
	if _, ok := _c.mutation.English(); !ok {
		return &ValidationError{Name: "english", err: errors.New(`ent: missing required field "Verb.english"`)}
	}
	if _, ok := _c.mutation.Class(); !ok {
		return &ValidationError{Name: "class", err: errors.New(`ent: missing required field "Verb.class"`)}
	}
	if _, ok := _c.mutation.StemChange(); !ok {
		return &ValidationError{Name: "stem_change", err: errors.New(`ent: missing required field "Verb.stem_change"`)}
	}
	return nil
}

func (_c *VerbCreate) sqlSave(ctx context.Context) (*Verb, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerbCreate) createSpec() (*Verb, *sqlgraph.CreateSpec) {
	var (
		_node = &Verb{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verb.Table, sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Infinitive(); ok {
		_spec.SetField(verb.FieldInfinitive, field.TypeString, value)
		_node.Infinitive = value
	}
	if value, ok := _c.mutation.English(); ok {
		_spec.SetField(verb.FieldEnglish, field.TypeString, value)
		_node.English = value
	}
	if value, ok := _c.mutation.Class(); ok {
		_spec.SetField(verb.FieldClass, field.TypeString, value)
		_node.Class = value
	}
	if value, ok := _c.mutation.StemChange(); ok {
		_spec.SetField(verb.FieldStemChange, field.TypeString, value)
		_node.StemChange = value
	}
	return _node, _spec
}

// VerbCreateBulk is the builder for creating many Verb entities in bulk.
type VerbCreateBulk struct {
	config
	err      error
	builders []*VerbCreate
}

// Save creates the Verb entities in the database.
func (_c *VerbCreateBulk) Save(ctx context.Context) ([]*Verb, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Verb, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerbMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *VerbCreateBulk) SaveX(ctx context.Context) []*Verb {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerbCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerbCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
