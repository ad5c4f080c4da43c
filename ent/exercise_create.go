// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subjunto/subjunto/ent/exercise"
)

// ExerciseCreate is the builder for creating a Exercise entity.
type ExerciseCreate struct {
	config
	mutation *ExerciseMutation
	hooks    []Hook
}

// SetVerb sets the "verb" field.
func (_c *ExerciseCreate) SetVerb(v string) *ExerciseCreate {
	_c.mutation.SetVerb(v)
	return _c
}

// SetTense sets the "tense" field.
func (_c *ExerciseCreate) SetTense(v string) *ExerciseCreate {
	_c.mutation.SetTense(v)
	return _c
}

// SetPerson sets the "person" field.
func (_c *ExerciseCreate) SetPerson(v string) *ExerciseCreate {
	_c.mutation.SetPerson(v)
	return _c
}

// SetTriggerPhrase sets the "trigger_phrase" field.
func (_c *ExerciseCreate) SetTriggerPhrase(v string) *ExerciseCreate {
	_c.mutation.SetTriggerPhrase(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ExerciseCreate) SetPrompt(v string) *ExerciseCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ExerciseCreate) SetAnswer(v string) *ExerciseCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetAlternates sets the "alternates" field.
func (_c *ExerciseCreate) SetAlternates(v []string) *ExerciseCreate {
	_c.mutation.SetAlternates(v)
	return _c
}

// SetRuleNote sets the "rule_note" field.
func (_c *ExerciseCreate) SetRuleNote(v string) *ExerciseCreate {
	_c.mutation.SetRuleNote(v)
	return _c
}

// SetNillableRuleNote sets the "rule_note" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableRuleNote(v *string) *ExerciseCreate {
	if v != nil {
		_c.SetRuleNote(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ExerciseCreate) SetDifficulty(v int) *ExerciseCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetHints sets the "hints" field.
func (_c *ExerciseCreate) SetHints(v []string) *ExerciseCreate {
	_c.mutation.SetHints(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExerciseCreate) SetCreatedAt(v time.Time) *ExerciseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableCreatedAt(v *time.Time) *ExerciseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExerciseCreate) SetID(v string) *ExerciseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExerciseMutation object of the builder.
func (_c *ExerciseCreate) Mutation() *ExerciseMutation {
	return _c.mutation
}

// Save creates the Exercise in the database.
func (_c *ExerciseCreate) Save(ctx context.Context) (*Exercise, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseCreate) SaveX(ctx context.Context) *Exercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseCreate) defaults() {
	if _, ok := _c.mutation.RuleNote(); !ok {
		v := exercise.DefaultRuleNote
		_c.mutation.SetRuleNote(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exercise.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseCreate) check() error {
	if _, ok := _c.mutation.Verb(); !ok {
		return &ValidationError{Name: "verb", err: errors.New(`ent: missing required field "Exercise.verb"`)}
	}
	if v, ok := _c.mutation.Verb(); ok {
		if err := exercise.VerbValidator(v); err != nil {
			return &ValidationError{Name: "verb", err: fmt.Errorf(`ent: validator failed for field "Exercise.verb": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tense(); !ok {
		return &ValidationError{Name: "tense", err: errors.New(`ent: missing required field "Exercise.tense"`)}
	}
	if _, ok := _c.mutation.Person(); !ok {
		return &ValidationError{Name: "person", err: errors.New(`ent: missing required field "Exercise.person"`)}
	}
	if _, ok := _c.mutation.TriggerPhrase(); !ok {
		return &ValidationError{Name: "trigger_phrase", err: errors.New(`ent: missing required field "Exercise.trigger_phrase"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Exercise.prompt"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Exercise.answer"`)}
	}
	if _, ok := _c.mutation.RuleNote(); !ok {
		return &ValidationError{Name: "rule_note", err: errors.New(`ent: missing required field "Exercise.rule_note"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Exercise.difficulty"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Exercise.created_at"`)}
	}
	return nil
}

func (_c *ExerciseCreate) sqlSave(ctx context.Context) (*Exercise, error) {
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
			return nil, fmt.Errorf("unexpected Exercise.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExerciseCreate) createSpec() (*Exercise, *sqlgraph.CreateSpec) {
	var (
		_node = &Exercise{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exercise.Table, sqlgraph.NewFieldSpec(exercise.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Verb(); ok {
		_spec.SetField(exercise.FieldVerb, field.TypeString, value)
		_node.Verb = value
	}
	if value, ok := _c.mutation.Tense(); ok {
		_spec.SetField(exercise.FieldTense, field.TypeString, value)
		_node.Tense = value
	}
	if value, ok := _c.mutation.Person(); ok {
		_spec.SetField(exercise.FieldPerson, field.TypeString, value)
		_node.Person = value
	}
	if value, ok := _c.mutation.TriggerPhrase(); ok {
		_spec.SetField(exercise.FieldTriggerPhrase, field.TypeString, value)
		_node.TriggerPhrase = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(exercise.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(exercise.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Alternates(); ok {
		_spec.SetField(exercise.FieldAlternates, field.TypeJSON, value)
		_node.Alternates = value
	}
	if value, ok := _c.mutation.RuleNote(); ok {
		_spec.SetField(exercise.FieldRuleNote, field.TypeString, value)
		_node.RuleNote = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(exercise.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Hints(); ok {
		_spec.SetField(exercise.FieldHints, field.TypeJSON, value)
		_node.Hints = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exercise.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExerciseCreateBulk is the builder for creating many Exercise entities in bulk.
type ExerciseCreateBulk struct {
	config
	err      error
	builders []*ExerciseCreate
}

// Save creates the Exercise entities in the database.
func (_c *ExerciseCreateBulk) Save(ctx context.Context) ([]*Exercise, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Exercise, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseMutation)
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
func (_c *ExerciseCreateBulk) SaveX(ctx context.Context) []*Exercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
