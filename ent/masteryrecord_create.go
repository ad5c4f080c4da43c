// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subjunto/subjunto/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MasteryRecordCreate) SetUserID(v string) *MasteryRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetVerb sets the "verb" field.
func (_c *MasteryRecordCreate) SetVerb(v string) *MasteryRecordCreate {
	_c.mutation.SetVerb(v)
	return _c
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_c *MasteryRecordCreate) SetConsecutiveCorrect(v int) *MasteryRecordCreate {
	_c.mutation.SetConsecutiveCorrect(v)
	return _c
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableConsecutiveCorrect(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetConsecutiveCorrect(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *MasteryRecordCreate) SetTotalAttempts(v int) *MasteryRecordCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableTotalAttempts(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *MasteryRecordCreate) SetCorrectCount(v int) *MasteryRecordCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableCorrectCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetIntervalNs sets the "interval_ns" field.
func (_c *MasteryRecordCreate) SetIntervalNs(v int64) *MasteryRecordCreate {
	_c.mutation.SetIntervalNs(v)
	return _c
}

// SetNillableIntervalNs sets the "interval_ns" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableIntervalNs(v *int64) *MasteryRecordCreate {
	if v != nil {
		_c.SetIntervalNs(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *MasteryRecordCreate) SetNextReview(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetLastOutcome sets the "last_outcome" field.
func (_c *MasteryRecordCreate) SetLastOutcome(v string) *MasteryRecordCreate {
	_c.mutation.SetLastOutcome(v)
	return _c
}

// SetNillableLastOutcome sets the "last_outcome" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastOutcome(v *string) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastOutcome(*v)
	}
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *MasteryRecordCreate) SetLastPracticed(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		v := masteryrecord.DefaultConsecutiveCorrect
		_c.mutation.SetConsecutiveCorrect(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := masteryrecord.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := masteryrecord.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.IntervalNs(); !ok {
		v := masteryrecord.DefaultIntervalNs
		_c.mutation.SetIntervalNs(v)
	}
	if _, ok := _c.mutation.LastOutcome(); !ok {
		v := masteryrecord.DefaultLastOutcome
		_c.mutation.SetLastOutcome(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MasteryRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := masteryrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verb(); !ok {
		return &ValidationError{Name: "verb", err: errors.New(`ent: missing required field "MasteryRecord.verb"`)}
	}
	if v, ok := _c.mutation.Verb(); ok {
		if err := masteryrecord.VerbValidator(v); err != nil {
			return &ValidationError{Name: "verb", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.verb": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		return &ValidationError{Name: "consecutive_correct", err: errors.New(`ent: missing required field "MasteryRecord.consecutive_correct"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "MasteryRecord.total_attempts"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "MasteryRecord.correct_count"`)}
	}
	if _, ok := _c.mutation.IntervalNs(); !ok {
		return &ValidationError{Name: "interval_ns", err: errors.New(`ent: missing required field "MasteryRecord.interval_ns"`)}
	}
	if _, ok := _c.mutation.NextReview(); !ok {
		return &ValidationError{Name: "next_review", err: errors.New(`ent: missing required field "MasteryRecord.next_review"`)}
	}
	if _, ok := _c.mutation.LastOutcome(); !ok {
		return &ValidationError{Name: "last_outcome", err: errors.New(`ent: missing required field "MasteryRecord.last_outcome"`)}
	}
	if _, ok := _c.mutation.LastPracticed(); !ok {
		return &ValidationError{Name: "last_practiced", err: errors.New(`ent: missing required field "MasteryRecord.last_practiced"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(masteryrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Verb(); ok {
		_spec.SetField(masteryrecord.FieldVerb, field.TypeString, value)
		_node.Verb = value
	}
	if value, ok := _c.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
		_node.ConsecutiveCorrect = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.IntervalNs(); ok {
		_spec.SetField(masteryrecord.FieldIntervalNs, field.TypeInt64, value)
		_node.IntervalNs = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(masteryrecord.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	if value, ok := _c.mutation.LastOutcome(); ok {
		_spec.SetField(masteryrecord.FieldLastOutcome, field.TypeString, value)
		_node.LastOutcome = value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
