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
	"github.com/subjunto/subjunto/ent/masteryrecord"
	"github.com/subjunto/subjunto/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *MasteryRecordUpdate) SetConsecutiveCorrect(v int) *MasteryRecordUpdate {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableConsecutiveCorrect(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *MasteryRecordUpdate) AddConsecutiveCorrect(v int) *MasteryRecordUpdate {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *MasteryRecordUpdate) SetTotalAttempts(v int) *MasteryRecordUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableTotalAttempts(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *MasteryRecordUpdate) AddTotalAttempts(v int) *MasteryRecordUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *MasteryRecordUpdate) SetCorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableCorrectCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *MasteryRecordUpdate) AddCorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIntervalNs sets the "interval_ns" field.
func (_u *MasteryRecordUpdate) SetIntervalNs(v int64) *MasteryRecordUpdate {
	_u.mutation.ResetIntervalNs()
	_u.mutation.SetIntervalNs(v)
	return _u
}

// SetNillableIntervalNs sets the "interval_ns" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableIntervalNs(v *int64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetIntervalNs(*v)
	}
	return _u
}

// AddIntervalNs adds value to the "interval_ns" field.
func (_u *MasteryRecordUpdate) AddIntervalNs(v int64) *MasteryRecordUpdate {
	_u.mutation.AddIntervalNs(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *MasteryRecordUpdate) SetNextReview(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableNextReview(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetLastOutcome sets the "last_outcome" field.
func (_u *MasteryRecordUpdate) SetLastOutcome(v string) *MasteryRecordUpdate {
	_u.mutation.SetLastOutcome(v)
	return _u
}

// SetNillableLastOutcome sets the "last_outcome" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastOutcome(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastOutcome(*v)
	}
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *MasteryRecordUpdate) SetLastPracticed(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastPracticed(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalNs(); ok {
		_spec.SetField(masteryrecord.FieldIntervalNs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIntervalNs(); ok {
		_spec.AddField(masteryrecord.FieldIntervalNs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(masteryrecord.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastOutcome(); ok {
		_spec.SetField(masteryrecord.FieldLastOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticed, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *MasteryRecordUpdateOne) SetConsecutiveCorrect(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableConsecutiveCorrect(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *MasteryRecordUpdateOne) AddConsecutiveCorrect(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *MasteryRecordUpdateOne) SetTotalAttempts(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableTotalAttempts(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *MasteryRecordUpdateOne) AddTotalAttempts(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *MasteryRecordUpdateOne) SetCorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableCorrectCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *MasteryRecordUpdateOne) AddCorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIntervalNs sets the "interval_ns" field.
func (_u *MasteryRecordUpdateOne) SetIntervalNs(v int64) *MasteryRecordUpdateOne {
	_u.mutation.ResetIntervalNs()
	_u.mutation.SetIntervalNs(v)
	return _u
}

// SetNillableIntervalNs sets the "interval_ns" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableIntervalNs(v *int64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetIntervalNs(*v)
	}
	return _u
}

// AddIntervalNs adds value to the "interval_ns" field.
func (_u *MasteryRecordUpdateOne) AddIntervalNs(v int64) *MasteryRecordUpdateOne {
	_u.mutation.AddIntervalNs(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *MasteryRecordUpdateOne) SetNextReview(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableNextReview(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetLastOutcome sets the "last_outcome" field.
func (_u *MasteryRecordUpdateOne) SetLastOutcome(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLastOutcome(v)
	return _u
}

// SetNillableLastOutcome sets the "last_outcome" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastOutcome(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastOutcome(*v)
	}
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *MasteryRecordUpdateOne) SetLastPracticed(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastPracticed(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(masteryrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalNs(); ok {
		_spec.SetField(masteryrecord.FieldIntervalNs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIntervalNs(); ok {
		_spec.AddField(masteryrecord.FieldIntervalNs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(masteryrecord.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastOutcome(); ok {
		_spec.SetField(masteryrecord.FieldLastOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticed, field.TypeTime, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
