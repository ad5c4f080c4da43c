// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subjunto/subjunto/ent/predicate"
	"github.com/subjunto/subjunto/ent/verb"
)

// VerbUpdate is the builder for updating Verb entities.
type VerbUpdate struct {
	config
	hooks    []Hook
	mutation *VerbMutation
}

// Where appends a list predicates to the VerbUpdate builder.
func (_u *VerbUpdate) Where(ps ...predicate.Verb) *VerbUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnglish sets the "english" field.
func (_u *VerbUpdate) SetEnglish(v string) *VerbUpdate {
	_u.mutation.SetEnglish(v)
	return _u
}

// SetNillableEnglish sets the "english" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableEnglish(v *string) *VerbUpdate {
	if v != nil {
		_u.SetEnglish(*v)
	}
	return _u
}

// SetClass sets the "class" field.
func (_u *VerbUpdate) SetClass(v string) *VerbUpdate {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableClass(v *string) *VerbUpdate {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetStemChange sets the "stem_change" field.
func (_u *VerbUpdate) SetStemChange(v string) *VerbUpdate {
	_u.mutation.SetStemChange(v)
	return _u
}

// SetNillableStemChange sets the "stem_change" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableStemChange(v *string) *VerbUpdate {
	if v != nil {
		_u.SetStemChange(*v)
	}
	return _u
}

// Mutation returns the VerbMutation object of the builder.
func (_u *VerbUpdate) Mutation() *VerbMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerbUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerbUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerbUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerbUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VerbUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(verb.Table, verb.Columns, sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.English(); ok {
		_spec.SetField(verb.FieldEnglish, field.TypeString, value)
	}
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(verb.FieldClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.StemChange(); ok {
		_spec.SetField(verb.FieldStemChange, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerbUpdateOne is the builder for updating a single Verb entity.
type VerbUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerbMutation
}

// SetEnglish sets the "english" field.
func (_u *VerbUpdateOne) SetEnglish(v string) *VerbUpdateOne {
	_u.mutation.SetEnglish(v)
	return _u
}

// SetNillableEnglish sets the "english" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableEnglish(v *string) *VerbUpdateOne {
	if v != nil {
		_u.SetEnglish(*v)
	}
	return _u
}

// SetClass sets the "class" field.
func (_u *VerbUpdateOne) SetClass(v string) *VerbUpdateOne {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableClass(v *string) *VerbUpdateOne {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetStemChange sets the "stem_change" field.
func (_u *VerbUpdateOne) SetStemChange(v string) *VerbUpdateOne {
	_u.mutation.SetStemChange(v)
	return _u
}

// SetNillableStemChange sets the "stem_change" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableStemChange(v *string) *VerbUpdateOne {
	if v != nil {
		_u.SetStemChange(*v)
	}
	return _u
}

// Mutation returns the VerbMutation object of the builder.
func (_u *VerbUpdateOne) Mutation() *VerbMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerbUpdate builder.
func (_u *VerbUpdateOne) Where(ps ...predicate.Verb) *VerbUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerbUpdateOne) Select(field string, fields ...string) *VerbUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Verb entity.
func (_u *VerbUpdateOne) Save(ctx context.Context) (*Verb, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerbUpdateOne) SaveX(ctx context.Context) *Verb {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerbUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerbUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VerbUpdateOne) sqlSave(ctx context.Context) (_node *Verb, err error) {
	_spec := sqlgraph.NewUpdateSpec(verb.Table, verb.Columns, sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Verb.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verb.FieldID)
		for _, f := range fields {
			if !verb.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verb.FieldID {
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
	if value, ok := _u.mutation.English(); ok {
		_spec.SetField(verb.FieldEnglish, field.TypeString, value)
	}
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(verb.FieldClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.StemChange(); ok {
		_spec.SetField(verb.FieldStemChange, field.TypeString, value)
	}
	_node = &Verb{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
