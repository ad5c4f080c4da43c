// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/subjunto/subjunto/ent/verb"
)

// Verb is the model entity for the Verb schema.
type Verb struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Infinitive holds the value of the "infinitive" field.
	Infinitive string `json:"infinitive,omitempty"`
	// English gloss
	English string `json:"english,omitempty"`
	// Regularity class: regular-ar, regular-er, regular-ir, irregular
	Class string `json:"class,omitempty"`
	// Vowel alternation pattern, e.g. e→ie
	StemChange   string `json:"stem_change,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Verb) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verb.FieldID:
			values[i] = new(sql.NullInt64)
		case verb.FieldInfinitive, verb.FieldEnglish, verb.FieldClass, verb.FieldStemChange:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Verb fields.
func (_m *Verb) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verb.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case verb.FieldInfinitive:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field infinitive", values[i])
			} else if value.Valid {
				_m.Infinitive = value.String
			}
		case verb.FieldEnglish:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field english", values[i])
			} else if value.Valid {
				_m.English = value.String
			}
		case verb.FieldClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class", values[i])
			} else if value.Valid {
				_m.Class = value.String
			}
		case verb.FieldStemChange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem_change", values[i])
			} else if value.Valid {
				_m.StemChange = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Verb.
// This includes values selected through modifiers, order, etc.
func (_m *Verb) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Verb.
// Note that you need to call Verb.Unwrap() before calling this method if this Verb
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Verb) Update() *VerbUpdateOne {
	return NewVerbClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Verb entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Verb) Unwrap() *Verb {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Verb is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Verb) String() string {
	var builder strings.Builder
	builder.WriteString("Verb(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("infinitive=")
	builder.WriteString(_m.Infinitive)
	builder.WriteString(", ")
	builder.WriteString("english=")
	builder.WriteString(_m.English)
	builder.WriteString(", ")
	builder.WriteString("class=")
	builder.WriteString(_m.Class)
	builder.WriteString(", ")
	builder.WriteString("stem_change=")
	builder.WriteString(_m.StemChange)
	builder.WriteByte(')')
	return builder.String()
}

// Verbs is a parsable slice of Verb.
type Verbs []*Verb
