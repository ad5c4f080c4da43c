// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/subjunto/subjunto/ent/exercise"
)

// Exercise is the model entity for the Exercise schema.
type Exercise struct {
	config `json:"-"`
	// ID of the ent.
	// Generator-assigned UUID
	ID string `json:"id,omitempty"`
	// Infinitive, references the verb table
	Verb string `json:"verb,omitempty"`
	// Tense holds the value of the "tense" field.
	Tense string `json:"tense,omitempty"`
	// Person holds the value of the "person" field.
	Person string `json:"person,omitempty"`
	// TriggerPhrase holds the value of the "trigger_phrase" field.
	TriggerPhrase string `json:"trigger_phrase,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Canonical form from the conjugation engine
	Answer string `json:"answer,omitempty"`
	// Alternates holds the value of the "alternates" field.
	Alternates []string `json:"alternates,omitempty"`
	// RuleNote holds the value of the "rule_note" field.
	RuleNote string `json:"rule_note,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty int `json:"difficulty,omitempty"`
	// Hints holds the value of the "hints" field.
	Hints []string `json:"hints,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Exercise) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exercise.FieldAlternates, exercise.FieldHints:
			values[i] = new([]byte)
		case exercise.FieldDifficulty:
			values[i] = new(sql.NullInt64)
		case exercise.FieldID, exercise.FieldVerb, exercise.FieldTense, exercise.FieldPerson, exercise.FieldTriggerPhrase, exercise.FieldPrompt, exercise.FieldAnswer, exercise.FieldRuleNote:
			values[i] = new(sql.NullString)
		case exercise.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Exercise fields.
func (_m *Exercise) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exercise.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case exercise.FieldVerb:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verb", values[i])
			} else if value.Valid {
				_m.Verb = value.String
			}
		case exercise.FieldTense:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tense", values[i])
			} else if value.Valid {
				_m.Tense = value.String
			}
		case exercise.FieldPerson:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field person", values[i])
			} else if value.Valid {
				_m.Person = value.String
			}
		case exercise.FieldTriggerPhrase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_phrase", values[i])
			} else if value.Valid {
				_m.TriggerPhrase = value.String
			}
		case exercise.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case exercise.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case exercise.FieldAlternates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alternates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Alternates); err != nil {
					return fmt.Errorf("unmarshal field alternates: %w", err)
				}
			}
		case exercise.FieldRuleNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_note", values[i])
			} else if value.Valid {
				_m.RuleNote = value.String
			}
		case exercise.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case exercise.FieldHints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Hints); err != nil {
					return fmt.Errorf("unmarshal field hints: %w", err)
				}
			}
		case exercise.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Exercise.
// This includes values selected through modifiers, order, etc.
func (_m *Exercise) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Exercise.
// Note that you need to call Exercise.Unwrap() before calling this method if this Exercise
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Exercise) Update() *ExerciseUpdateOne {
	return NewExerciseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Exercise entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Exercise) Unwrap() *Exercise {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Exercise is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Exercise) String() string {
	var builder strings.Builder
	builder.WriteString("Exercise(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("verb=")
	builder.WriteString(_m.Verb)
	builder.WriteString(", ")
	builder.WriteString("tense=")
	builder.WriteString(_m.Tense)
	builder.WriteString(", ")
	builder.WriteString("person=")
	builder.WriteString(_m.Person)
	builder.WriteString(", ")
	builder.WriteString("trigger_phrase=")
	builder.WriteString(_m.TriggerPhrase)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("alternates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Alternates))
	builder.WriteString(", ")
	builder.WriteString("rule_note=")
	builder.WriteString(_m.RuleNote)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("hints=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hints))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Exercises is a parsable slice of Exercise.
type Exercises []*Exercise
