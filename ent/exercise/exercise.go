// Code generated by ent, DO NOT EDIT.

package exercise

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the exercise type in the database.
	Label = "exercise"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVerb holds the string denoting the verb field in the database.
	FieldVerb = "verb"
	// FieldTense holds the string denoting the tense field in the database.
	FieldTense = "tense"
	// FieldPerson holds the string denoting the person field in the database.
	FieldPerson = "person"
	// FieldTriggerPhrase holds the string denoting the trigger_phrase field in the database.
	FieldTriggerPhrase = "trigger_phrase"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldAlternates holds the string denoting the alternates field in the database.
	FieldAlternates = "alternates"
	// FieldRuleNote holds the string denoting the rule_note field in the database.
	FieldRuleNote = "rule_note"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldHints holds the string denoting the hints field in the database.
	FieldHints = "hints"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the exercise in the database.
	Table = "exercises"
)

// Columns holds all SQL columns for exercise fields.
var Columns = []string{
	FieldID,
	FieldVerb,
	FieldTense,
	FieldPerson,
	FieldTriggerPhrase,
	FieldPrompt,
	FieldAnswer,
	FieldAlternates,
	FieldRuleNote,
	FieldDifficulty,
	FieldHints,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// VerbValidator is a validator for the "verb" field. It is called by the builders before save.
	VerbValidator func(string) error
	// DefaultRuleNote holds the default value on creation for the "rule_note" field.
	DefaultRuleNote string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Exercise queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVerb orders the results by the verb field.
func ByVerb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerb, opts...).ToFunc()
}

// ByTense orders the results by the tense field.
func ByTense(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTense, opts...).ToFunc()
}

// ByPerson orders the results by the person field.
func ByPerson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerson, opts...).ToFunc()
}

// ByTriggerPhrase orders the results by the trigger_phrase field.
func ByTriggerPhrase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerPhrase, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByRuleNote orders the results by the rule_note field.
func ByRuleNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleNote, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
