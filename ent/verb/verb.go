// Code generated by ent, DO NOT EDIT.

package verb

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the verb type in the database.
	Label = "verb"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInfinitive holds the string denoting the infinitive field in the database.
	FieldInfinitive = "infinitive"
	// FieldEnglish holds the string denoting the english field in the database.
	FieldEnglish = "english"
	// FieldClass holds the string denoting the class field in the database.
	FieldClass = "class"
	// FieldStemChange holds the string denoting the stem_change field in the database.
	FieldStemChange = "stem_change"
	// Table holds the table name of the verb in the database.
	Table = "verbs"
)

// Columns holds all SQL columns for verb fields.
var Columns = []string{
	FieldID,
	FieldInfinitive,
	FieldEnglish,
	FieldClass,
	FieldStemChange,
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
	// InfinitiveValidator is a validator for the "infinitive" field. It is called by the builders before save.
	InfinitiveValidator func(string) error
	// DefaultEnglish holds the default value on creation for the "english" field.
	DefaultEnglish string
	// DefaultStemChange holds the default value on creation for the "stem_change" field.
	DefaultStemChange string
)

// OrderOption defines the ordering options for the Verb queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInfinitive orders the results by the infinitive field.
func ByInfinitive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInfinitive, opts...).ToFunc()
}

// ByEnglish orders the results by the english field.
func ByEnglish(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnglish, opts...).ToFunc()
}

// ByClass orders the results by the class field.
func ByClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClass, opts...).ToFunc()
}

// ByStemChange orders the results by the stem_change field.
func ByStemChange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStemChange, opts...).ToFunc()
}
