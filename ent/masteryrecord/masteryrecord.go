// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryrecord type in the database.
	Label = "mastery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldVerb holds the string denoting the verb field in the database.
	FieldVerb = "verb"
	// FieldConsecutiveCorrect holds the string denoting the consecutive_correct field in the database.
	FieldConsecutiveCorrect = "consecutive_correct"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldIntervalNs holds the string denoting the interval_ns field in the database.
	FieldIntervalNs = "interval_ns"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// FieldLastOutcome holds the string denoting the last_outcome field in the database.
	FieldLastOutcome = "last_outcome"
	// FieldLastPracticed holds the string denoting the last_practiced field in the database.
	FieldLastPracticed = "last_practiced"
	// Table holds the table name of the masteryrecord in the database.
	Table = "mastery_records"
)

// Columns holds all SQL columns for masteryrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldVerb,
	FieldConsecutiveCorrect,
	FieldTotalAttempts,
	FieldCorrectCount,
	FieldIntervalNs,
	FieldNextReview,
	FieldLastOutcome,
	FieldLastPracticed,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// VerbValidator is a validator for the "verb" field. It is called by the builders before save.
	VerbValidator func(string) error
	// DefaultConsecutiveCorrect holds the default value on creation for the "consecutive_correct" field.
	DefaultConsecutiveCorrect int
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultIntervalNs holds the default value on creation for the "interval_ns" field.
	DefaultIntervalNs int64
	// DefaultLastOutcome holds the default value on creation for the "last_outcome" field.
	DefaultLastOutcome string
)

// OrderOption defines the ordering options for the MasteryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByVerb orders the results by the verb field.
func ByVerb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerb, opts...).ToFunc()
}

// ByConsecutiveCorrect orders the results by the consecutive_correct field.
func ByConsecutiveCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveCorrect, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByIntervalNs orders the results by the interval_ns field.
func ByIntervalNs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalNs, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}

// ByLastOutcome orders the results by the last_outcome field.
func ByLastOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOutcome, opts...).ToFunc()
}

// ByLastPracticed orders the results by the last_practiced field.
func ByLastPracticed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticed, opts...).ToFunc()
}
