// Code generated by ent, DO NOT EDIT.

package takeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the takeevent type in the database.
	Label = "take_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuiz holds the string denoting the quiz field in the database.
	FieldQuiz = "quiz"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldIncorrect holds the string denoting the incorrect field in the database.
	FieldIncorrect = "incorrect"
	// FieldUngraded holds the string denoting the ungraded field in the database.
	FieldUngraded = "ungraded"
	// FieldPercent holds the string denoting the percent field in the database.
	FieldPercent = "percent"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the takeevent in the database.
	Table = "take_events"
)

// Columns holds all SQL columns for takeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuiz,
	FieldTotal,
	FieldCorrect,
	FieldIncorrect,
	FieldUngraded,
	FieldPercent,
	FieldDurationSecs,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// QuizValidator is a validator for the "quiz" field. It is called by the builders before save.
	QuizValidator func(string) error
	// DefaultTotal holds the default value on creation for the "total" field.
	DefaultTotal int
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect int
	// DefaultIncorrect holds the default value on creation for the "incorrect" field.
	DefaultIncorrect int
	// DefaultUngraded holds the default value on creation for the "ungraded" field.
	DefaultUngraded int
	// DefaultPercent holds the default value on creation for the "percent" field.
	DefaultPercent float64
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the TakeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuiz orders the results by the quiz field.
func ByQuiz(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuiz, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByIncorrect orders the results by the incorrect field.
func ByIncorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrect, opts...).ToFunc()
}

// ByUngraded orders the results by the ungraded field.
func ByUngraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUngraded, opts...).ToFunc()
}

// ByPercent orders the results by the percent field.
func ByPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercent, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
