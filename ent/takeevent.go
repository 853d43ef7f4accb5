// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quizdrill/quizdrill/ent/takeevent"
)

// TakeEvent is the model entity for the TakeEvent schema.
type TakeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping the take's answer events
	SessionID string `json:"session_id,omitempty"`
	// Quiz name in the library
	Quiz string `json:"quiz,omitempty"`
	// Questions asked
	Total int `json:"total,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Incorrect holds the value of the "incorrect" field.
	Incorrect int `json:"incorrect,omitempty"`
	// Ungraded holds the value of the "ungraded" field.
	Ungraded int `json:"ungraded,omitempty"`
	// Score over graded questions, 0-100
	Percent float64 `json:"percent,omitempty"`
	// DurationSecs holds the value of the "duration_secs" field.
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TakeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case takeevent.FieldPercent:
			values[i] = new(sql.NullFloat64)
		case takeevent.FieldID, takeevent.FieldSequence, takeevent.FieldTotal, takeevent.FieldCorrect, takeevent.FieldIncorrect, takeevent.FieldUngraded, takeevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case takeevent.FieldSessionID, takeevent.FieldQuiz:
			values[i] = new(sql.NullString)
		case takeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TakeEvent fields.
func (_m *TakeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case takeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case takeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case takeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case takeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case takeevent.FieldQuiz:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz", values[i])
			} else if value.Valid {
				_m.Quiz = value.String
			}
		case takeevent.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case takeevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case takeevent.FieldIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect", values[i])
			} else if value.Valid {
				_m.Incorrect = int(value.Int64)
			}
		case takeevent.FieldUngraded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ungraded", values[i])
			} else if value.Valid {
				_m.Ungraded = int(value.Int64)
			}
		case takeevent.FieldPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field percent", values[i])
			} else if value.Valid {
				_m.Percent = value.Float64
			}
		case takeevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TakeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TakeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TakeEvent.
// Note that you need to call TakeEvent.Unwrap() before calling this method if this TakeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TakeEvent) Update() *TakeEventUpdateOne {
	return NewTakeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TakeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TakeEvent) Unwrap() *TakeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TakeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TakeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TakeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("quiz=")
	builder.WriteString(_m.Quiz)
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("incorrect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Incorrect))
	builder.WriteString(", ")
	builder.WriteString("ungraded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ungraded))
	builder.WriteString(", ")
	builder.WriteString("percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percent))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// TakeEvents is a parsable slice of TakeEvent.
type TakeEvents []*TakeEvent
