// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "quiz", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
		{Name: "question_text", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "response", Type: field.TypeString, Nullable: true},
		{Name: "verdict", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Nullable: true},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_quiz",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
		},
	}
	// TakeEventsColumns holds the columns for the "take_events" table.
	TakeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "quiz", Type: field.TypeString},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "incorrect", Type: field.TypeInt, Default: 0},
		{Name: "ungraded", Type: field.TypeInt, Default: 0},
		{Name: "percent", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// TakeEventsTable holds the schema information for the "take_events" table.
	TakeEventsTable = &schema.Table{
		Name:       "take_events",
		Columns:    TakeEventsColumns,
		PrimaryKey: []*schema.Column{TakeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "takeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TakeEventsColumns[1]},
			},
			{
				Name:    "takeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TakeEventsColumns[2]},
			},
			{
				Name:    "takeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TakeEventsColumns[3]},
			},
			{
				Name:    "takeevent_quiz",
				Unique:  false,
				Columns: []*schema.Column{TakeEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		TakeEventsTable,
	}
)

func init() {
}
