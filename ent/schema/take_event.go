package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TakeEvent records one completed (or abandoned) take of a quiz.
type TakeEvent struct {
	ent.Schema
}

func (TakeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TakeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping the take's answer events"),
		field.String("quiz").
			NotEmpty().
			Comment("Quiz name in the library"),
		field.Int("total").
			Default(0).
			Comment("Questions asked"),
		field.Int("correct").
			Default(0),
		field.Int("incorrect").
			Default(0),
		field.Int("ungraded").
			Default(0),
		field.Float("percent").
			Default(0).
			Comment("Score over graded questions, 0-100"),
		field.Int("duration_secs").
			Default(0),
	}
}

func (TakeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quiz"),
	}
}
