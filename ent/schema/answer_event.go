package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records the grading of a single question during a take.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("quiz").
			NotEmpty(),
		field.String("question_id").
			Optional().
			Comment("The question's declared id, when it has one"),
		field.String("question_text").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("Question kind string, e.g. ShortAnswer"),
		field.String("response").
			Optional().
			Comment("The raw response as typed"),
		field.String("verdict").
			NotEmpty().
			Comment("correct, incorrect, or ungraded"),
		field.String("explanation").
			Optional().
			Comment("Wrong-answer explanation shown, if any"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quiz"),
		index.Fields("question_id"),
	}
}
