// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quizdrill/quizdrill/ent/answerevent"
	"github.com/quizdrill/quizdrill/ent/schema"
	"github.com/quizdrill/quizdrill/ent/takeevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuiz is the schema descriptor for quiz field.
	answereventDescQuiz := answereventFields[1].Descriptor()
	// answerevent.QuizValidator is a validator for the "quiz" field. It is called by the builders before save.
	answerevent.QuizValidator = answereventDescQuiz.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescKind is the schema descriptor for kind field.
	answereventDescKind := answereventFields[4].Descriptor()
	// answerevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	answerevent.KindValidator = answereventDescKind.Validators[0].(func(string) error)
	// answereventDescVerdict is the schema descriptor for verdict field.
	answereventDescVerdict := answereventFields[6].Descriptor()
	// answerevent.VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	answerevent.VerdictValidator = answereventDescVerdict.Validators[0].(func(string) error)
	takeeventMixin := schema.TakeEvent{}.Mixin()
	takeeventMixinFields0 := takeeventMixin[0].Fields()
	_ = takeeventMixinFields0
	takeeventFields := schema.TakeEvent{}.Fields()
	_ = takeeventFields
	// takeeventDescTimestamp is the schema descriptor for timestamp field.
	takeeventDescTimestamp := takeeventMixinFields0[1].Descriptor()
	// takeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	takeevent.DefaultTimestamp = takeeventDescTimestamp.Default.(func() time.Time)
	// takeeventDescSessionID is the schema descriptor for session_id field.
	takeeventDescSessionID := takeeventFields[0].Descriptor()
	// takeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	takeevent.SessionIDValidator = takeeventDescSessionID.Validators[0].(func(string) error)
	// takeeventDescQuiz is the schema descriptor for quiz field.
	takeeventDescQuiz := takeeventFields[1].Descriptor()
	// takeevent.QuizValidator is a validator for the "quiz" field. It is called by the builders before save.
	takeevent.QuizValidator = takeeventDescQuiz.Validators[0].(func(string) error)
	// takeeventDescTotal is the schema descriptor for total field.
	takeeventDescTotal := takeeventFields[2].Descriptor()
	// takeevent.DefaultTotal holds the default value on creation for the total field.
	takeevent.DefaultTotal = takeeventDescTotal.Default.(int)
	// takeeventDescCorrect is the schema descriptor for correct field.
	takeeventDescCorrect := takeeventFields[3].Descriptor()
	// takeevent.DefaultCorrect holds the default value on creation for the correct field.
	takeevent.DefaultCorrect = takeeventDescCorrect.Default.(int)
	// takeeventDescIncorrect is the schema descriptor for incorrect field.
	takeeventDescIncorrect := takeeventFields[4].Descriptor()
	// takeevent.DefaultIncorrect holds the default value on creation for the incorrect field.
	takeevent.DefaultIncorrect = takeeventDescIncorrect.Default.(int)
	// takeeventDescUngraded is the schema descriptor for ungraded field.
	takeeventDescUngraded := takeeventFields[5].Descriptor()
	// takeevent.DefaultUngraded holds the default value on creation for the ungraded field.
	takeevent.DefaultUngraded = takeeventDescUngraded.Default.(int)
	// takeeventDescPercent is the schema descriptor for percent field.
	takeeventDescPercent := takeeventFields[6].Descriptor()
	// takeevent.DefaultPercent holds the default value on creation for the percent field.
	takeevent.DefaultPercent = takeeventDescPercent.Default.(float64)
	// takeeventDescDurationSecs is the schema descriptor for duration_secs field.
	takeeventDescDurationSecs := takeeventFields[7].Descriptor()
	// takeevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	takeevent.DefaultDurationSecs = takeeventDescDurationSecs.Default.(int)
}
