// Code generated by ent, DO NOT EDIT.

package takeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quizdrill/quizdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldSessionID, v))
}

// Quiz applies equality check predicate on the "quiz" field. It's identical to QuizEQ.
func Quiz(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldQuiz, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldTotal, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldCorrect, v))
}

// Incorrect applies equality check predicate on the "incorrect" field. It's identical to IncorrectEQ.
func Incorrect(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldIncorrect, v))
}

// Ungraded applies equality check predicate on the "ungraded" field. It's identical to UngradedEQ.
func Ungraded(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldUngraded, v))
}

// Percent applies equality check predicate on the "percent" field. It's identical to PercentEQ.
func Percent(v float64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldPercent, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuizEQ applies the EQ predicate on the "quiz" field.
func QuizEQ(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldQuiz, v))
}

// QuizNEQ applies the NEQ predicate on the "quiz" field.
func QuizNEQ(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldQuiz, v))
}

// QuizIn applies the In predicate on the "quiz" field.
func QuizIn(vs ...string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldQuiz, vs...))
}

// QuizNotIn applies the NotIn predicate on the "quiz" field.
func QuizNotIn(vs ...string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldQuiz, vs...))
}

// QuizGT applies the GT predicate on the "quiz" field.
func QuizGT(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldQuiz, v))
}

// QuizGTE applies the GTE predicate on the "quiz" field.
func QuizGTE(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldQuiz, v))
}

// QuizLT applies the LT predicate on the "quiz" field.
func QuizLT(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldQuiz, v))
}

// QuizLTE applies the LTE predicate on the "quiz" field.
func QuizLTE(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldQuiz, v))
}

// QuizContains applies the Contains predicate on the "quiz" field.
func QuizContains(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldContains(FieldQuiz, v))
}

// QuizHasPrefix applies the HasPrefix predicate on the "quiz" field.
func QuizHasPrefix(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldHasPrefix(FieldQuiz, v))
}

// QuizHasSuffix applies the HasSuffix predicate on the "quiz" field.
func QuizHasSuffix(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldHasSuffix(FieldQuiz, v))
}

// QuizEqualFold applies the EqualFold predicate on the "quiz" field.
func QuizEqualFold(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEqualFold(FieldQuiz, v))
}

// QuizContainsFold applies the ContainsFold predicate on the "quiz" field.
func QuizContainsFold(v string) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldContainsFold(FieldQuiz, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldTotal, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldCorrect, v))
}

// IncorrectEQ applies the EQ predicate on the "incorrect" field.
func IncorrectEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldIncorrect, v))
}

// IncorrectNEQ applies the NEQ predicate on the "incorrect" field.
func IncorrectNEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldIncorrect, v))
}

// IncorrectIn applies the In predicate on the "incorrect" field.
func IncorrectIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldIncorrect, vs...))
}

// IncorrectNotIn applies the NotIn predicate on the "incorrect" field.
func IncorrectNotIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldIncorrect, vs...))
}

// IncorrectGT applies the GT predicate on the "incorrect" field.
func IncorrectGT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldIncorrect, v))
}

// IncorrectGTE applies the GTE predicate on the "incorrect" field.
func IncorrectGTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldIncorrect, v))
}

// IncorrectLT applies the LT predicate on the "incorrect" field.
func IncorrectLT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldIncorrect, v))
}

// IncorrectLTE applies the LTE predicate on the "incorrect" field.
func IncorrectLTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldIncorrect, v))
}

// UngradedEQ applies the EQ predicate on the "ungraded" field.
func UngradedEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldUngraded, v))
}

// UngradedNEQ applies the NEQ predicate on the "ungraded" field.
func UngradedNEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldUngraded, v))
}

// UngradedIn applies the In predicate on the "ungraded" field.
func UngradedIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldUngraded, vs...))
}

// UngradedNotIn applies the NotIn predicate on the "ungraded" field.
func UngradedNotIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldUngraded, vs...))
}

// UngradedGT applies the GT predicate on the "ungraded" field.
func UngradedGT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldUngraded, v))
}

// UngradedGTE applies the GTE predicate on the "ungraded" field.
func UngradedGTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldUngraded, v))
}

// UngradedLT applies the LT predicate on the "ungraded" field.
func UngradedLT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldUngraded, v))
}

// UngradedLTE applies the LTE predicate on the "ungraded" field.
func UngradedLTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldUngraded, v))
}

// PercentEQ applies the EQ predicate on the "percent" field.
func PercentEQ(v float64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldPercent, v))
}

// PercentNEQ applies the NEQ predicate on the "percent" field.
func PercentNEQ(v float64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldPercent, v))
}

// PercentIn applies the In predicate on the "percent" field.
func PercentIn(vs ...float64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldPercent, vs...))
}

// PercentNotIn applies the NotIn predicate on the "percent" field.
func PercentNotIn(vs ...float64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldPercent, vs...))
}

// PercentGT applies the GT predicate on the "percent" field.
func PercentGT(v float64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldPercent, v))
}

// PercentGTE applies the GTE predicate on the "percent" field.
func PercentGTE(v float64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldPercent, v))
}

// PercentLT applies the LT predicate on the "percent" field.
func PercentLT(v float64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldPercent, v))
}

// PercentLTE applies the LTE predicate on the "percent" field.
func PercentLTE(v float64) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldPercent, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.TakeEvent {
	return predicate.TakeEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TakeEvent) predicate.TakeEvent {
	return predicate.TakeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TakeEvent) predicate.TakeEvent {
	return predicate.TakeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TakeEvent) predicate.TakeEvent {
	return predicate.TakeEvent(sql.NotPredicates(p))
}
