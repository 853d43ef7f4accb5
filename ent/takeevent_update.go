// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizdrill/quizdrill/ent/predicate"
	"github.com/quizdrill/quizdrill/ent/takeevent"
)

// TakeEventUpdate is the builder for updating TakeEvent entities.
type TakeEventUpdate struct {
	config
	hooks    []Hook
	mutation *TakeEventMutation
}

// Where appends a list predicates to the TakeEventUpdate builder.
func (_u *TakeEventUpdate) Where(ps ...predicate.TakeEvent) *TakeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TakeEventUpdate) SetSessionID(v string) *TakeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TakeEventUpdate) SetNillableSessionID(v *string) *TakeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuiz sets the "quiz" field.
func (_u *TakeEventUpdate) SetQuiz(v string) *TakeEventUpdate {
	_u.mutation.SetQuiz(v)
	return _u
}

// SetNillableQuiz sets the "quiz" field if the given value is not nil.
func (_u *TakeEventUpdate) SetNillableQuiz(v *string) *TakeEventUpdate {
	if v != nil {
		_u.SetQuiz(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *TakeEventUpdate) SetTotal(v int) *TakeEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *TakeEventUpdate) SetNillableTotal(v *int) *TakeEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *TakeEventUpdate) AddTotal(v int) *TakeEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TakeEventUpdate) SetCorrect(v int) *TakeEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TakeEventUpdate) SetNillableCorrect(v *int) *TakeEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TakeEventUpdate) AddCorrect(v int) *TakeEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *TakeEventUpdate) SetIncorrect(v int) *TakeEventUpdate {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *TakeEventUpdate) SetNillableIncorrect(v *int) *TakeEventUpdate {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *TakeEventUpdate) AddIncorrect(v int) *TakeEventUpdate {
	_u.mutation.AddIncorrect(v)
	return _u
}

// SetUngraded sets the "ungraded" field.
func (_u *TakeEventUpdate) SetUngraded(v int) *TakeEventUpdate {
	_u.mutation.ResetUngraded()
	_u.mutation.SetUngraded(v)
	return _u
}

// SetNillableUngraded sets the "ungraded" field if the given value is not nil.
func (_u *TakeEventUpdate) SetNillableUngraded(v *int) *TakeEventUpdate {
	if v != nil {
		_u.SetUngraded(*v)
	}
	return _u
}

// AddUngraded adds value to the "ungraded" field.
func (_u *TakeEventUpdate) AddUngraded(v int) *TakeEventUpdate {
	_u.mutation.AddUngraded(v)
	return _u
}

// SetPercent sets the "percent" field.
func (_u *TakeEventUpdate) SetPercent(v float64) *TakeEventUpdate {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *TakeEventUpdate) SetNillablePercent(v *float64) *TakeEventUpdate {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *TakeEventUpdate) AddPercent(v float64) *TakeEventUpdate {
	_u.mutation.AddPercent(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *TakeEventUpdate) SetDurationSecs(v int) *TakeEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *TakeEventUpdate) SetNillableDurationSecs(v *int) *TakeEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *TakeEventUpdate) AddDurationSecs(v int) *TakeEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the TakeEventMutation object of the builder.
func (_u *TakeEventUpdate) Mutation() *TakeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TakeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TakeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TakeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TakeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TakeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := takeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TakeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quiz(); ok {
		if err := takeevent.QuizValidator(v); err != nil {
			return &ValidationError{Name: "quiz", err: fmt.Errorf(`ent: validator failed for field "TakeEvent.quiz": %w`, err)}
		}
	}
	return nil
}

func (_u *TakeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(takeevent.Table, takeevent.Columns, sqlgraph.NewFieldSpec(takeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(takeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quiz(); ok {
		_spec.SetField(takeevent.FieldQuiz, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(takeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(takeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(takeevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(takeevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(takeevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(takeevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ungraded(); ok {
		_spec.SetField(takeevent.FieldUngraded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUngraded(); ok {
		_spec.AddField(takeevent.FieldUngraded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(takeevent.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(takeevent.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(takeevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(takeevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{takeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TakeEventUpdateOne is the builder for updating a single TakeEvent entity.
type TakeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TakeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TakeEventUpdateOne) SetSessionID(v string) *TakeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TakeEventUpdateOne) SetNillableSessionID(v *string) *TakeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuiz sets the "quiz" field.
func (_u *TakeEventUpdateOne) SetQuiz(v string) *TakeEventUpdateOne {
	_u.mutation.SetQuiz(v)
	return _u
}

// SetNillableQuiz sets the "quiz" field if the given value is not nil.
func (_u *TakeEventUpdateOne) SetNillableQuiz(v *string) *TakeEventUpdateOne {
	if v != nil {
		_u.SetQuiz(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *TakeEventUpdateOne) SetTotal(v int) *TakeEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *TakeEventUpdateOne) SetNillableTotal(v *int) *TakeEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *TakeEventUpdateOne) AddTotal(v int) *TakeEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TakeEventUpdateOne) SetCorrect(v int) *TakeEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TakeEventUpdateOne) SetNillableCorrect(v *int) *TakeEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TakeEventUpdateOne) AddCorrect(v int) *TakeEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *TakeEventUpdateOne) SetIncorrect(v int) *TakeEventUpdateOne {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *TakeEventUpdateOne) SetNillableIncorrect(v *int) *TakeEventUpdateOne {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *TakeEventUpdateOne) AddIncorrect(v int) *TakeEventUpdateOne {
	_u.mutation.AddIncorrect(v)
	return _u
}

// SetUngraded sets the "ungraded" field.
func (_u *TakeEventUpdateOne) SetUngraded(v int) *TakeEventUpdateOne {
	_u.mutation.ResetUngraded()
	_u.mutation.SetUngraded(v)
	return _u
}

// SetNillableUngraded sets the "ungraded" field if the given value is not nil.
func (_u *TakeEventUpdateOne) SetNillableUngraded(v *int) *TakeEventUpdateOne {
	if v != nil {
		_u.SetUngraded(*v)
	}
	return _u
}

// AddUngraded adds value to the "ungraded" field.
func (_u *TakeEventUpdateOne) AddUngraded(v int) *TakeEventUpdateOne {
	_u.mutation.AddUngraded(v)
	return _u
}

// SetPercent sets the "percent" field.
func (_u *TakeEventUpdateOne) SetPercent(v float64) *TakeEventUpdateOne {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *TakeEventUpdateOne) SetNillablePercent(v *float64) *TakeEventUpdateOne {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *TakeEventUpdateOne) AddPercent(v float64) *TakeEventUpdateOne {
	_u.mutation.AddPercent(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *TakeEventUpdateOne) SetDurationSecs(v int) *TakeEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *TakeEventUpdateOne) SetNillableDurationSecs(v *int) *TakeEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *TakeEventUpdateOne) AddDurationSecs(v int) *TakeEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the TakeEventMutation object of the builder.
func (_u *TakeEventUpdateOne) Mutation() *TakeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TakeEventUpdate builder.
func (_u *TakeEventUpdateOne) Where(ps ...predicate.TakeEvent) *TakeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TakeEventUpdateOne) Select(field string, fields ...string) *TakeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TakeEvent entity.
func (_u *TakeEventUpdateOne) Save(ctx context.Context) (*TakeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TakeEventUpdateOne) SaveX(ctx context.Context) *TakeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TakeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TakeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TakeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := takeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TakeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quiz(); ok {
		if err := takeevent.QuizValidator(v); err != nil {
			return &ValidationError{Name: "quiz", err: fmt.Errorf(`ent: validator failed for field "TakeEvent.quiz": %w`, err)}
		}
	}
	return nil
}

func (_u *TakeEventUpdateOne) sqlSave(ctx context.Context) (_node *TakeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(takeevent.Table, takeevent.Columns, sqlgraph.NewFieldSpec(takeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TakeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, takeevent.FieldID)
		for _, f := range fields {
			if !takeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != takeevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(takeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quiz(); ok {
		_spec.SetField(takeevent.FieldQuiz, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(takeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(takeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(takeevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(takeevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(takeevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(takeevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ungraded(); ok {
		_spec.SetField(takeevent.FieldUngraded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUngraded(); ok {
		_spec.AddField(takeevent.FieldUngraded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(takeevent.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(takeevent.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(takeevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(takeevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &TakeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{takeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
