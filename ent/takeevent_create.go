// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizdrill/quizdrill/ent/takeevent"
)

// TakeEventCreate is the builder for creating a TakeEvent entity.
type TakeEventCreate struct {
	config
	mutation *TakeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TakeEventCreate) SetSequence(v int64) *TakeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TakeEventCreate) SetTimestamp(v time.Time) *TakeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TakeEventCreate) SetNillableTimestamp(v *time.Time) *TakeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TakeEventCreate) SetSessionID(v string) *TakeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuiz sets the "quiz" field.
func (_c *TakeEventCreate) SetQuiz(v string) *TakeEventCreate {
	_c.mutation.SetQuiz(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *TakeEventCreate) SetTotal(v int) *TakeEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *TakeEventCreate) SetNillableTotal(v *int) *TakeEventCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *TakeEventCreate) SetCorrect(v int) *TakeEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *TakeEventCreate) SetNillableCorrect(v *int) *TakeEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetIncorrect sets the "incorrect" field.
func (_c *TakeEventCreate) SetIncorrect(v int) *TakeEventCreate {
	_c.mutation.SetIncorrect(v)
	return _c
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_c *TakeEventCreate) SetNillableIncorrect(v *int) *TakeEventCreate {
	if v != nil {
		_c.SetIncorrect(*v)
	}
	return _c
}

// SetUngraded sets the "ungraded" field.
func (_c *TakeEventCreate) SetUngraded(v int) *TakeEventCreate {
	_c.mutation.SetUngraded(v)
	return _c
}

// SetNillableUngraded sets the "ungraded" field if the given value is not nil.
func (_c *TakeEventCreate) SetNillableUngraded(v *int) *TakeEventCreate {
	if v != nil {
		_c.SetUngraded(*v)
	}
	return _c
}

// SetPercent sets the "percent" field.
func (_c *TakeEventCreate) SetPercent(v float64) *TakeEventCreate {
	_c.mutation.SetPercent(v)
	return _c
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_c *TakeEventCreate) SetNillablePercent(v *float64) *TakeEventCreate {
	if v != nil {
		_c.SetPercent(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *TakeEventCreate) SetDurationSecs(v int) *TakeEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *TakeEventCreate) SetNillableDurationSecs(v *int) *TakeEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the TakeEventMutation object of the builder.
func (_c *TakeEventCreate) Mutation() *TakeEventMutation {
	return _c.mutation
}

// Save creates the TakeEvent in the database.
func (_c *TakeEventCreate) Save(ctx context.Context) (*TakeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TakeEventCreate) SaveX(ctx context.Context) *TakeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TakeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TakeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TakeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := takeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := takeevent.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := takeevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Incorrect(); !ok {
		v := takeevent.DefaultIncorrect
		_c.mutation.SetIncorrect(v)
	}
	if _, ok := _c.mutation.Ungraded(); !ok {
		v := takeevent.DefaultUngraded
		_c.mutation.SetUngraded(v)
	}
	if _, ok := _c.mutation.Percent(); !ok {
		v := takeevent.DefaultPercent
		_c.mutation.SetPercent(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := takeevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TakeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TakeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TakeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TakeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := takeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TakeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quiz(); !ok {
		return &ValidationError{Name: "quiz", err: errors.New(`ent: missing required field "TakeEvent.quiz"`)}
	}
	if v, ok := _c.mutation.Quiz(); ok {
		if err := takeevent.QuizValidator(v); err != nil {
			return &ValidationError{Name: "quiz", err: fmt.Errorf(`ent: validator failed for field "TakeEvent.quiz": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "TakeEvent.total"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "TakeEvent.correct"`)}
	}
	if _, ok := _c.mutation.Incorrect(); !ok {
		return &ValidationError{Name: "incorrect", err: errors.New(`ent: missing required field "TakeEvent.incorrect"`)}
	}
	if _, ok := _c.mutation.Ungraded(); !ok {
		return &ValidationError{Name: "ungraded", err: errors.New(`ent: missing required field "TakeEvent.ungraded"`)}
	}
	if _, ok := _c.mutation.Percent(); !ok {
		return &ValidationError{Name: "percent", err: errors.New(`ent: missing required field "TakeEvent.percent"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "TakeEvent.duration_secs"`)}
	}
	return nil
}

func (_c *TakeEventCreate) sqlSave(ctx context.Context) (*TakeEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TakeEventCreate) createSpec() (*TakeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TakeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(takeevent.Table, sqlgraph.NewFieldSpec(takeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(takeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(takeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(takeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Quiz(); ok {
		_spec.SetField(takeevent.FieldQuiz, field.TypeString, value)
		_node.Quiz = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(takeevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(takeevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Incorrect(); ok {
		_spec.SetField(takeevent.FieldIncorrect, field.TypeInt, value)
		_node.Incorrect = value
	}
	if value, ok := _c.mutation.Ungraded(); ok {
		_spec.SetField(takeevent.FieldUngraded, field.TypeInt, value)
		_node.Ungraded = value
	}
	if value, ok := _c.mutation.Percent(); ok {
		_spec.SetField(takeevent.FieldPercent, field.TypeFloat64, value)
		_node.Percent = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(takeevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// TakeEventCreateBulk is the builder for creating many TakeEvent entities in bulk.
type TakeEventCreateBulk struct {
	config
	err      error
	builders []*TakeEventCreate
}

// Save creates the TakeEvent entities in the database.
func (_c *TakeEventCreateBulk) Save(ctx context.Context) ([]*TakeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TakeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TakeEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TakeEventCreateBulk) SaveX(ctx context.Context) []*TakeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TakeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TakeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
