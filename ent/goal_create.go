// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/goal"
)

// GoalCreate is the builder for creating a Goal entity.
type GoalCreate struct {
	config
	mutation *GoalMutation
	hooks    []Hook
}

// SetGoalID sets the "goal_id" field.
func (_c *GoalCreate) SetGoalID(v string) *GoalCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *GoalCreate) SetDescription(v string) *GoalCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetType sets the "type" field.
func (_c *GoalCreate) SetType(v string) *GoalCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *GoalCreate) SetSubject(v string) *GoalCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTargetValue sets the "target_value" field.
func (_c *GoalCreate) SetTargetValue(v float64) *GoalCreate {
	_c.mutation.SetTargetValue(v)
	return _c
}

// SetCurrentValue sets the "current_value" field.
func (_c *GoalCreate) SetCurrentValue(v float64) *GoalCreate {
	_c.mutation.SetCurrentValue(v)
	return _c
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_c *GoalCreate) SetNillableCurrentValue(v *float64) *GoalCreate {
	if v != nil {
		_c.SetCurrentValue(*v)
	}
	return _c
}

// SetTimeframe sets the "timeframe" field.
func (_c *GoalCreate) SetTimeframe(v string) *GoalCreate {
	_c.mutation.SetTimeframe(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *GoalCreate) SetStartDate(v time.Time) *GoalCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *GoalCreate) SetNillableStartDate(v *time.Time) *GoalCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GoalCreate) SetStatus(v string) *GoalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GoalCreate) SetNillableStatus(v *string) *GoalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// Mutation returns the GoalMutation object of the builder.
func (_c *GoalCreate) Mutation() *GoalMutation {
	return _c.mutation
}

// Save creates the Goal in the database.
func (_c *GoalCreate) Save(ctx context.Context) (*Goal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GoalCreate) SaveX(ctx context.Context) *Goal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GoalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GoalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GoalCreate) defaults() {
	if _, ok := _c.mutation.CurrentValue(); !ok {
		v := goal.DefaultCurrentValue
		_c.mutation.SetCurrentValue(v)
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		v := goal.DefaultStartDate()
		_c.mutation.SetStartDate(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := goal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GoalCreate) check() error {
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "Goal.goal_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Goal.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := goal.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Goal.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Goal.type"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Goal.subject"`)}
	}
	if _, ok := _c.mutation.TargetValue(); !ok {
		return &ValidationError{Name: "target_value", err: errors.New(`ent: missing required field "Goal.target_value"`)}
	}
	if _, ok := _c.mutation.CurrentValue(); !ok {
		return &ValidationError{Name: "current_value", err: errors.New(`ent: missing required field "Goal.current_value"`)}
	}
	if _, ok := _c.mutation.Timeframe(); !ok {
		return &ValidationError{Name: "timeframe", err: errors.New(`ent: missing required field "Goal.timeframe"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Goal.start_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Goal.status"`)}
	}
	return nil
}

func (_c *GoalCreate) sqlSave(ctx context.Context) (*Goal, error) {
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

func (_c *GoalCreate) createSpec() (*Goal, *sqlgraph.CreateSpec) {
	var (
		_node = &Goal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(goal.Table, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(goal.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(goal.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(goal.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(goal.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.TargetValue(); ok {
		_spec.SetField(goal.FieldTargetValue, field.TypeFloat64, value)
		_node.TargetValue = value
	}
	if value, ok := _c.mutation.CurrentValue(); ok {
		_spec.SetField(goal.FieldCurrentValue, field.TypeFloat64, value)
		_node.CurrentValue = value
	}
	if value, ok := _c.mutation.Timeframe(); ok {
		_spec.SetField(goal.FieldTimeframe, field.TypeString, value)
		_node.Timeframe = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(goal.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// GoalCreateBulk is the builder for creating many Goal entities in bulk.
type GoalCreateBulk struct {
	config
	err      error
	builders []*GoalCreate
}

// Save creates the Goal entities in the database.
func (_c *GoalCreateBulk) Save(ctx context.Context) ([]*Goal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Goal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GoalMutation)
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
func (_c *GoalCreateBulk) SaveX(ctx context.Context) []*Goal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GoalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GoalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
