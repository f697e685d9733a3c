// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/report"
	"github.com/prepdeck/prepdeck/ent/schema"
)

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *ReportCreate) SetReportID(v string) *ReportCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ReportCreate) SetSubject(v string) *ReportCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ReportCreate) SetTopic(v string) *ReportCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ReportCreate) SetScore(v float64) *ReportCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalMarks sets the "total_marks" field.
func (_c *ReportCreate) SetTotalMarks(v int) *ReportCreate {
	_c.mutation.SetTotalMarks(v)
	return _c
}

// SetMarksScored sets the "marks_scored" field.
func (_c *ReportCreate) SetMarksScored(v int) *ReportCreate {
	_c.mutation.SetMarksScored(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ReportCreate) SetTotalQuestions(v int) *ReportCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *ReportCreate) SetCorrectAnswers(v int) *ReportCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_c *ReportCreate) SetTimeTakenSecs(v int) *ReportCreate {
	_c.mutation.SetTimeTakenSecs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetWeakAreas sets the "weak_areas" field.
func (_c *ReportCreate) SetWeakAreas(v []string) *ReportCreate {
	_c.mutation.SetWeakAreas(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *ReportCreate) SetAnswers(v []schema.ReportAnswer) *ReportCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *ReportCreate) SetQuestions(v []schema.ReportQuestion) *ReportCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetDetailLevel sets the "detail_level" field.
func (_c *ReportCreate) SetDetailLevel(v string) *ReportCreate {
	_c.mutation.SetDetailLevel(v)
	return _c
}

// SetNillableDetailLevel sets the "detail_level" field if the given value is not nil.
func (_c *ReportCreate) SetNillableDetailLevel(v *string) *ReportCreate {
	if v != nil {
		_c.SetDetailLevel(*v)
	}
	return _c
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.DetailLevel(); !ok {
		v := report.DefaultDetailLevel
		_c.mutation.SetDetailLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Report.report_id"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Report.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := report.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Report.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Report.topic"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Report.score"`)}
	}
	if _, ok := _c.mutation.TotalMarks(); !ok {
		return &ValidationError{Name: "total_marks", err: errors.New(`ent: missing required field "Report.total_marks"`)}
	}
	if _, ok := _c.mutation.MarksScored(); !ok {
		return &ValidationError{Name: "marks_scored", err: errors.New(`ent: missing required field "Report.marks_scored"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "Report.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "Report.correct_answers"`)}
	}
	if _, ok := _c.mutation.TimeTakenSecs(); !ok {
		return &ValidationError{Name: "time_taken_secs", err: errors.New(`ent: missing required field "Report.time_taken_secs"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Report.created_at"`)}
	}
	if _, ok := _c.mutation.DetailLevel(); !ok {
		return &ValidationError{Name: "detail_level", err: errors.New(`ent: missing required field "Report.detail_level"`)}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
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

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(report.FieldReportID, field.TypeString, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(report.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(report.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(report.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalMarks(); ok {
		_spec.SetField(report.FieldTotalMarks, field.TypeInt, value)
		_node.TotalMarks = value
	}
	if value, ok := _c.mutation.MarksScored(); ok {
		_spec.SetField(report.FieldMarksScored, field.TypeInt, value)
		_node.MarksScored = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(report.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(report.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.TimeTakenSecs(); ok {
		_spec.SetField(report.FieldTimeTakenSecs, field.TypeInt, value)
		_node.TimeTakenSecs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.WeakAreas(); ok {
		_spec.SetField(report.FieldWeakAreas, field.TypeJSON, value)
		_node.WeakAreas = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(report.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(report.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.DetailLevel(); ok {
		_spec.SetField(report.FieldDetailLevel, field.TypeString, value)
		_node.DetailLevel = value
	}
	return _node, _spec
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
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
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
