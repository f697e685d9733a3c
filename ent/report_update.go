// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/predicate"
	"github.com/prepdeck/prepdeck/ent/report"
	"github.com/prepdeck/prepdeck/ent/schema"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *ReportUpdate) SetWeakAreas(v []string) *ReportUpdate {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *ReportUpdate) AppendWeakAreas(v []string) *ReportUpdate {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *ReportUpdate) ClearWeakAreas() *ReportUpdate {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *ReportUpdate) SetAnswers(v []schema.ReportAnswer) *ReportUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *ReportUpdate) AppendAnswers(v []schema.ReportAnswer) *ReportUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *ReportUpdate) ClearAnswers() *ReportUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ReportUpdate) SetQuestions(v []schema.ReportQuestion) *ReportUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ReportUpdate) AppendQuestions(v []schema.ReportQuestion) *ReportUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *ReportUpdate) ClearQuestions() *ReportUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(report.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(report.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(report.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(report.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(report.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(report.FieldQuestions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *ReportUpdateOne) SetWeakAreas(v []string) *ReportUpdateOne {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *ReportUpdateOne) AppendWeakAreas(v []string) *ReportUpdateOne {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *ReportUpdateOne) ClearWeakAreas() *ReportUpdateOne {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *ReportUpdateOne) SetAnswers(v []schema.ReportAnswer) *ReportUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *ReportUpdateOne) AppendAnswers(v []schema.ReportAnswer) *ReportUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *ReportUpdateOne) ClearAnswers() *ReportUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ReportUpdateOne) SetQuestions(v []schema.ReportQuestion) *ReportUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ReportUpdateOne) AppendQuestions(v []schema.ReportQuestion) *ReportUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *ReportUpdateOne) ClearQuestions() *ReportUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(report.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(report.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(report.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(report.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(report.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(report.FieldQuestions, field.TypeJSON)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
