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
	"github.com/prepdeck/prepdeck/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDetailLevel sets the "detail_level" field.
func (_u *ProfileUpdate) SetDetailLevel(v string) *ProfileUpdate {
	_u.mutation.SetDetailLevel(v)
	return _u
}

// SetNillableDetailLevel sets the "detail_level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDetailLevel(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetDetailLevel(*v)
	}
	return _u
}

// SetBadgeIds sets the "badge_ids" field.
func (_u *ProfileUpdate) SetBadgeIds(v []string) *ProfileUpdate {
	_u.mutation.SetBadgeIds(v)
	return _u
}

// AppendBadgeIds appends value to the "badge_ids" field.
func (_u *ProfileUpdate) AppendBadgeIds(v []string) *ProfileUpdate {
	_u.mutation.AppendBadgeIds(v)
	return _u
}

// ClearBadgeIds clears the value of the "badge_ids" field.
func (_u *ProfileUpdate) ClearBadgeIds() *ProfileUpdate {
	_u.mutation.ClearBadgeIds()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetailLevel(); ok {
		_spec.SetField(profile.FieldDetailLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeIds(); ok {
		_spec.SetField(profile.FieldBadgeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBadgeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldBadgeIds, value)
		})
	}
	if _u.mutation.BadgeIdsCleared() {
		_spec.ClearField(profile.FieldBadgeIds, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDetailLevel sets the "detail_level" field.
func (_u *ProfileUpdateOne) SetDetailLevel(v string) *ProfileUpdateOne {
	_u.mutation.SetDetailLevel(v)
	return _u
}

// SetNillableDetailLevel sets the "detail_level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDetailLevel(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetDetailLevel(*v)
	}
	return _u
}

// SetBadgeIds sets the "badge_ids" field.
func (_u *ProfileUpdateOne) SetBadgeIds(v []string) *ProfileUpdateOne {
	_u.mutation.SetBadgeIds(v)
	return _u
}

// AppendBadgeIds appends value to the "badge_ids" field.
func (_u *ProfileUpdateOne) AppendBadgeIds(v []string) *ProfileUpdateOne {
	_u.mutation.AppendBadgeIds(v)
	return _u
}

// ClearBadgeIds clears the value of the "badge_ids" field.
func (_u *ProfileUpdateOne) ClearBadgeIds() *ProfileUpdateOne {
	_u.mutation.ClearBadgeIds()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetailLevel(); ok {
		_spec.SetField(profile.FieldDetailLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeIds(); ok {
		_spec.SetField(profile.FieldBadgeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBadgeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldBadgeIds, value)
		})
	}
	if _u.mutation.BadgeIdsCleared() {
		_spec.ClearField(profile.FieldBadgeIds, field.TypeJSON)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
