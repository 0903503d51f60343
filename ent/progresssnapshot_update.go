// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rghosh/devnotes/ent/predicate"
	"github.com/rghosh/devnotes/ent/progresssnapshot"
)

// ProgressSnapshotUpdate is the builder for updating ProgressSnapshot entities.
type ProgressSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressSnapshotMutation
}

// Where appends a list predicates to the ProgressSnapshotUpdate builder.
func (_u *ProgressSnapshotUpdate) Where(ps ...predicate.ProgressSnapshot) *ProgressSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressSnapshotUpdate) SetUserID(v string) *ProgressSnapshotUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressSnapshotUpdate) SetNillableUserID(v *string) *ProgressSnapshotUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *ProgressSnapshotUpdate) SetSchemaVersion(v int) *ProgressSnapshotUpdate {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *ProgressSnapshotUpdate) SetNillableSchemaVersion(v *int) *ProgressSnapshotUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *ProgressSnapshotUpdate) AddSchemaVersion(v int) *ProgressSnapshotUpdate {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *ProgressSnapshotUpdate) SetSavedAt(v time.Time) *ProgressSnapshotUpdate {
	_u.mutation.SetSavedAt(v)
	return _u
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_u *ProgressSnapshotUpdate) SetNillableSavedAt(v *time.Time) *ProgressSnapshotUpdate {
	if v != nil {
		_u.SetSavedAt(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProgressSnapshotUpdate) SetData(v map[string]interface{}) *ProgressSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ProgressSnapshotMutation object of the builder.
func (_u *ProgressSnapshotUpdate) Mutation() *ProgressSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressSnapshotUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progresssnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressSnapshot.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progresssnapshot.Table, progresssnapshot.Columns, sqlgraph.NewFieldSpec(progresssnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progresssnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(progresssnapshot.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(progresssnapshot.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(progresssnapshot.FieldSavedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(progresssnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progresssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressSnapshotUpdateOne is the builder for updating a single ProgressSnapshot entity.
type ProgressSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressSnapshotMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProgressSnapshotUpdateOne) SetUserID(v string) *ProgressSnapshotUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressSnapshotUpdateOne) SetNillableUserID(v *string) *ProgressSnapshotUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *ProgressSnapshotUpdateOne) SetSchemaVersion(v int) *ProgressSnapshotUpdateOne {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *ProgressSnapshotUpdateOne) SetNillableSchemaVersion(v *int) *ProgressSnapshotUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *ProgressSnapshotUpdateOne) AddSchemaVersion(v int) *ProgressSnapshotUpdateOne {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *ProgressSnapshotUpdateOne) SetSavedAt(v time.Time) *ProgressSnapshotUpdateOne {
	_u.mutation.SetSavedAt(v)
	return _u
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_u *ProgressSnapshotUpdateOne) SetNillableSavedAt(v *time.Time) *ProgressSnapshotUpdateOne {
	if v != nil {
		_u.SetSavedAt(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProgressSnapshotUpdateOne) SetData(v map[string]interface{}) *ProgressSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ProgressSnapshotMutation object of the builder.
func (_u *ProgressSnapshotUpdateOne) Mutation() *ProgressSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressSnapshotUpdate builder.
func (_u *ProgressSnapshotUpdateOne) Where(ps ...predicate.ProgressSnapshot) *ProgressSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressSnapshotUpdateOne) Select(field string, fields ...string) *ProgressSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressSnapshot entity.
func (_u *ProgressSnapshotUpdateOne) Save(ctx context.Context) (*ProgressSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressSnapshotUpdateOne) SaveX(ctx context.Context) *ProgressSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progresssnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressSnapshot.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ProgressSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progresssnapshot.Table, progresssnapshot.Columns, sqlgraph.NewFieldSpec(progresssnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progresssnapshot.FieldID)
		for _, f := range fields {
			if !progresssnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progresssnapshot.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progresssnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(progresssnapshot.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(progresssnapshot.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(progresssnapshot.FieldSavedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(progresssnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &ProgressSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progresssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
