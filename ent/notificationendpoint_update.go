// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vivwell/api/ent/notificationendpoint"
	"github.com/vivwell/api/ent/predicate"
)

// NotificationEndpointUpdate is the builder for updating NotificationEndpoint entities.
type NotificationEndpointUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationEndpointMutation
}

// Where appends a list predicates to the NotificationEndpointUpdate builder.
func (_u *NotificationEndpointUpdate) Where(ps ...predicate.NotificationEndpoint) *NotificationEndpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *NotificationEndpointUpdate) SetURL(v string) *NotificationEndpointUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *NotificationEndpointUpdate) SetNillableURL(v *string) *NotificationEndpointUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetKinds sets the "kinds" field.
func (_u *NotificationEndpointUpdate) SetKinds(v []string) *NotificationEndpointUpdate {
	_u.mutation.SetKinds(v)
	return _u
}

// AppendKinds appends value to the "kinds" field.
func (_u *NotificationEndpointUpdate) AppendKinds(v []string) *NotificationEndpointUpdate {
	_u.mutation.AppendKinds(v)
	return _u
}

// SetSecret sets the "secret" field.
func (_u *NotificationEndpointUpdate) SetSecret(v string) *NotificationEndpointUpdate {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *NotificationEndpointUpdate) SetNillableSecret(v *string) *NotificationEndpointUpdate {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *NotificationEndpointUpdate) SetDescription(v string) *NotificationEndpointUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *NotificationEndpointUpdate) SetNillableDescription(v *string) *NotificationEndpointUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *NotificationEndpointUpdate) ClearDescription() *NotificationEndpointUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetActive sets the "active" field.
func (_u *NotificationEndpointUpdate) SetActive(v bool) *NotificationEndpointUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *NotificationEndpointUpdate) SetNillableActive(v *bool) *NotificationEndpointUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *NotificationEndpointUpdate) SetSuccessCount(v int) *NotificationEndpointUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *NotificationEndpointUpdate) SetNillableSuccessCount(v *int) *NotificationEndpointUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *NotificationEndpointUpdate) AddSuccessCount(v int) *NotificationEndpointUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *NotificationEndpointUpdate) SetFailureCount(v int) *NotificationEndpointUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *NotificationEndpointUpdate) SetNillableFailureCount(v *int) *NotificationEndpointUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *NotificationEndpointUpdate) AddFailureCount(v int) *NotificationEndpointUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (_u *NotificationEndpointUpdate) SetLastTriggeredAt(v time.Time) *NotificationEndpointUpdate {
	_u.mutation.SetLastTriggeredAt(v)
	return _u
}

// SetNillableLastTriggeredAt sets the "last_triggered_at" field if the given value is not nil.
func (_u *NotificationEndpointUpdate) SetNillableLastTriggeredAt(v *time.Time) *NotificationEndpointUpdate {
	if v != nil {
		_u.SetLastTriggeredAt(*v)
	}
	return _u
}

// ClearLastTriggeredAt clears the value of the "last_triggered_at" field.
func (_u *NotificationEndpointUpdate) ClearLastTriggeredAt() *NotificationEndpointUpdate {
	_u.mutation.ClearLastTriggeredAt()
	return _u
}

// Mutation returns the NotificationEndpointMutation object of the builder.
func (_u *NotificationEndpointUpdate) Mutation() *NotificationEndpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationEndpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationEndpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationEndpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationEndpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationEndpointUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := notificationendpoint.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "NotificationEndpoint.url": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationEndpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationendpoint.Table, notificationendpoint.Columns, sqlgraph.NewFieldSpec(notificationendpoint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(notificationendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kinds(); ok {
		_spec.SetField(notificationendpoint.FieldKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, notificationendpoint.FieldKinds, value)
		})
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(notificationendpoint.FieldSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(notificationendpoint.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(notificationendpoint.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(notificationendpoint.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(notificationendpoint.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(notificationendpoint.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(notificationendpoint.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(notificationendpoint.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTriggeredAt(); ok {
		_spec.SetField(notificationendpoint.FieldLastTriggeredAt, field.TypeTime, value)
	}
	if _u.mutation.LastTriggeredAtCleared() {
		_spec.ClearField(notificationendpoint.FieldLastTriggeredAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationEndpointUpdateOne is the builder for updating a single NotificationEndpoint entity.
type NotificationEndpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationEndpointMutation
}

// SetURL sets the "url" field.
func (_u *NotificationEndpointUpdateOne) SetURL(v string) *NotificationEndpointUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *NotificationEndpointUpdateOne) SetNillableURL(v *string) *NotificationEndpointUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetKinds sets the "kinds" field.
func (_u *NotificationEndpointUpdateOne) SetKinds(v []string) *NotificationEndpointUpdateOne {
	_u.mutation.SetKinds(v)
	return _u
}

// AppendKinds appends value to the "kinds" field.
func (_u *NotificationEndpointUpdateOne) AppendKinds(v []string) *NotificationEndpointUpdateOne {
	_u.mutation.AppendKinds(v)
	return _u
}

// SetSecret sets the "secret" field.
func (_u *NotificationEndpointUpdateOne) SetSecret(v string) *NotificationEndpointUpdateOne {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *NotificationEndpointUpdateOne) SetNillableSecret(v *string) *NotificationEndpointUpdateOne {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *NotificationEndpointUpdateOne) SetDescription(v string) *NotificationEndpointUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *NotificationEndpointUpdateOne) SetNillableDescription(v *string) *NotificationEndpointUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *NotificationEndpointUpdateOne) ClearDescription() *NotificationEndpointUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetActive sets the "active" field.
func (_u *NotificationEndpointUpdateOne) SetActive(v bool) *NotificationEndpointUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *NotificationEndpointUpdateOne) SetNillableActive(v *bool) *NotificationEndpointUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *NotificationEndpointUpdateOne) SetSuccessCount(v int) *NotificationEndpointUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *NotificationEndpointUpdateOne) SetNillableSuccessCount(v *int) *NotificationEndpointUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *NotificationEndpointUpdateOne) AddSuccessCount(v int) *NotificationEndpointUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *NotificationEndpointUpdateOne) SetFailureCount(v int) *NotificationEndpointUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *NotificationEndpointUpdateOne) SetNillableFailureCount(v *int) *NotificationEndpointUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *NotificationEndpointUpdateOne) AddFailureCount(v int) *NotificationEndpointUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (_u *NotificationEndpointUpdateOne) SetLastTriggeredAt(v time.Time) *NotificationEndpointUpdateOne {
	_u.mutation.SetLastTriggeredAt(v)
	return _u
}

// SetNillableLastTriggeredAt sets the "last_triggered_at" field if the given value is not nil.
func (_u *NotificationEndpointUpdateOne) SetNillableLastTriggeredAt(v *time.Time) *NotificationEndpointUpdateOne {
	if v != nil {
		_u.SetLastTriggeredAt(*v)
	}
	return _u
}

// ClearLastTriggeredAt clears the value of the "last_triggered_at" field.
func (_u *NotificationEndpointUpdateOne) ClearLastTriggeredAt() *NotificationEndpointUpdateOne {
	_u.mutation.ClearLastTriggeredAt()
	return _u
}

// Mutation returns the NotificationEndpointMutation object of the builder.
func (_u *NotificationEndpointUpdateOne) Mutation() *NotificationEndpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationEndpointUpdate builder.
func (_u *NotificationEndpointUpdateOne) Where(ps ...predicate.NotificationEndpoint) *NotificationEndpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationEndpointUpdateOne) Select(field string, fields ...string) *NotificationEndpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationEndpoint entity.
func (_u *NotificationEndpointUpdateOne) Save(ctx context.Context) (*NotificationEndpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationEndpointUpdateOne) SaveX(ctx context.Context) *NotificationEndpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationEndpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationEndpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationEndpointUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := notificationendpoint.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "NotificationEndpoint.url": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationEndpointUpdateOne) sqlSave(ctx context.Context) (_node *NotificationEndpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationendpoint.Table, notificationendpoint.Columns, sqlgraph.NewFieldSpec(notificationendpoint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationEndpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationendpoint.FieldID)
		for _, f := range fields {
			if !notificationendpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationendpoint.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(notificationendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kinds(); ok {
		_spec.SetField(notificationendpoint.FieldKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, notificationendpoint.FieldKinds, value)
		})
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(notificationendpoint.FieldSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(notificationendpoint.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(notificationendpoint.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(notificationendpoint.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(notificationendpoint.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(notificationendpoint.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(notificationendpoint.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(notificationendpoint.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTriggeredAt(); ok {
		_spec.SetField(notificationendpoint.FieldLastTriggeredAt, field.TypeTime, value)
	}
	if _u.mutation.LastTriggeredAtCleared() {
		_spec.ClearField(notificationendpoint.FieldLastTriggeredAt, field.TypeTime)
	}
	_node = &NotificationEndpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
