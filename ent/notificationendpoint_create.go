// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vivwell/api/ent/notificationendpoint"
)

// NotificationEndpointCreate is the builder for creating a NotificationEndpoint entity.
type NotificationEndpointCreate struct {
	config
	mutation *NotificationEndpointMutation
	hooks    []Hook
}

// SetURL sets the "url" field.
func (_c *NotificationEndpointCreate) SetURL(v string) *NotificationEndpointCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetKinds sets the "kinds" field.
func (_c *NotificationEndpointCreate) SetKinds(v []string) *NotificationEndpointCreate {
	_c.mutation.SetKinds(v)
	return _c
}

// SetSecret sets the "secret" field.
func (_c *NotificationEndpointCreate) SetSecret(v string) *NotificationEndpointCreate {
	_c.mutation.SetSecret(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *NotificationEndpointCreate) SetDescription(v string) *NotificationEndpointCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *NotificationEndpointCreate) SetNillableDescription(v *string) *NotificationEndpointCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *NotificationEndpointCreate) SetActive(v bool) *NotificationEndpointCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *NotificationEndpointCreate) SetNillableActive(v *bool) *NotificationEndpointCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *NotificationEndpointCreate) SetSuccessCount(v int) *NotificationEndpointCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *NotificationEndpointCreate) SetNillableSuccessCount(v *int) *NotificationEndpointCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *NotificationEndpointCreate) SetFailureCount(v int) *NotificationEndpointCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *NotificationEndpointCreate) SetNillableFailureCount(v *int) *NotificationEndpointCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (_c *NotificationEndpointCreate) SetLastTriggeredAt(v time.Time) *NotificationEndpointCreate {
	_c.mutation.SetLastTriggeredAt(v)
	return _c
}

// SetNillableLastTriggeredAt sets the "last_triggered_at" field if the given value is not nil.
func (_c *NotificationEndpointCreate) SetNillableLastTriggeredAt(v *time.Time) *NotificationEndpointCreate {
	if v != nil {
		_c.SetLastTriggeredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationEndpointCreate) SetCreatedAt(v time.Time) *NotificationEndpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationEndpointCreate) SetNillableCreatedAt(v *time.Time) *NotificationEndpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the NotificationEndpointMutation object of the builder.
func (_c *NotificationEndpointCreate) Mutation() *NotificationEndpointMutation {
	return _c.mutation
}

// Save creates the NotificationEndpoint in the database.
func (_c *NotificationEndpointCreate) Save(ctx context.Context) (*NotificationEndpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationEndpointCreate) SaveX(ctx context.Context) *NotificationEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationEndpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationEndpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationEndpointCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := notificationendpoint.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := notificationendpoint.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := notificationendpoint.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationendpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationEndpointCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "NotificationEndpoint.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := notificationendpoint.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "NotificationEndpoint.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kinds(); !ok {
		return &ValidationError{Name: "kinds", err: errors.New(`ent: missing required field "NotificationEndpoint.kinds"`)}
	}
	if _, ok := _c.mutation.Secret(); !ok {
		return &ValidationError{Name: "secret", err: errors.New(`ent: missing required field "NotificationEndpoint.secret"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "NotificationEndpoint.active"`)}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "NotificationEndpoint.success_count"`)}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`ent: missing required field "NotificationEndpoint.failure_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationEndpoint.created_at"`)}
	}
	return nil
}

func (_c *NotificationEndpointCreate) sqlSave(ctx context.Context) (*NotificationEndpoint, error) {
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

func (_c *NotificationEndpointCreate) createSpec() (*NotificationEndpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationEndpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationendpoint.Table, sqlgraph.NewFieldSpec(notificationendpoint.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(notificationendpoint.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Kinds(); ok {
		_spec.SetField(notificationendpoint.FieldKinds, field.TypeJSON, value)
		_node.Kinds = value
	}
	if value, ok := _c.mutation.Secret(); ok {
		_spec.SetField(notificationendpoint.FieldSecret, field.TypeString, value)
		_node.Secret = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(notificationendpoint.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(notificationendpoint.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(notificationendpoint.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(notificationendpoint.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if value, ok := _c.mutation.LastTriggeredAt(); ok {
		_spec.SetField(notificationendpoint.FieldLastTriggeredAt, field.TypeTime, value)
		_node.LastTriggeredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationendpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// NotificationEndpointCreateBulk is the builder for creating many NotificationEndpoint entities in bulk.
type NotificationEndpointCreateBulk struct {
	config
	err      error
	builders []*NotificationEndpointCreate
}

// Save creates the NotificationEndpoint entities in the database.
func (_c *NotificationEndpointCreateBulk) Save(ctx context.Context) ([]*NotificationEndpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationEndpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationEndpointMutation)
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
func (_c *NotificationEndpointCreateBulk) SaveX(ctx context.Context) []*NotificationEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationEndpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationEndpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
