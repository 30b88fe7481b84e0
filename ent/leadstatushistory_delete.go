// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vivwell/api/ent/leadstatushistory"
	"github.com/vivwell/api/ent/predicate"
)

// LeadStatusHistoryDelete is the builder for deleting a LeadStatusHistory entity.
type LeadStatusHistoryDelete struct {
	config
	hooks    []Hook
	mutation *LeadStatusHistoryMutation
}

// Where appends a list predicates to the LeadStatusHistoryDelete builder.
func (_d *LeadStatusHistoryDelete) Where(ps ...predicate.LeadStatusHistory) *LeadStatusHistoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LeadStatusHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LeadStatusHistoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LeadStatusHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(leadstatushistory.Table, sqlgraph.NewFieldSpec(leadstatushistory.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LeadStatusHistoryDeleteOne is the builder for deleting a single LeadStatusHistory entity.
type LeadStatusHistoryDeleteOne struct {
	_d *LeadStatusHistoryDelete
}

// Where appends a list predicates to the LeadStatusHistoryDelete builder.
func (_d *LeadStatusHistoryDeleteOne) Where(ps ...predicate.LeadStatusHistory) *LeadStatusHistoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LeadStatusHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{leadstatushistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LeadStatusHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
