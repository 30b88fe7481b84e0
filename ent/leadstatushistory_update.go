// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vivwell/api/ent/lead"
	"github.com/vivwell/api/ent/leadstatushistory"
	"github.com/vivwell/api/ent/predicate"
)

// LeadStatusHistoryUpdate is the builder for updating LeadStatusHistory entities.
type LeadStatusHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *LeadStatusHistoryMutation
}

// Where appends a list predicates to the LeadStatusHistoryUpdate builder.
func (_u *LeadStatusHistoryUpdate) Where(ps ...predicate.LeadStatusHistory) *LeadStatusHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadStatusHistoryUpdate) SetLeadID(v int) *LeadStatusHistoryUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdate) SetNillableLeadID(v *int) *LeadStatusHistoryUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetChangedBy sets the "changed_by" field.
func (_u *LeadStatusHistoryUpdate) SetChangedBy(v string) *LeadStatusHistoryUpdate {
	_u.mutation.SetChangedBy(v)
	return _u
}

// SetNillableChangedBy sets the "changed_by" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdate) SetNillableChangedBy(v *string) *LeadStatusHistoryUpdate {
	if v != nil {
		_u.SetChangedBy(*v)
	}
	return _u
}

// SetOldStatus sets the "old_status" field.
func (_u *LeadStatusHistoryUpdate) SetOldStatus(v leadstatushistory.OldStatus) *LeadStatusHistoryUpdate {
	_u.mutation.SetOldStatus(v)
	return _u
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdate) SetNillableOldStatus(v *leadstatushistory.OldStatus) *LeadStatusHistoryUpdate {
	if v != nil {
		_u.SetOldStatus(*v)
	}
	return _u
}

// ClearOldStatus clears the value of the "old_status" field.
func (_u *LeadStatusHistoryUpdate) ClearOldStatus() *LeadStatusHistoryUpdate {
	_u.mutation.ClearOldStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *LeadStatusHistoryUpdate) SetNewStatus(v leadstatushistory.NewStatus) *LeadStatusHistoryUpdate {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdate) SetNillableNewStatus(v *leadstatushistory.NewStatus) *LeadStatusHistoryUpdate {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LeadStatusHistoryUpdate) SetReason(v string) *LeadStatusHistoryUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdate) SetNillableReason(v *string) *LeadStatusHistoryUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *LeadStatusHistoryUpdate) ClearReason() *LeadStatusHistoryUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadStatusHistoryUpdate) SetLead(v *Lead) *LeadStatusHistoryUpdate {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the LeadStatusHistoryMutation object of the builder.
func (_u *LeadStatusHistoryUpdate) Mutation() *LeadStatusHistoryMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadStatusHistoryUpdate) ClearLead() *LeadStatusHistoryUpdate {
	_u.mutation.ClearLead()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadStatusHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadStatusHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadStatusHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadStatusHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadStatusHistoryUpdate) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadstatushistory.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OldStatus(); ok {
		if err := leadstatushistory.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.old_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStatus(); ok {
		if err := leadstatushistory.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.new_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := leadstatushistory.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.reason": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadStatusHistory.lead"`)
	}
	return nil
}

func (_u *LeadStatusHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadstatushistory.Table, leadstatushistory.Columns, sqlgraph.NewFieldSpec(leadstatushistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChangedBy(); ok {
		_spec.SetField(leadstatushistory.FieldChangedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldStatus(); ok {
		_spec.SetField(leadstatushistory.FieldOldStatus, field.TypeEnum, value)
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(leadstatushistory.FieldOldStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(leadstatushistory.FieldNewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(leadstatushistory.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(leadstatushistory.FieldReason, field.TypeString)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstatushistory.LeadTable,
			Columns: []string{leadstatushistory.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstatushistory.LeadTable,
			Columns: []string{leadstatushistory.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadstatushistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadStatusHistoryUpdateOne is the builder for updating a single LeadStatusHistory entity.
type LeadStatusHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadStatusHistoryMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *LeadStatusHistoryUpdateOne) SetLeadID(v int) *LeadStatusHistoryUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdateOne) SetNillableLeadID(v *int) *LeadStatusHistoryUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetChangedBy sets the "changed_by" field.
func (_u *LeadStatusHistoryUpdateOne) SetChangedBy(v string) *LeadStatusHistoryUpdateOne {
	_u.mutation.SetChangedBy(v)
	return _u
}

// SetNillableChangedBy sets the "changed_by" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdateOne) SetNillableChangedBy(v *string) *LeadStatusHistoryUpdateOne {
	if v != nil {
		_u.SetChangedBy(*v)
	}
	return _u
}

// SetOldStatus sets the "old_status" field.
func (_u *LeadStatusHistoryUpdateOne) SetOldStatus(v leadstatushistory.OldStatus) *LeadStatusHistoryUpdateOne {
	_u.mutation.SetOldStatus(v)
	return _u
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdateOne) SetNillableOldStatus(v *leadstatushistory.OldStatus) *LeadStatusHistoryUpdateOne {
	if v != nil {
		_u.SetOldStatus(*v)
	}
	return _u
}

// ClearOldStatus clears the value of the "old_status" field.
func (_u *LeadStatusHistoryUpdateOne) ClearOldStatus() *LeadStatusHistoryUpdateOne {
	_u.mutation.ClearOldStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *LeadStatusHistoryUpdateOne) SetNewStatus(v leadstatushistory.NewStatus) *LeadStatusHistoryUpdateOne {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdateOne) SetNillableNewStatus(v *leadstatushistory.NewStatus) *LeadStatusHistoryUpdateOne {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LeadStatusHistoryUpdateOne) SetReason(v string) *LeadStatusHistoryUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LeadStatusHistoryUpdateOne) SetNillableReason(v *string) *LeadStatusHistoryUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *LeadStatusHistoryUpdateOne) ClearReason() *LeadStatusHistoryUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *LeadStatusHistoryUpdateOne) SetLead(v *Lead) *LeadStatusHistoryUpdateOne {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the LeadStatusHistoryMutation object of the builder.
func (_u *LeadStatusHistoryUpdateOne) Mutation() *LeadStatusHistoryMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *LeadStatusHistoryUpdateOne) ClearLead() *LeadStatusHistoryUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// Where appends a list predicates to the LeadStatusHistoryUpdate builder.
func (_u *LeadStatusHistoryUpdateOne) Where(ps ...predicate.LeadStatusHistory) *LeadStatusHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadStatusHistoryUpdateOne) Select(field string, fields ...string) *LeadStatusHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeadStatusHistory entity.
func (_u *LeadStatusHistoryUpdateOne) Save(ctx context.Context) (*LeadStatusHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadStatusHistoryUpdateOne) SaveX(ctx context.Context) *LeadStatusHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadStatusHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadStatusHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadStatusHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := leadstatushistory.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OldStatus(); ok {
		if err := leadstatushistory.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.old_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStatus(); ok {
		if err := leadstatushistory.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.new_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := leadstatushistory.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LeadStatusHistory.reason": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadStatusHistory.lead"`)
	}
	return nil
}

func (_u *LeadStatusHistoryUpdateOne) sqlSave(ctx context.Context) (_node *LeadStatusHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadstatushistory.Table, leadstatushistory.Columns, sqlgraph.NewFieldSpec(leadstatushistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeadStatusHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadstatushistory.FieldID)
		for _, f := range fields {
			if !leadstatushistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leadstatushistory.FieldID {
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
	if value, ok := _u.mutation.ChangedBy(); ok {
		_spec.SetField(leadstatushistory.FieldChangedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldStatus(); ok {
		_spec.SetField(leadstatushistory.FieldOldStatus, field.TypeEnum, value)
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(leadstatushistory.FieldOldStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(leadstatushistory.FieldNewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(leadstatushistory.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(leadstatushistory.FieldReason, field.TypeString)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstatushistory.LeadTable,
			Columns: []string{leadstatushistory.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstatushistory.LeadTable,
			Columns: []string{leadstatushistory.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LeadStatusHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadstatushistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
