// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vivwell/api/ent/proposal"
)

// ProposalCreate is the builder for creating a Proposal entity.
type ProposalCreate struct {
	config
	mutation *ProposalMutation
	hooks    []Hook
}

// SetCompanyName sets the "company_name" field.
func (_c *ProposalCreate) SetCompanyName(v string) *ProposalCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetContactName sets the "contact_name" field.
func (_c *ProposalCreate) SetContactName(v string) *ProposalCreate {
	_c.mutation.SetContactName(v)
	return _c
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableContactName(v *string) *ProposalCreate {
	if v != nil {
		_c.SetContactName(*v)
	}
	return _c
}

// SetContactEmail sets the "contact_email" field.
func (_c *ProposalCreate) SetContactEmail(v string) *ProposalCreate {
	_c.mutation.SetContactEmail(v)
	return _c
}

// SetServiceType sets the "service_type" field.
func (_c *ProposalCreate) SetServiceType(v string) *ProposalCreate {
	_c.mutation.SetServiceType(v)
	return _c
}

// SetAppointmentCount sets the "appointment_count" field.
func (_c *ProposalCreate) SetAppointmentCount(v int) *ProposalCreate {
	_c.mutation.SetAppointmentCount(v)
	return _c
}

// SetRatePerAppointment sets the "rate_per_appointment" field.
func (_c *ProposalCreate) SetRatePerAppointment(v float64) *ProposalCreate {
	_c.mutation.SetRatePerAppointment(v)
	return _c
}

// SetDiscountPct sets the "discount_pct" field.
func (_c *ProposalCreate) SetDiscountPct(v float64) *ProposalCreate {
	_c.mutation.SetDiscountPct(v)
	return _c
}

// SetNillableDiscountPct sets the "discount_pct" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableDiscountPct(v *float64) *ProposalCreate {
	if v != nil {
		_c.SetDiscountPct(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *ProposalCreate) SetTotal(v float64) *ProposalCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProposalCreate) SetStatus(v proposal.Status) *ProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableStatus(v *proposal.Status) *ProposalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetViewToken sets the "view_token" field.
func (_c *ProposalCreate) SetViewToken(v string) *ProposalCreate {
	_c.mutation.SetViewToken(v)
	return _c
}

// SetStripeInvoiceID sets the "stripe_invoice_id" field.
func (_c *ProposalCreate) SetStripeInvoiceID(v string) *ProposalCreate {
	_c.mutation.SetStripeInvoiceID(v)
	return _c
}

// SetNillableStripeInvoiceID sets the "stripe_invoice_id" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableStripeInvoiceID(v *string) *ProposalCreate {
	if v != nil {
		_c.SetStripeInvoiceID(*v)
	}
	return _c
}

// SetDocusealSubmissionID sets the "docuseal_submission_id" field.
func (_c *ProposalCreate) SetDocusealSubmissionID(v string) *ProposalCreate {
	_c.mutation.SetDocusealSubmissionID(v)
	return _c
}

// SetNillableDocusealSubmissionID sets the "docuseal_submission_id" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableDocusealSubmissionID(v *string) *ProposalCreate {
	if v != nil {
		_c.SetDocusealSubmissionID(*v)
	}
	return _c
}

// SetViewedAt sets the "viewed_at" field.
func (_c *ProposalCreate) SetViewedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetViewedAt(v)
	return _c
}

// SetNillableViewedAt sets the "viewed_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableViewedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetViewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProposalCreate) SetCreatedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableCreatedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProposalCreate) SetUpdatedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableUpdatedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProposalMutation object of the builder.
func (_c *ProposalCreate) Mutation() *ProposalMutation {
	return _c.mutation
}

// Save creates the Proposal in the database.
func (_c *ProposalCreate) Save(ctx context.Context) (*Proposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProposalCreate) SaveX(ctx context.Context) *Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProposalCreate) defaults() {
	if _, ok := _c.mutation.DiscountPct(); !ok {
		v := proposal.DefaultDiscountPct
		_c.mutation.SetDiscountPct(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := proposal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := proposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := proposal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProposalCreate) check() error {
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Proposal.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := proposal.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Proposal.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContactEmail(); !ok {
		return &ValidationError{Name: "contact_email", err: errors.New(`ent: missing required field "Proposal.contact_email"`)}
	}
	if v, ok := _c.mutation.ContactEmail(); ok {
		if err := proposal.ContactEmailValidator(v); err != nil {
			return &ValidationError{Name: "contact_email", err: fmt.Errorf(`ent: validator failed for field "Proposal.contact_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ServiceType(); !ok {
		return &ValidationError{Name: "service_type", err: errors.New(`ent: missing required field "Proposal.service_type"`)}
	}
	if v, ok := _c.mutation.ServiceType(); ok {
		if err := proposal.ServiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "service_type", err: fmt.Errorf(`ent: validator failed for field "Proposal.service_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AppointmentCount(); !ok {
		return &ValidationError{Name: "appointment_count", err: errors.New(`ent: missing required field "Proposal.appointment_count"`)}
	}
	if v, ok := _c.mutation.AppointmentCount(); ok {
		if err := proposal.AppointmentCountValidator(v); err != nil {
			return &ValidationError{Name: "appointment_count", err: fmt.Errorf(`ent: validator failed for field "Proposal.appointment_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RatePerAppointment(); !ok {
		return &ValidationError{Name: "rate_per_appointment", err: errors.New(`ent: missing required field "Proposal.rate_per_appointment"`)}
	}
	if v, ok := _c.mutation.RatePerAppointment(); ok {
		if err := proposal.RatePerAppointmentValidator(v); err != nil {
			return &ValidationError{Name: "rate_per_appointment", err: fmt.Errorf(`ent: validator failed for field "Proposal.rate_per_appointment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscountPct(); !ok {
		return &ValidationError{Name: "discount_pct", err: errors.New(`ent: missing required field "Proposal.discount_pct"`)}
	}
	if v, ok := _c.mutation.DiscountPct(); ok {
		if err := proposal.DiscountPctValidator(v); err != nil {
			return &ValidationError{Name: "discount_pct", err: fmt.Errorf(`ent: validator failed for field "Proposal.discount_pct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "Proposal.total"`)}
	}
	if v, ok := _c.mutation.Total(); ok {
		if err := proposal.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "Proposal.total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Proposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ViewToken(); !ok {
		return &ValidationError{Name: "view_token", err: errors.New(`ent: missing required field "Proposal.view_token"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Proposal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Proposal.updated_at"`)}
	}
	return nil
}

func (_c *ProposalCreate) sqlSave(ctx context.Context) (*Proposal, error) {
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

func (_c *ProposalCreate) createSpec() (*Proposal, *sqlgraph.CreateSpec) {
	var (
		_node = &Proposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proposal.Table, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(proposal.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.ContactName(); ok {
		_spec.SetField(proposal.FieldContactName, field.TypeString, value)
		_node.ContactName = value
	}
	if value, ok := _c.mutation.ContactEmail(); ok {
		_spec.SetField(proposal.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = value
	}
	if value, ok := _c.mutation.ServiceType(); ok {
		_spec.SetField(proposal.FieldServiceType, field.TypeString, value)
		_node.ServiceType = value
	}
	if value, ok := _c.mutation.AppointmentCount(); ok {
		_spec.SetField(proposal.FieldAppointmentCount, field.TypeInt, value)
		_node.AppointmentCount = value
	}
	if value, ok := _c.mutation.RatePerAppointment(); ok {
		_spec.SetField(proposal.FieldRatePerAppointment, field.TypeFloat64, value)
		_node.RatePerAppointment = value
	}
	if value, ok := _c.mutation.DiscountPct(); ok {
		_spec.SetField(proposal.FieldDiscountPct, field.TypeFloat64, value)
		_node.DiscountPct = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(proposal.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ViewToken(); ok {
		_spec.SetField(proposal.FieldViewToken, field.TypeString, value)
		_node.ViewToken = value
	}
	if value, ok := _c.mutation.StripeInvoiceID(); ok {
		_spec.SetField(proposal.FieldStripeInvoiceID, field.TypeString, value)
		_node.StripeInvoiceID = value
	}
	if value, ok := _c.mutation.DocusealSubmissionID(); ok {
		_spec.SetField(proposal.FieldDocusealSubmissionID, field.TypeString, value)
		_node.DocusealSubmissionID = value
	}
	if value, ok := _c.mutation.ViewedAt(); ok {
		_spec.SetField(proposal.FieldViewedAt, field.TypeTime, value)
		_node.ViewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(proposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProposalCreateBulk is the builder for creating many Proposal entities in bulk.
type ProposalCreateBulk struct {
	config
	err      error
	builders []*ProposalCreate
}

// Save creates the Proposal entities in the database.
func (_c *ProposalCreateBulk) Save(ctx context.Context) ([]*Proposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Proposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProposalMutation)
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
func (_c *ProposalCreateBulk) SaveX(ctx context.Context) []*Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
