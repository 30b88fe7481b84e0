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
	"github.com/vivwell/api/ent/predicate"
	"github.com/vivwell/api/ent/proposal"
)

// ProposalUpdate is the builder for updating Proposal entities.
type ProposalUpdate struct {
	config
	hooks    []Hook
	mutation *ProposalMutation
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdate) Where(ps ...predicate.Proposal) *ProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *ProposalUpdate) SetCompanyName(v string) *ProposalUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableCompanyName(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *ProposalUpdate) SetContactName(v string) *ProposalUpdate {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableContactName(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *ProposalUpdate) ClearContactName() *ProposalUpdate {
	_u.mutation.ClearContactName()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *ProposalUpdate) SetContactEmail(v string) *ProposalUpdate {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableContactEmail(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// SetServiceType sets the "service_type" field.
func (_u *ProposalUpdate) SetServiceType(v string) *ProposalUpdate {
	_u.mutation.SetServiceType(v)
	return _u
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableServiceType(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetServiceType(*v)
	}
	return _u
}

// SetAppointmentCount sets the "appointment_count" field.
func (_u *ProposalUpdate) SetAppointmentCount(v int) *ProposalUpdate {
	_u.mutation.ResetAppointmentCount()
	_u.mutation.SetAppointmentCount(v)
	return _u
}

// SetNillableAppointmentCount sets the "appointment_count" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableAppointmentCount(v *int) *ProposalUpdate {
	if v != nil {
		_u.SetAppointmentCount(*v)
	}
	return _u
}

// AddAppointmentCount adds value to the "appointment_count" field.
func (_u *ProposalUpdate) AddAppointmentCount(v int) *ProposalUpdate {
	_u.mutation.AddAppointmentCount(v)
	return _u
}

// SetRatePerAppointment sets the "rate_per_appointment" field.
func (_u *ProposalUpdate) SetRatePerAppointment(v float64) *ProposalUpdate {
	_u.mutation.ResetRatePerAppointment()
	_u.mutation.SetRatePerAppointment(v)
	return _u
}

// SetNillableRatePerAppointment sets the "rate_per_appointment" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableRatePerAppointment(v *float64) *ProposalUpdate {
	if v != nil {
		_u.SetRatePerAppointment(*v)
	}
	return _u
}

// AddRatePerAppointment adds value to the "rate_per_appointment" field.
func (_u *ProposalUpdate) AddRatePerAppointment(v float64) *ProposalUpdate {
	_u.mutation.AddRatePerAppointment(v)
	return _u
}

// SetDiscountPct sets the "discount_pct" field.
func (_u *ProposalUpdate) SetDiscountPct(v float64) *ProposalUpdate {
	_u.mutation.ResetDiscountPct()
	_u.mutation.SetDiscountPct(v)
	return _u
}

// SetNillableDiscountPct sets the "discount_pct" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableDiscountPct(v *float64) *ProposalUpdate {
	if v != nil {
		_u.SetDiscountPct(*v)
	}
	return _u
}

// AddDiscountPct adds value to the "discount_pct" field.
func (_u *ProposalUpdate) AddDiscountPct(v float64) *ProposalUpdate {
	_u.mutation.AddDiscountPct(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProposalUpdate) SetTotal(v float64) *ProposalUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableTotal(v *float64) *ProposalUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProposalUpdate) AddTotal(v float64) *ProposalUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdate) SetStatus(v proposal.Status) *ProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableStatus(v *proposal.Status) *ProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetViewToken sets the "view_token" field.
func (_u *ProposalUpdate) SetViewToken(v string) *ProposalUpdate {
	_u.mutation.SetViewToken(v)
	return _u
}

// SetNillableViewToken sets the "view_token" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableViewToken(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetViewToken(*v)
	}
	return _u
}

// SetStripeInvoiceID sets the "stripe_invoice_id" field.
func (_u *ProposalUpdate) SetStripeInvoiceID(v string) *ProposalUpdate {
	_u.mutation.SetStripeInvoiceID(v)
	return _u
}

// SetNillableStripeInvoiceID sets the "stripe_invoice_id" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableStripeInvoiceID(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetStripeInvoiceID(*v)
	}
	return _u
}

// ClearStripeInvoiceID clears the value of the "stripe_invoice_id" field.
func (_u *ProposalUpdate) ClearStripeInvoiceID() *ProposalUpdate {
	_u.mutation.ClearStripeInvoiceID()
	return _u
}

// SetDocusealSubmissionID sets the "docuseal_submission_id" field.
func (_u *ProposalUpdate) SetDocusealSubmissionID(v string) *ProposalUpdate {
	_u.mutation.SetDocusealSubmissionID(v)
	return _u
}

// SetNillableDocusealSubmissionID sets the "docuseal_submission_id" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableDocusealSubmissionID(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetDocusealSubmissionID(*v)
	}
	return _u
}

// ClearDocusealSubmissionID clears the value of the "docuseal_submission_id" field.
func (_u *ProposalUpdate) ClearDocusealSubmissionID() *ProposalUpdate {
	_u.mutation.ClearDocusealSubmissionID()
	return _u
}

// SetViewedAt sets the "viewed_at" field.
func (_u *ProposalUpdate) SetViewedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetViewedAt(v)
	return _u
}

// SetNillableViewedAt sets the "viewed_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableViewedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetViewedAt(*v)
	}
	return _u
}

// ClearViewedAt clears the value of the "viewed_at" field.
func (_u *ProposalUpdate) ClearViewedAt() *ProposalUpdate {
	_u.mutation.ClearViewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProposalUpdate) SetUpdatedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdate) Mutation() *ProposalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProposalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProposalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdate) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := proposal.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Proposal.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactEmail(); ok {
		if err := proposal.ContactEmailValidator(v); err != nil {
			return &ValidationError{Name: "contact_email", err: fmt.Errorf(`ent: validator failed for field "Proposal.contact_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServiceType(); ok {
		if err := proposal.ServiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "service_type", err: fmt.Errorf(`ent: validator failed for field "Proposal.service_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentCount(); ok {
		if err := proposal.AppointmentCountValidator(v); err != nil {
			return &ValidationError{Name: "appointment_count", err: fmt.Errorf(`ent: validator failed for field "Proposal.appointment_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RatePerAppointment(); ok {
		if err := proposal.RatePerAppointmentValidator(v); err != nil {
			return &ValidationError{Name: "rate_per_appointment", err: fmt.Errorf(`ent: validator failed for field "Proposal.rate_per_appointment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscountPct(); ok {
		if err := proposal.DiscountPctValidator(v); err != nil {
			return &ValidationError{Name: "discount_pct", err: fmt.Errorf(`ent: validator failed for field "Proposal.discount_pct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := proposal.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "Proposal.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(proposal.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(proposal.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(proposal.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(proposal.FieldContactEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceType(); ok {
		_spec.SetField(proposal.FieldServiceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentCount(); ok {
		_spec.SetField(proposal.FieldAppointmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppointmentCount(); ok {
		_spec.AddField(proposal.FieldAppointmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatePerAppointment(); ok {
		_spec.SetField(proposal.FieldRatePerAppointment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatePerAppointment(); ok {
		_spec.AddField(proposal.FieldRatePerAppointment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscountPct(); ok {
		_spec.SetField(proposal.FieldDiscountPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPct(); ok {
		_spec.AddField(proposal.FieldDiscountPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(proposal.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(proposal.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ViewToken(); ok {
		_spec.SetField(proposal.FieldViewToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.StripeInvoiceID(); ok {
		_spec.SetField(proposal.FieldStripeInvoiceID, field.TypeString, value)
	}
	if _u.mutation.StripeInvoiceIDCleared() {
		_spec.ClearField(proposal.FieldStripeInvoiceID, field.TypeString)
	}
	if value, ok := _u.mutation.DocusealSubmissionID(); ok {
		_spec.SetField(proposal.FieldDocusealSubmissionID, field.TypeString, value)
	}
	if _u.mutation.DocusealSubmissionIDCleared() {
		_spec.ClearField(proposal.FieldDocusealSubmissionID, field.TypeString)
	}
	if value, ok := _u.mutation.ViewedAt(); ok {
		_spec.SetField(proposal.FieldViewedAt, field.TypeTime, value)
	}
	if _u.mutation.ViewedAtCleared() {
		_spec.ClearField(proposal.FieldViewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProposalUpdateOne is the builder for updating a single Proposal entity.
type ProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProposalMutation
}

// SetCompanyName sets the "company_name" field.
func (_u *ProposalUpdateOne) SetCompanyName(v string) *ProposalUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableCompanyName(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *ProposalUpdateOne) SetContactName(v string) *ProposalUpdateOne {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableContactName(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *ProposalUpdateOne) ClearContactName() *ProposalUpdateOne {
	_u.mutation.ClearContactName()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *ProposalUpdateOne) SetContactEmail(v string) *ProposalUpdateOne {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableContactEmail(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// SetServiceType sets the "service_type" field.
func (_u *ProposalUpdateOne) SetServiceType(v string) *ProposalUpdateOne {
	_u.mutation.SetServiceType(v)
	return _u
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableServiceType(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetServiceType(*v)
	}
	return _u
}

// SetAppointmentCount sets the "appointment_count" field.
func (_u *ProposalUpdateOne) SetAppointmentCount(v int) *ProposalUpdateOne {
	_u.mutation.ResetAppointmentCount()
	_u.mutation.SetAppointmentCount(v)
	return _u
}

// SetNillableAppointmentCount sets the "appointment_count" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableAppointmentCount(v *int) *ProposalUpdateOne {
	if v != nil {
		_u.SetAppointmentCount(*v)
	}
	return _u
}

// AddAppointmentCount adds value to the "appointment_count" field.
func (_u *ProposalUpdateOne) AddAppointmentCount(v int) *ProposalUpdateOne {
	_u.mutation.AddAppointmentCount(v)
	return _u
}

// SetRatePerAppointment sets the "rate_per_appointment" field.
func (_u *ProposalUpdateOne) SetRatePerAppointment(v float64) *ProposalUpdateOne {
	_u.mutation.ResetRatePerAppointment()
	_u.mutation.SetRatePerAppointment(v)
	return _u
}

// SetNillableRatePerAppointment sets the "rate_per_appointment" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableRatePerAppointment(v *float64) *ProposalUpdateOne {
	if v != nil {
		_u.SetRatePerAppointment(*v)
	}
	return _u
}

// AddRatePerAppointment adds value to the "rate_per_appointment" field.
func (_u *ProposalUpdateOne) AddRatePerAppointment(v float64) *ProposalUpdateOne {
	_u.mutation.AddRatePerAppointment(v)
	return _u
}

// SetDiscountPct sets the "discount_pct" field.
func (_u *ProposalUpdateOne) SetDiscountPct(v float64) *ProposalUpdateOne {
	_u.mutation.ResetDiscountPct()
	_u.mutation.SetDiscountPct(v)
	return _u
}

// SetNillableDiscountPct sets the "discount_pct" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableDiscountPct(v *float64) *ProposalUpdateOne {
	if v != nil {
		_u.SetDiscountPct(*v)
	}
	return _u
}

// AddDiscountPct adds value to the "discount_pct" field.
func (_u *ProposalUpdateOne) AddDiscountPct(v float64) *ProposalUpdateOne {
	_u.mutation.AddDiscountPct(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProposalUpdateOne) SetTotal(v float64) *ProposalUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableTotal(v *float64) *ProposalUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProposalUpdateOne) AddTotal(v float64) *ProposalUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdateOne) SetStatus(v proposal.Status) *ProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableStatus(v *proposal.Status) *ProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetViewToken sets the "view_token" field.
func (_u *ProposalUpdateOne) SetViewToken(v string) *ProposalUpdateOne {
	_u.mutation.SetViewToken(v)
	return _u
}

// SetNillableViewToken sets the "view_token" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableViewToken(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetViewToken(*v)
	}
	return _u
}

// SetStripeInvoiceID sets the "stripe_invoice_id" field.
func (_u *ProposalUpdateOne) SetStripeInvoiceID(v string) *ProposalUpdateOne {
	_u.mutation.SetStripeInvoiceID(v)
	return _u
}

// SetNillableStripeInvoiceID sets the "stripe_invoice_id" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableStripeInvoiceID(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetStripeInvoiceID(*v)
	}
	return _u
}

// ClearStripeInvoiceID clears the value of the "stripe_invoice_id" field.
func (_u *ProposalUpdateOne) ClearStripeInvoiceID() *ProposalUpdateOne {
	_u.mutation.ClearStripeInvoiceID()
	return _u
}

// SetDocusealSubmissionID sets the "docuseal_submission_id" field.
func (_u *ProposalUpdateOne) SetDocusealSubmissionID(v string) *ProposalUpdateOne {
	_u.mutation.SetDocusealSubmissionID(v)
	return _u
}

// SetNillableDocusealSubmissionID sets the "docuseal_submission_id" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableDocusealSubmissionID(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetDocusealSubmissionID(*v)
	}
	return _u
}

// ClearDocusealSubmissionID clears the value of the "docuseal_submission_id" field.
func (_u *ProposalUpdateOne) ClearDocusealSubmissionID() *ProposalUpdateOne {
	_u.mutation.ClearDocusealSubmissionID()
	return _u
}

// SetViewedAt sets the "viewed_at" field.
func (_u *ProposalUpdateOne) SetViewedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetViewedAt(v)
	return _u
}

// SetNillableViewedAt sets the "viewed_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableViewedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetViewedAt(*v)
	}
	return _u
}

// ClearViewedAt clears the value of the "viewed_at" field.
func (_u *ProposalUpdateOne) ClearViewedAt() *ProposalUpdateOne {
	_u.mutation.ClearViewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProposalUpdateOne) SetUpdatedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdateOne) Mutation() *ProposalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdateOne) Where(ps ...predicate.Proposal) *ProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProposalUpdateOne) Select(field string, fields ...string) *ProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Proposal entity.
func (_u *ProposalUpdateOne) Save(ctx context.Context) (*Proposal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdateOne) SaveX(ctx context.Context) *Proposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProposalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := proposal.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Proposal.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactEmail(); ok {
		if err := proposal.ContactEmailValidator(v); err != nil {
			return &ValidationError{Name: "contact_email", err: fmt.Errorf(`ent: validator failed for field "Proposal.contact_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServiceType(); ok {
		if err := proposal.ServiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "service_type", err: fmt.Errorf(`ent: validator failed for field "Proposal.service_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentCount(); ok {
		if err := proposal.AppointmentCountValidator(v); err != nil {
			return &ValidationError{Name: "appointment_count", err: fmt.Errorf(`ent: validator failed for field "Proposal.appointment_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RatePerAppointment(); ok {
		if err := proposal.RatePerAppointmentValidator(v); err != nil {
			return &ValidationError{Name: "rate_per_appointment", err: fmt.Errorf(`ent: validator failed for field "Proposal.rate_per_appointment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscountPct(); ok {
		if err := proposal.DiscountPctValidator(v); err != nil {
			return &ValidationError{Name: "discount_pct", err: fmt.Errorf(`ent: validator failed for field "Proposal.discount_pct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := proposal.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "Proposal.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdateOne) sqlSave(ctx context.Context) (_node *Proposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Proposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proposal.FieldID)
		for _, f := range fields {
			if !proposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proposal.FieldID {
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
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(proposal.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(proposal.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(proposal.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(proposal.FieldContactEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceType(); ok {
		_spec.SetField(proposal.FieldServiceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentCount(); ok {
		_spec.SetField(proposal.FieldAppointmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppointmentCount(); ok {
		_spec.AddField(proposal.FieldAppointmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatePerAppointment(); ok {
		_spec.SetField(proposal.FieldRatePerAppointment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatePerAppointment(); ok {
		_spec.AddField(proposal.FieldRatePerAppointment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscountPct(); ok {
		_spec.SetField(proposal.FieldDiscountPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPct(); ok {
		_spec.AddField(proposal.FieldDiscountPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(proposal.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(proposal.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ViewToken(); ok {
		_spec.SetField(proposal.FieldViewToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.StripeInvoiceID(); ok {
		_spec.SetField(proposal.FieldStripeInvoiceID, field.TypeString, value)
	}
	if _u.mutation.StripeInvoiceIDCleared() {
		_spec.ClearField(proposal.FieldStripeInvoiceID, field.TypeString)
	}
	if value, ok := _u.mutation.DocusealSubmissionID(); ok {
		_spec.SetField(proposal.FieldDocusealSubmissionID, field.TypeString, value)
	}
	if _u.mutation.DocusealSubmissionIDCleared() {
		_spec.ClearField(proposal.FieldDocusealSubmissionID, field.TypeString)
	}
	if value, ok := _u.mutation.ViewedAt(); ok {
		_spec.SetField(proposal.FieldViewedAt, field.TypeTime, value)
	}
	if _u.mutation.ViewedAtCleared() {
		_spec.ClearField(proposal.FieldViewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Proposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
