// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vivwell/api/ent/lead"
	"github.com/vivwell/api/ent/leadstatushistory"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
}

// SetFirstName sets the "first_name" field.
func (_c *LeadCreate) SetFirstName(v string) *LeadCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *LeadCreate) SetLastName(v string) *LeadCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LeadCreate) SetPhone(v string) *LeadCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *LeadCreate) SetNillablePhone(v *string) *LeadCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *LeadCreate) SetCompany(v string) *LeadCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompany(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *LeadCreate) SetLocation(v string) *LeadCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLocation(v *string) *LeadCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetServiceType sets the "service_type" field.
func (_c *LeadCreate) SetServiceType(v string) *LeadCreate {
	_c.mutation.SetServiceType(v)
	return _c
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (_c *LeadCreate) SetNillableServiceType(v *string) *LeadCreate {
	if v != nil {
		_c.SetServiceType(*v)
	}
	return _c
}

// SetEventDate sets the "event_date" field.
func (_c *LeadCreate) SetEventDate(v time.Time) *LeadCreate {
	_c.mutation.SetEventDate(v)
	return _c
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEventDate(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetEventDate(*v)
	}
	return _c
}

// SetAppointmentCount sets the "appointment_count" field.
func (_c *LeadCreate) SetAppointmentCount(v int) *LeadCreate {
	_c.mutation.SetAppointmentCount(v)
	return _c
}

// SetNillableAppointmentCount sets the "appointment_count" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAppointmentCount(v *int) *LeadCreate {
	if v != nil {
		_c.SetAppointmentCount(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *LeadCreate) SetMessage(v string) *LeadCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *LeadCreate) SetNillableMessage(v *string) *LeadCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *LeadCreate) SetPlatform(v lead.Platform) *LeadCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_c *LeadCreate) SetNillablePlatform(v *lead.Platform) *LeadCreate {
	if v != nil {
		_c.SetPlatform(*v)
	}
	return _c
}

// SetCampaignID sets the "campaign_id" field.
func (_c *LeadCreate) SetCampaignID(v string) *LeadCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCampaignID(v *string) *LeadCreate {
	if v != nil {
		_c.SetCampaignID(*v)
	}
	return _c
}

// SetAdSetID sets the "ad_set_id" field.
func (_c *LeadCreate) SetAdSetID(v string) *LeadCreate {
	_c.mutation.SetAdSetID(v)
	return _c
}

// SetNillableAdSetID sets the "ad_set_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAdSetID(v *string) *LeadCreate {
	if v != nil {
		_c.SetAdSetID(*v)
	}
	return _c
}

// SetAdID sets the "ad_id" field.
func (_c *LeadCreate) SetAdID(v string) *LeadCreate {
	_c.mutation.SetAdID(v)
	return _c
}

// SetNillableAdID sets the "ad_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAdID(v *string) *LeadCreate {
	if v != nil {
		_c.SetAdID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LeadCreate) SetStatus(v lead.Status) *LeadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStatus(v *lead.Status) *LeadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_c *LeadCreate) SetStatusChangedAt(v time.Time) *LeadCreate {
	_c.mutation.SetStatusChangedAt(v)
	return _c
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStatusChangedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetStatusChangedAt(*v)
	}
	return _c
}

// SetUtmSource sets the "utm_source" field.
func (_c *LeadCreate) SetUtmSource(v string) *LeadCreate {
	_c.mutation.SetUtmSource(v)
	return _c
}

// SetNillableUtmSource sets the "utm_source" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUtmSource(v *string) *LeadCreate {
	if v != nil {
		_c.SetUtmSource(*v)
	}
	return _c
}

// SetUtmMedium sets the "utm_medium" field.
func (_c *LeadCreate) SetUtmMedium(v string) *LeadCreate {
	_c.mutation.SetUtmMedium(v)
	return _c
}

// SetNillableUtmMedium sets the "utm_medium" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUtmMedium(v *string) *LeadCreate {
	if v != nil {
		_c.SetUtmMedium(*v)
	}
	return _c
}

// SetUtmCampaign sets the "utm_campaign" field.
func (_c *LeadCreate) SetUtmCampaign(v string) *LeadCreate {
	_c.mutation.SetUtmCampaign(v)
	return _c
}

// SetNillableUtmCampaign sets the "utm_campaign" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUtmCampaign(v *string) *LeadCreate {
	if v != nil {
		_c.SetUtmCampaign(*v)
	}
	return _c
}

// SetUtmTerm sets the "utm_term" field.
func (_c *LeadCreate) SetUtmTerm(v string) *LeadCreate {
	_c.mutation.SetUtmTerm(v)
	return _c
}

// SetNillableUtmTerm sets the "utm_term" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUtmTerm(v *string) *LeadCreate {
	if v != nil {
		_c.SetUtmTerm(*v)
	}
	return _c
}

// SetUtmContent sets the "utm_content" field.
func (_c *LeadCreate) SetUtmContent(v string) *LeadCreate {
	_c.mutation.SetUtmContent(v)
	return _c
}

// SetNillableUtmContent sets the "utm_content" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUtmContent(v *string) *LeadCreate {
	if v != nil {
		_c.SetUtmContent(*v)
	}
	return _c
}

// SetReferrer sets the "referrer" field.
func (_c *LeadCreate) SetReferrer(v string) *LeadCreate {
	_c.mutation.SetReferrer(v)
	return _c
}

// SetNillableReferrer sets the "referrer" field if the given value is not nil.
func (_c *LeadCreate) SetNillableReferrer(v *string) *LeadCreate {
	if v != nil {
		_c.SetReferrer(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *LeadCreate) SetUserAgent(v string) *LeadCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUserAgent(v *string) *LeadCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetLeadScore sets the "lead_score" field.
func (_c *LeadCreate) SetLeadScore(v int) *LeadCreate {
	_c.mutation.SetLeadScore(v)
	return _c
}

// SetNillableLeadScore sets the "lead_score" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLeadScore(v *int) *LeadCreate {
	if v != nil {
		_c.SetLeadScore(*v)
	}
	return _c
}

// SetConversionValue sets the "conversion_value" field.
func (_c *LeadCreate) SetConversionValue(v float64) *LeadCreate {
	_c.mutation.SetConversionValue(v)
	return _c
}

// SetNillableConversionValue sets the "conversion_value" field if the given value is not nil.
func (_c *LeadCreate) SetNillableConversionValue(v *float64) *LeadCreate {
	if v != nil {
		_c.SetConversionValue(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadCreate) SetUpdatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUpdatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddStatusHistoryIDs adds the "status_history" edge to the LeadStatusHistory entity by IDs.
func (_c *LeadCreate) AddStatusHistoryIDs(ids ...int) *LeadCreate {
	_c.mutation.AddStatusHistoryIDs(ids...)
	return _c
}

// AddStatusHistory adds the "status_history" edges to the LeadStatusHistory entity.
func (_c *LeadCreate) AddStatusHistory(v ...*LeadStatusHistory) *LeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusHistoryIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Platform(); !ok {
		v := lead.DefaultPlatform
		_c.mutation.SetPlatform(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := lead.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StatusChangedAt(); !ok {
		v := lead.DefaultStatusChangedAt()
		_c.mutation.SetStatusChangedAt(v)
	}
	if _, ok := _c.mutation.LeadScore(); !ok {
		v := lead.DefaultLeadScore
		_c.mutation.SetLeadScore(v)
	}
	if _, ok := _c.mutation.ConversionValue(); !ok {
		v := lead.DefaultConversionValue
		_c.mutation.SetConversionValue(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "Lead.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := lead.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Lead.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`ent: missing required field "Lead.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := lead.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Lead.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Lead.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := lead.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Lead.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AppointmentCount(); ok {
		if err := lead.AppointmentCountValidator(v); err != nil {
			return &ValidationError{Name: "appointment_count", err: fmt.Errorf(`ent: validator failed for field "Lead.appointment_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Lead.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := lead.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Lead.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Lead.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusChangedAt(); !ok {
		return &ValidationError{Name: "status_changed_at", err: errors.New(`ent: missing required field "Lead.status_changed_at"`)}
	}
	if _, ok := _c.mutation.LeadScore(); !ok {
		return &ValidationError{Name: "lead_score", err: errors.New(`ent: missing required field "Lead.lead_score"`)}
	}
	if v, ok := _c.mutation.LeadScore(); ok {
		if err := lead.LeadScoreValidator(v); err != nil {
			return &ValidationError{Name: "lead_score", err: fmt.Errorf(`ent: validator failed for field "Lead.lead_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConversionValue(); !ok {
		return &ValidationError{Name: "conversion_value", err: errors.New(`ent: missing required field "Lead.conversion_value"`)}
	}
	if v, ok := _c.mutation.ConversionValue(); ok {
		if err := lead.ConversionValueValidator(v); err != nil {
			return &ValidationError{Name: "conversion_value", err: fmt.Errorf(`ent: validator failed for field "Lead.conversion_value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lead.updated_at"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
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

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(lead.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.ServiceType(); ok {
		_spec.SetField(lead.FieldServiceType, field.TypeString, value)
		_node.ServiceType = value
	}
	if value, ok := _c.mutation.EventDate(); ok {
		_spec.SetField(lead.FieldEventDate, field.TypeTime, value)
		_node.EventDate = &value
	}
	if value, ok := _c.mutation.AppointmentCount(); ok {
		_spec.SetField(lead.FieldAppointmentCount, field.TypeInt, value)
		_node.AppointmentCount = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(lead.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(lead.FieldPlatform, field.TypeEnum, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.CampaignID(); ok {
		_spec.SetField(lead.FieldCampaignID, field.TypeString, value)
		_node.CampaignID = value
	}
	if value, ok := _c.mutation.AdSetID(); ok {
		_spec.SetField(lead.FieldAdSetID, field.TypeString, value)
		_node.AdSetID = value
	}
	if value, ok := _c.mutation.AdID(); ok {
		_spec.SetField(lead.FieldAdID, field.TypeString, value)
		_node.AdID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusChangedAt(); ok {
		_spec.SetField(lead.FieldStatusChangedAt, field.TypeTime, value)
		_node.StatusChangedAt = value
	}
	if value, ok := _c.mutation.UtmSource(); ok {
		_spec.SetField(lead.FieldUtmSource, field.TypeString, value)
		_node.UtmSource = value
	}
	if value, ok := _c.mutation.UtmMedium(); ok {
		_spec.SetField(lead.FieldUtmMedium, field.TypeString, value)
		_node.UtmMedium = value
	}
	if value, ok := _c.mutation.UtmCampaign(); ok {
		_spec.SetField(lead.FieldUtmCampaign, field.TypeString, value)
		_node.UtmCampaign = value
	}
	if value, ok := _c.mutation.UtmTerm(); ok {
		_spec.SetField(lead.FieldUtmTerm, field.TypeString, value)
		_node.UtmTerm = value
	}
	if value, ok := _c.mutation.UtmContent(); ok {
		_spec.SetField(lead.FieldUtmContent, field.TypeString, value)
		_node.UtmContent = value
	}
	if value, ok := _c.mutation.Referrer(); ok {
		_spec.SetField(lead.FieldReferrer, field.TypeString, value)
		_node.Referrer = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(lead.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := _c.mutation.LeadScore(); ok {
		_spec.SetField(lead.FieldLeadScore, field.TypeInt, value)
		_node.LeadScore = value
	}
	if value, ok := _c.mutation.ConversionValue(); ok {
		_spec.SetField(lead.FieldConversionValue, field.TypeFloat64, value)
		_node.ConversionValue = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StatusHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.StatusHistoryTable,
			Columns: []string{lead.StatusHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadstatushistory.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
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
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
