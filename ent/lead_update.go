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
	"github.com/vivwell/api/ent/lead"
	"github.com/vivwell/api/ent/leadstatushistory"
	"github.com/vivwell/api/ent/predicate"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *LeadUpdate) SetFirstName(v string) *LeadUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFirstName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *LeadUpdate) SetLastName(v string) *LeadUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLastName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdate) ClearPhone() *LeadUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdate) SetCompany(v string) *LeadUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompany(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdate) ClearCompany() *LeadUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetLocation sets the "location" field.
func (_u *LeadUpdate) SetLocation(v string) *LeadUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLocation(v *string) *LeadUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *LeadUpdate) ClearLocation() *LeadUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetServiceType sets the "service_type" field.
func (_u *LeadUpdate) SetServiceType(v string) *LeadUpdate {
	_u.mutation.SetServiceType(v)
	return _u
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableServiceType(v *string) *LeadUpdate {
	if v != nil {
		_u.SetServiceType(*v)
	}
	return _u
}

// ClearServiceType clears the value of the "service_type" field.
func (_u *LeadUpdate) ClearServiceType() *LeadUpdate {
	_u.mutation.ClearServiceType()
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *LeadUpdate) SetEventDate(v time.Time) *LeadUpdate {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEventDate(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// ClearEventDate clears the value of the "event_date" field.
func (_u *LeadUpdate) ClearEventDate() *LeadUpdate {
	_u.mutation.ClearEventDate()
	return _u
}

// SetAppointmentCount sets the "appointment_count" field.
func (_u *LeadUpdate) SetAppointmentCount(v int) *LeadUpdate {
	_u.mutation.ResetAppointmentCount()
	_u.mutation.SetAppointmentCount(v)
	return _u
}

// SetNillableAppointmentCount sets the "appointment_count" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAppointmentCount(v *int) *LeadUpdate {
	if v != nil {
		_u.SetAppointmentCount(*v)
	}
	return _u
}

// AddAppointmentCount adds value to the "appointment_count" field.
func (_u *LeadUpdate) AddAppointmentCount(v int) *LeadUpdate {
	_u.mutation.AddAppointmentCount(v)
	return _u
}

// ClearAppointmentCount clears the value of the "appointment_count" field.
func (_u *LeadUpdate) ClearAppointmentCount() *LeadUpdate {
	_u.mutation.ClearAppointmentCount()
	return _u
}

// SetMessage sets the "message" field.
func (_u *LeadUpdate) SetMessage(v string) *LeadUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableMessage(v *string) *LeadUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *LeadUpdate) ClearMessage() *LeadUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *LeadUpdate) SetPlatform(v lead.Platform) *LeadUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePlatform(v *lead.Platform) *LeadUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *LeadUpdate) SetCampaignID(v string) *LeadUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCampaignID(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *LeadUpdate) ClearCampaignID() *LeadUpdate {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetAdSetID sets the "ad_set_id" field.
func (_u *LeadUpdate) SetAdSetID(v string) *LeadUpdate {
	_u.mutation.SetAdSetID(v)
	return _u
}

// SetNillableAdSetID sets the "ad_set_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAdSetID(v *string) *LeadUpdate {
	if v != nil {
		_u.SetAdSetID(*v)
	}
	return _u
}

// ClearAdSetID clears the value of the "ad_set_id" field.
func (_u *LeadUpdate) ClearAdSetID() *LeadUpdate {
	_u.mutation.ClearAdSetID()
	return _u
}

// SetAdID sets the "ad_id" field.
func (_u *LeadUpdate) SetAdID(v string) *LeadUpdate {
	_u.mutation.SetAdID(v)
	return _u
}

// SetNillableAdID sets the "ad_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAdID(v *string) *LeadUpdate {
	if v != nil {
		_u.SetAdID(*v)
	}
	return _u
}

// ClearAdID clears the value of the "ad_id" field.
func (_u *LeadUpdate) ClearAdID() *LeadUpdate {
	_u.mutation.ClearAdID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdate) SetStatus(v lead.Status) *LeadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStatus(v *lead.Status) *LeadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *LeadUpdate) SetStatusChangedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStatusChangedAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetUtmSource sets the "utm_source" field.
func (_u *LeadUpdate) SetUtmSource(v string) *LeadUpdate {
	_u.mutation.SetUtmSource(v)
	return _u
}

// SetNillableUtmSource sets the "utm_source" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableUtmSource(v *string) *LeadUpdate {
	if v != nil {
		_u.SetUtmSource(*v)
	}
	return _u
}

// ClearUtmSource clears the value of the "utm_source" field.
func (_u *LeadUpdate) ClearUtmSource() *LeadUpdate {
	_u.mutation.ClearUtmSource()
	return _u
}

// SetUtmMedium sets the "utm_medium" field.
func (_u *LeadUpdate) SetUtmMedium(v string) *LeadUpdate {
	_u.mutation.SetUtmMedium(v)
	return _u
}

// SetNillableUtmMedium sets the "utm_medium" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableUtmMedium(v *string) *LeadUpdate {
	if v != nil {
		_u.SetUtmMedium(*v)
	}
	return _u
}

// ClearUtmMedium clears the value of the "utm_medium" field.
func (_u *LeadUpdate) ClearUtmMedium() *LeadUpdate {
	_u.mutation.ClearUtmMedium()
	return _u
}

// SetUtmCampaign sets the "utm_campaign" field.
func (_u *LeadUpdate) SetUtmCampaign(v string) *LeadUpdate {
	_u.mutation.SetUtmCampaign(v)
	return _u
}

// SetNillableUtmCampaign sets the "utm_campaign" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableUtmCampaign(v *string) *LeadUpdate {
	if v != nil {
		_u.SetUtmCampaign(*v)
	}
	return _u
}

// ClearUtmCampaign clears the value of the "utm_campaign" field.
func (_u *LeadUpdate) ClearUtmCampaign() *LeadUpdate {
	_u.mutation.ClearUtmCampaign()
	return _u
}

// SetUtmTerm sets the "utm_term" field.
func (_u *LeadUpdate) SetUtmTerm(v string) *LeadUpdate {
	_u.mutation.SetUtmTerm(v)
	return _u
}

// SetNillableUtmTerm sets the "utm_term" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableUtmTerm(v *string) *LeadUpdate {
	if v != nil {
		_u.SetUtmTerm(*v)
	}
	return _u
}

// ClearUtmTerm clears the value of the "utm_term" field.
func (_u *LeadUpdate) ClearUtmTerm() *LeadUpdate {
	_u.mutation.ClearUtmTerm()
	return _u
}

// SetUtmContent sets the "utm_content" field.
func (_u *LeadUpdate) SetUtmContent(v string) *LeadUpdate {
	_u.mutation.SetUtmContent(v)
	return _u
}

// SetNillableUtmContent sets the "utm_content" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableUtmContent(v *string) *LeadUpdate {
	if v != nil {
		_u.SetUtmContent(*v)
	}
	return _u
}

// ClearUtmContent clears the value of the "utm_content" field.
func (_u *LeadUpdate) ClearUtmContent() *LeadUpdate {
	_u.mutation.ClearUtmContent()
	return _u
}

// SetReferrer sets the "referrer" field.
func (_u *LeadUpdate) SetReferrer(v string) *LeadUpdate {
	_u.mutation.SetReferrer(v)
	return _u
}

// SetNillableReferrer sets the "referrer" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableReferrer(v *string) *LeadUpdate {
	if v != nil {
		_u.SetReferrer(*v)
	}
	return _u
}

// ClearReferrer clears the value of the "referrer" field.
func (_u *LeadUpdate) ClearReferrer() *LeadUpdate {
	_u.mutation.ClearReferrer()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *LeadUpdate) SetUserAgent(v string) *LeadUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableUserAgent(v *string) *LeadUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *LeadUpdate) ClearUserAgent() *LeadUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetLeadScore sets the "lead_score" field.
func (_u *LeadUpdate) SetLeadScore(v int) *LeadUpdate {
	_u.mutation.ResetLeadScore()
	_u.mutation.SetLeadScore(v)
	return _u
}

// SetNillableLeadScore sets the "lead_score" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLeadScore(v *int) *LeadUpdate {
	if v != nil {
		_u.SetLeadScore(*v)
	}
	return _u
}

// AddLeadScore adds value to the "lead_score" field.
func (_u *LeadUpdate) AddLeadScore(v int) *LeadUpdate {
	_u.mutation.AddLeadScore(v)
	return _u
}

// SetConversionValue sets the "conversion_value" field.
func (_u *LeadUpdate) SetConversionValue(v float64) *LeadUpdate {
	_u.mutation.ResetConversionValue()
	_u.mutation.SetConversionValue(v)
	return _u
}

// SetNillableConversionValue sets the "conversion_value" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableConversionValue(v *float64) *LeadUpdate {
	if v != nil {
		_u.SetConversionValue(*v)
	}
	return _u
}

// AddConversionValue adds value to the "conversion_value" field.
func (_u *LeadUpdate) AddConversionValue(v float64) *LeadUpdate {
	_u.mutation.AddConversionValue(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStatusHistoryIDs adds the "status_history" edge to the LeadStatusHistory entity by IDs.
func (_u *LeadUpdate) AddStatusHistoryIDs(ids ...int) *LeadUpdate {
	_u.mutation.AddStatusHistoryIDs(ids...)
	return _u
}

// AddStatusHistory adds the "status_history" edges to the LeadStatusHistory entity.
func (_u *LeadUpdate) AddStatusHistory(v ...*LeadStatusHistory) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusHistoryIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearStatusHistory clears all "status_history" edges to the LeadStatusHistory entity.
func (_u *LeadUpdate) ClearStatusHistory() *LeadUpdate {
	_u.mutation.ClearStatusHistory()
	return _u
}

// RemoveStatusHistoryIDs removes the "status_history" edge to LeadStatusHistory entities by IDs.
func (_u *LeadUpdate) RemoveStatusHistoryIDs(ids ...int) *LeadUpdate {
	_u.mutation.RemoveStatusHistoryIDs(ids...)
	return _u
}

// RemoveStatusHistory removes "status_history" edges to LeadStatusHistory entities.
func (_u *LeadUpdate) RemoveStatusHistory(v ...*LeadStatusHistory) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := lead.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Lead.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := lead.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Lead.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := lead.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Lead.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentCount(); ok {
		if err := lead.AppointmentCountValidator(v); err != nil {
			return &ValidationError{Name: "appointment_count", err: fmt.Errorf(`ent: validator failed for field "Lead.appointment_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := lead.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Lead.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadScore(); ok {
		if err := lead.LeadScoreValidator(v); err != nil {
			return &ValidationError{Name: "lead_score", err: fmt.Errorf(`ent: validator failed for field "Lead.lead_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConversionValue(); ok {
		if err := lead.ConversionValueValidator(v); err != nil {
			return &ValidationError{Name: "conversion_value", err: fmt.Errorf(`ent: validator failed for field "Lead.conversion_value": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(lead.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(lead.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ServiceType(); ok {
		_spec.SetField(lead.FieldServiceType, field.TypeString, value)
	}
	if _u.mutation.ServiceTypeCleared() {
		_spec.ClearField(lead.FieldServiceType, field.TypeString)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(lead.FieldEventDate, field.TypeTime, value)
	}
	if _u.mutation.EventDateCleared() {
		_spec.ClearField(lead.FieldEventDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AppointmentCount(); ok {
		_spec.SetField(lead.FieldAppointmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppointmentCount(); ok {
		_spec.AddField(lead.FieldAppointmentCount, field.TypeInt, value)
	}
	if _u.mutation.AppointmentCountCleared() {
		_spec.ClearField(lead.FieldAppointmentCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(lead.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(lead.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(lead.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(lead.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(lead.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.AdSetID(); ok {
		_spec.SetField(lead.FieldAdSetID, field.TypeString, value)
	}
	if _u.mutation.AdSetIDCleared() {
		_spec.ClearField(lead.FieldAdSetID, field.TypeString)
	}
	if value, ok := _u.mutation.AdID(); ok {
		_spec.SetField(lead.FieldAdID, field.TypeString, value)
	}
	if _u.mutation.AdIDCleared() {
		_spec.ClearField(lead.FieldAdID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(lead.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UtmSource(); ok {
		_spec.SetField(lead.FieldUtmSource, field.TypeString, value)
	}
	if _u.mutation.UtmSourceCleared() {
		_spec.ClearField(lead.FieldUtmSource, field.TypeString)
	}
	if value, ok := _u.mutation.UtmMedium(); ok {
		_spec.SetField(lead.FieldUtmMedium, field.TypeString, value)
	}
	if _u.mutation.UtmMediumCleared() {
		_spec.ClearField(lead.FieldUtmMedium, field.TypeString)
	}
	if value, ok := _u.mutation.UtmCampaign(); ok {
		_spec.SetField(lead.FieldUtmCampaign, field.TypeString, value)
	}
	if _u.mutation.UtmCampaignCleared() {
		_spec.ClearField(lead.FieldUtmCampaign, field.TypeString)
	}
	if value, ok := _u.mutation.UtmTerm(); ok {
		_spec.SetField(lead.FieldUtmTerm, field.TypeString, value)
	}
	if _u.mutation.UtmTermCleared() {
		_spec.ClearField(lead.FieldUtmTerm, field.TypeString)
	}
	if value, ok := _u.mutation.UtmContent(); ok {
		_spec.SetField(lead.FieldUtmContent, field.TypeString, value)
	}
	if _u.mutation.UtmContentCleared() {
		_spec.ClearField(lead.FieldUtmContent, field.TypeString)
	}
	if value, ok := _u.mutation.Referrer(); ok {
		_spec.SetField(lead.FieldReferrer, field.TypeString, value)
	}
	if _u.mutation.ReferrerCleared() {
		_spec.ClearField(lead.FieldReferrer, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(lead.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(lead.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.LeadScore(); ok {
		_spec.SetField(lead.FieldLeadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadScore(); ok {
		_spec.AddField(lead.FieldLeadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConversionValue(); ok {
		_spec.SetField(lead.FieldConversionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConversionValue(); ok {
		_spec.AddField(lead.FieldConversionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusHistoryIDs(); len(nodes) > 0 && !_u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetFirstName sets the "first_name" field.
func (_u *LeadUpdateOne) SetFirstName(v string) *LeadUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFirstName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *LeadUpdateOne) SetLastName(v string) *LeadUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLastName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdateOne) ClearPhone() *LeadUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdateOne) SetCompany(v string) *LeadUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompany(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdateOne) ClearCompany() *LeadUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetLocation sets the "location" field.
func (_u *LeadUpdateOne) SetLocation(v string) *LeadUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLocation(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *LeadUpdateOne) ClearLocation() *LeadUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetServiceType sets the "service_type" field.
func (_u *LeadUpdateOne) SetServiceType(v string) *LeadUpdateOne {
	_u.mutation.SetServiceType(v)
	return _u
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableServiceType(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetServiceType(*v)
	}
	return _u
}

// ClearServiceType clears the value of the "service_type" field.
func (_u *LeadUpdateOne) ClearServiceType() *LeadUpdateOne {
	_u.mutation.ClearServiceType()
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *LeadUpdateOne) SetEventDate(v time.Time) *LeadUpdateOne {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEventDate(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// ClearEventDate clears the value of the "event_date" field.
func (_u *LeadUpdateOne) ClearEventDate() *LeadUpdateOne {
	_u.mutation.ClearEventDate()
	return _u
}

// SetAppointmentCount sets the "appointment_count" field.
func (_u *LeadUpdateOne) SetAppointmentCount(v int) *LeadUpdateOne {
	_u.mutation.ResetAppointmentCount()
	_u.mutation.SetAppointmentCount(v)
	return _u
}

// SetNillableAppointmentCount sets the "appointment_count" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAppointmentCount(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetAppointmentCount(*v)
	}
	return _u
}

// AddAppointmentCount adds value to the "appointment_count" field.
func (_u *LeadUpdateOne) AddAppointmentCount(v int) *LeadUpdateOne {
	_u.mutation.AddAppointmentCount(v)
	return _u
}

// ClearAppointmentCount clears the value of the "appointment_count" field.
func (_u *LeadUpdateOne) ClearAppointmentCount() *LeadUpdateOne {
	_u.mutation.ClearAppointmentCount()
	return _u
}

// SetMessage sets the "message" field.
func (_u *LeadUpdateOne) SetMessage(v string) *LeadUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableMessage(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *LeadUpdateOne) ClearMessage() *LeadUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *LeadUpdateOne) SetPlatform(v lead.Platform) *LeadUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePlatform(v *lead.Platform) *LeadUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *LeadUpdateOne) SetCampaignID(v string) *LeadUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCampaignID(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *LeadUpdateOne) ClearCampaignID() *LeadUpdateOne {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetAdSetID sets the "ad_set_id" field.
func (_u *LeadUpdateOne) SetAdSetID(v string) *LeadUpdateOne {
	_u.mutation.SetAdSetID(v)
	return _u
}

// SetNillableAdSetID sets the "ad_set_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAdSetID(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetAdSetID(*v)
	}
	return _u
}

// ClearAdSetID clears the value of the "ad_set_id" field.
func (_u *LeadUpdateOne) ClearAdSetID() *LeadUpdateOne {
	_u.mutation.ClearAdSetID()
	return _u
}

// SetAdID sets the "ad_id" field.
func (_u *LeadUpdateOne) SetAdID(v string) *LeadUpdateOne {
	_u.mutation.SetAdID(v)
	return _u
}

// SetNillableAdID sets the "ad_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAdID(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetAdID(*v)
	}
	return _u
}

// ClearAdID clears the value of the "ad_id" field.
func (_u *LeadUpdateOne) ClearAdID() *LeadUpdateOne {
	_u.mutation.ClearAdID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdateOne) SetStatus(v lead.Status) *LeadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStatus(v *lead.Status) *LeadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *LeadUpdateOne) SetStatusChangedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStatusChangedAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetUtmSource sets the "utm_source" field.
func (_u *LeadUpdateOne) SetUtmSource(v string) *LeadUpdateOne {
	_u.mutation.SetUtmSource(v)
	return _u
}

// SetNillableUtmSource sets the "utm_source" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableUtmSource(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetUtmSource(*v)
	}
	return _u
}

// ClearUtmSource clears the value of the "utm_source" field.
func (_u *LeadUpdateOne) ClearUtmSource() *LeadUpdateOne {
	_u.mutation.ClearUtmSource()
	return _u
}

// SetUtmMedium sets the "utm_medium" field.
func (_u *LeadUpdateOne) SetUtmMedium(v string) *LeadUpdateOne {
	_u.mutation.SetUtmMedium(v)
	return _u
}

// SetNillableUtmMedium sets the "utm_medium" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableUtmMedium(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetUtmMedium(*v)
	}
	return _u
}

// ClearUtmMedium clears the value of the "utm_medium" field.
func (_u *LeadUpdateOne) ClearUtmMedium() *LeadUpdateOne {
	_u.mutation.ClearUtmMedium()
	return _u
}

// SetUtmCampaign sets the "utm_campaign" field.
func (_u *LeadUpdateOne) SetUtmCampaign(v string) *LeadUpdateOne {
	_u.mutation.SetUtmCampaign(v)
	return _u
}

// SetNillableUtmCampaign sets the "utm_campaign" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableUtmCampaign(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetUtmCampaign(*v)
	}
	return _u
}

// ClearUtmCampaign clears the value of the "utm_campaign" field.
func (_u *LeadUpdateOne) ClearUtmCampaign() *LeadUpdateOne {
	_u.mutation.ClearUtmCampaign()
	return _u
}

// SetUtmTerm sets the "utm_term" field.
func (_u *LeadUpdateOne) SetUtmTerm(v string) *LeadUpdateOne {
	_u.mutation.SetUtmTerm(v)
	return _u
}

// SetNillableUtmTerm sets the "utm_term" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableUtmTerm(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetUtmTerm(*v)
	}
	return _u
}

// ClearUtmTerm clears the value of the "utm_term" field.
func (_u *LeadUpdateOne) ClearUtmTerm() *LeadUpdateOne {
	_u.mutation.ClearUtmTerm()
	return _u
}

// SetUtmContent sets the "utm_content" field.
func (_u *LeadUpdateOne) SetUtmContent(v string) *LeadUpdateOne {
	_u.mutation.SetUtmContent(v)
	return _u
}

// SetNillableUtmContent sets the "utm_content" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableUtmContent(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetUtmContent(*v)
	}
	return _u
}

// ClearUtmContent clears the value of the "utm_content" field.
func (_u *LeadUpdateOne) ClearUtmContent() *LeadUpdateOne {
	_u.mutation.ClearUtmContent()
	return _u
}

// SetReferrer sets the "referrer" field.
func (_u *LeadUpdateOne) SetReferrer(v string) *LeadUpdateOne {
	_u.mutation.SetReferrer(v)
	return _u
}

// SetNillableReferrer sets the "referrer" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableReferrer(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetReferrer(*v)
	}
	return _u
}

// ClearReferrer clears the value of the "referrer" field.
func (_u *LeadUpdateOne) ClearReferrer() *LeadUpdateOne {
	_u.mutation.ClearReferrer()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *LeadUpdateOne) SetUserAgent(v string) *LeadUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableUserAgent(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *LeadUpdateOne) ClearUserAgent() *LeadUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetLeadScore sets the "lead_score" field.
func (_u *LeadUpdateOne) SetLeadScore(v int) *LeadUpdateOne {
	_u.mutation.ResetLeadScore()
	_u.mutation.SetLeadScore(v)
	return _u
}

// SetNillableLeadScore sets the "lead_score" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLeadScore(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetLeadScore(*v)
	}
	return _u
}

// AddLeadScore adds value to the "lead_score" field.
func (_u *LeadUpdateOne) AddLeadScore(v int) *LeadUpdateOne {
	_u.mutation.AddLeadScore(v)
	return _u
}

// SetConversionValue sets the "conversion_value" field.
func (_u *LeadUpdateOne) SetConversionValue(v float64) *LeadUpdateOne {
	_u.mutation.ResetConversionValue()
	_u.mutation.SetConversionValue(v)
	return _u
}

// SetNillableConversionValue sets the "conversion_value" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableConversionValue(v *float64) *LeadUpdateOne {
	if v != nil {
		_u.SetConversionValue(*v)
	}
	return _u
}

// AddConversionValue adds value to the "conversion_value" field.
func (_u *LeadUpdateOne) AddConversionValue(v float64) *LeadUpdateOne {
	_u.mutation.AddConversionValue(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStatusHistoryIDs adds the "status_history" edge to the LeadStatusHistory entity by IDs.
func (_u *LeadUpdateOne) AddStatusHistoryIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.AddStatusHistoryIDs(ids...)
	return _u
}

// AddStatusHistory adds the "status_history" edges to the LeadStatusHistory entity.
func (_u *LeadUpdateOne) AddStatusHistory(v ...*LeadStatusHistory) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusHistoryIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearStatusHistory clears all "status_history" edges to the LeadStatusHistory entity.
func (_u *LeadUpdateOne) ClearStatusHistory() *LeadUpdateOne {
	_u.mutation.ClearStatusHistory()
	return _u
}

// RemoveStatusHistoryIDs removes the "status_history" edge to LeadStatusHistory entities by IDs.
func (_u *LeadUpdateOne) RemoveStatusHistoryIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.RemoveStatusHistoryIDs(ids...)
	return _u
}

// RemoveStatusHistory removes "status_history" edges to LeadStatusHistory entities.
func (_u *LeadUpdateOne) RemoveStatusHistory(v ...*LeadStatusHistory) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusHistoryIDs(ids...)
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := lead.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Lead.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := lead.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Lead.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := lead.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Lead.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentCount(); ok {
		if err := lead.AppointmentCountValidator(v); err != nil {
			return &ValidationError{Name: "appointment_count", err: fmt.Errorf(`ent: validator failed for field "Lead.appointment_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := lead.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Lead.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadScore(); ok {
		if err := lead.LeadScoreValidator(v); err != nil {
			return &ValidationError{Name: "lead_score", err: fmt.Errorf(`ent: validator failed for field "Lead.lead_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConversionValue(); ok {
		if err := lead.ConversionValueValidator(v); err != nil {
			return &ValidationError{Name: "conversion_value", err: fmt.Errorf(`ent: validator failed for field "Lead.conversion_value": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
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
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(lead.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(lead.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ServiceType(); ok {
		_spec.SetField(lead.FieldServiceType, field.TypeString, value)
	}
	if _u.mutation.ServiceTypeCleared() {
		_spec.ClearField(lead.FieldServiceType, field.TypeString)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(lead.FieldEventDate, field.TypeTime, value)
	}
	if _u.mutation.EventDateCleared() {
		_spec.ClearField(lead.FieldEventDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AppointmentCount(); ok {
		_spec.SetField(lead.FieldAppointmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppointmentCount(); ok {
		_spec.AddField(lead.FieldAppointmentCount, field.TypeInt, value)
	}
	if _u.mutation.AppointmentCountCleared() {
		_spec.ClearField(lead.FieldAppointmentCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(lead.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(lead.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(lead.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(lead.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(lead.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.AdSetID(); ok {
		_spec.SetField(lead.FieldAdSetID, field.TypeString, value)
	}
	if _u.mutation.AdSetIDCleared() {
		_spec.ClearField(lead.FieldAdSetID, field.TypeString)
	}
	if value, ok := _u.mutation.AdID(); ok {
		_spec.SetField(lead.FieldAdID, field.TypeString, value)
	}
	if _u.mutation.AdIDCleared() {
		_spec.ClearField(lead.FieldAdID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(lead.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UtmSource(); ok {
		_spec.SetField(lead.FieldUtmSource, field.TypeString, value)
	}
	if _u.mutation.UtmSourceCleared() {
		_spec.ClearField(lead.FieldUtmSource, field.TypeString)
	}
	if value, ok := _u.mutation.UtmMedium(); ok {
		_spec.SetField(lead.FieldUtmMedium, field.TypeString, value)
	}
	if _u.mutation.UtmMediumCleared() {
		_spec.ClearField(lead.FieldUtmMedium, field.TypeString)
	}
	if value, ok := _u.mutation.UtmCampaign(); ok {
		_spec.SetField(lead.FieldUtmCampaign, field.TypeString, value)
	}
	if _u.mutation.UtmCampaignCleared() {
		_spec.ClearField(lead.FieldUtmCampaign, field.TypeString)
	}
	if value, ok := _u.mutation.UtmTerm(); ok {
		_spec.SetField(lead.FieldUtmTerm, field.TypeString, value)
	}
	if _u.mutation.UtmTermCleared() {
		_spec.ClearField(lead.FieldUtmTerm, field.TypeString)
	}
	if value, ok := _u.mutation.UtmContent(); ok {
		_spec.SetField(lead.FieldUtmContent, field.TypeString, value)
	}
	if _u.mutation.UtmContentCleared() {
		_spec.ClearField(lead.FieldUtmContent, field.TypeString)
	}
	if value, ok := _u.mutation.Referrer(); ok {
		_spec.SetField(lead.FieldReferrer, field.TypeString, value)
	}
	if _u.mutation.ReferrerCleared() {
		_spec.ClearField(lead.FieldReferrer, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(lead.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(lead.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.LeadScore(); ok {
		_spec.SetField(lead.FieldLeadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadScore(); ok {
		_spec.AddField(lead.FieldLeadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConversionValue(); ok {
		_spec.SetField(lead.FieldConversionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConversionValue(); ok {
		_spec.AddField(lead.FieldConversionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusHistoryIDs(); len(nodes) > 0 && !_u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
